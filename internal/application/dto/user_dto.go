package dto

import (
	"regexp"
	"strings"
)

// Validación de registro: email con forma razonable, password mínimo 6
// caracteres (la política del storefront original; el hasher no valida largo).
const MinPasswordLength = 6

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// Validate chequea el request antes de tocar storage.
func (r *RegisterRequest) Validate() error {
	if !emailRe.MatchString(r.Email) {
		return errValidation("email inválido")
	}
	if len(r.Password) < MinPasswordLength {
		return errValidation("password debe tener al menos 6 caracteres")
	}
	if n := len(strings.TrimSpace(r.FullName)); r.FullName != "" && (n < 1 || n > 100) {
		return errValidation("full_name debe tener entre 1 y 100 caracteres")
	}
	return nil
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate chequea el request de login.
func (r *LoginRequest) Validate() error {
	if !emailRe.MatchString(r.Email) {
		return errValidation("email inválido")
	}
	if r.Password == "" {
		return errValidation("password es requerido")
	}
	return nil
}

// AuthUser identidad resuelta que viaja en las respuestas de auth.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// MeResponse salida de GET /auth/me: identidad más el perfil desnormalizado.
type MeResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	FullName *string `json:"full_name"`
}

// LoginResponse salida con token JWT y usuario.
type LoginResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// RegisterResponse salida de registro.
type RegisterResponse struct {
	Message string `json:"message"`
}

package entity

import "time"

// Roles válidos para User. El rol efectivo se resuelve por la presencia de una
// fila en user_roles: sin fila "admin", el usuario es RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa la identidad de una cuenta del storefront.
// El ID es inmutable; el email es la clave de login (match sensible a mayúsculas).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}

// Profile datos de presentación desnormalizados, creados junto al User en el
// registro y actualizables de forma independiente.
type Profile struct {
	ID       string // igual al User.ID
	Email    string
	FullName string // vacío si no se proporcionó
}

// UserWithRole fila del back-office: usuario con su rol efectivo y último login.
type UserWithRole struct {
	ID        string
	Email     string
	Role      string
	LastLogin time.Time
	CreatedAt time.Time
}

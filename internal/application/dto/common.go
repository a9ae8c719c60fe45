package dto

import "github.com/jhoicas/Boutique-api/internal/domain"

// ValidationError error de validación con mensaje para el cliente.
// Unwrap lo liga a domain.ErrInvalidInput para que los handlers lo mapeen a 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

func errValidation(msg string) error { return &ValidationError{msg: msg} }

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Límites del listado de catálogo. El recorte se aplica en el caso de uso,
// antes de llegar al repositorio.
const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// ClampLimit aplica el valor por defecto y el tope del listado.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

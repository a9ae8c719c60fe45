package repository

import "github.com/jhoicas/Boutique-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// El rol efectivo vive en user_roles: RoleOf devuelve "user" cuando no hay fila.
type UserRepository interface {
	FindByEmail(email string) (*entity.User, error)
	FindByID(id string) (*entity.User, error)
	RoleOf(userID string) (string, error)
	// SetRole con "admin" inserta/actualiza la fila; con "user" elimina la fila admin.
	SetRole(userID, role string) error
	GetProfile(userID string) (*entity.Profile, error)
	// ListWithRoles devuelve todos los usuarios con rol efectivo y último login
	// (para el back-office), ordenados por fecha de creación descendente.
	ListWithRoles() ([]*entity.UserWithRole, error)
}

// RegistrationRepository puerto transaccional: las tres inserciones del
// registro (user, profile, rol por defecto) se confirman o revierten juntas.
// El esquema original las ejecutaba como statements sueltos; aquí se
// fortalece a todo-o-nada.
type RegistrationRepository interface {
	CreateUser(user *entity.User) error
	CreateProfile(profile *entity.Profile) error
	AssignRole(userID, role string) error
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// El rol efectivo vive en user_roles: una fila por usuario como máximo;
// la ausencia de fila significa rol "user".
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// FindByEmail obtiene un usuario por email (match exacto, sensible a mayúsculas).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM users WHERE email = $1`
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// FindByID obtiene un usuario por ID.
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM users WHERE id = $1`
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// RoleOf resuelve el rol efectivo del usuario; sin fila en user_roles es "user".
func (r *UserRepo) RoleOf(userID string) (string, error) {
	var role string
	err := r.pool.QueryRow(context.Background(),
		`SELECT role FROM user_roles WHERE user_id = $1 LIMIT 1`,
		userID,
	).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.RoleUser, nil
		}
		return "", fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

// SetRole con "admin" hace upsert de la fila de rol; con "user" borra la fila
// admin (la ausencia ES el rol por defecto).
func (r *UserRepo) SetRole(userID, role string) error {
	ctx := context.Background()
	if role == entity.RoleAdmin {
		_, err := r.pool.Exec(ctx, `
			INSERT INTO user_roles (user_id, role) VALUES ($1, $2)
			ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role`,
			userID, entity.RoleAdmin,
		)
		if err != nil {
			return fmt.Errorf("set role: %w", err)
		}
		return nil
	}
	_, err := r.pool.Exec(ctx,
		`DELETE FROM user_roles WHERE user_id = $1 AND role = $2`,
		userID, entity.RoleAdmin,
	)
	if err != nil {
		return fmt.Errorf("clear role: %w", err)
	}
	return nil
}

// GetProfile obtiene el perfil desnormalizado del usuario.
func (r *UserRepo) GetProfile(userID string) (*entity.Profile, error) {
	var p entity.Profile
	var fullName *string
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, email, full_name FROM profiles WHERE id = $1`,
		userID,
	).Scan(&p.ID, &p.Email, &fullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if fullName != nil {
		p.FullName = *fullName
	}
	return &p, nil
}

// ListWithRoles lista usuarios con rol efectivo y último login para el
// back-office. El último login sale de user_activity; si nunca hubo login se
// usa la fecha de alta.
func (r *UserRepo) ListWithRoles() ([]*entity.UserWithRole, error) {
	query := `
		SELECT u.id, u.email, u.created_at,
		       COALESCE(MAX(a.created_at), u.created_at) AS last_login,
		       COALESCE((SELECT role FROM user_roles ur WHERE ur.user_id = u.id LIMIT 1), 'user') AS role
		FROM users u
		LEFT JOIN user_activity a ON a.user_id = u.id AND a.activity_type = 'user_login'
		GROUP BY u.id
		ORDER BY u.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.UserWithRole
	for rows.Next() {
		var u entity.UserWithRole
		if err := rows.Scan(&u.ID, &u.Email, &u.CreatedAt, &u.LastLogin, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

var _ repository.RegistrationRepository = (*RegistrationRepo)(nil)

// RegistrationRepo inserciones del alta de usuario, atadas a una transacción
// vía Querier (lo usa TxRunner.RunRegistration).
type RegistrationRepo struct {
	q Querier
}

// NewRegistrationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRegistrationRepository(q Querier) *RegistrationRepo {
	return &RegistrationRepo{q: q}
}

// CreateUser persiste la identidad. Email duplicado -> ErrEmailAlreadyExists.
func (r *RegistrationRepo) CreateUser(user *entity.User) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// CreateProfile persiste el perfil desnormalizado (full_name NULL si vacío).
func (r *RegistrationRepo) CreateProfile(profile *entity.Profile) error {
	var fullName *string
	if profile.FullName != "" {
		fullName = &profile.FullName
	}
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO profiles (id, email, full_name)
		VALUES ($1, $2, $3)`,
		profile.ID, profile.Email, fullName,
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// AssignRole registra el rol inicial de la cuenta.
func (r *RegistrationRepo) AssignRole(userID, role string) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`,
		userID, role,
	)
	if err != nil {
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

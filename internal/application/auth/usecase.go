package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
	"github.com/jhoicas/Boutique-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// RegistrationTxRunner ejecuta el alta de usuario dentro de una transacción:
// user, profile y rol por defecto se confirman o revierten juntos.
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(repo repository.RegistrationRepository) error) error
}

// ActivityRecorder contrato mínimo del recorder (fire-and-forget).
type ActivityRecorder interface {
	Record(userID, activityType string, metadata map[string]string)
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil propio.
type AuthUseCase struct {
	userRepo repository.UserRepository
	txRunner RegistrationTxRunner
	recorder ActivityRecorder
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, txRunner RegistrationTxRunner, recorder ActivityRecorder, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, txRunner: txRunner, recorder: recorder, jwtCfg: jwtCfg}
}

// RegisterUser crea la cuenta: hashea el password con bcrypt y persiste user,
// profile y rol "user" en una sola transacción. Devuelve ErrEmailAlreadyExists
// si el email ya está tomado.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) error {
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	err = uc.txRunner.RunRegistration(context.Background(), func(repo repository.RegistrationRepository) error {
		if err := repo.CreateUser(user); err != nil {
			return err
		}
		if err := repo.CreateProfile(&entity.Profile{ID: user.ID, Email: user.Email, FullName: in.FullName}); err != nil {
			return err
		}
		return repo.AssignRole(user.ID, entity.RoleUser)
	})
	if err != nil {
		return err
	}
	uc.recorder.Record(user.ID, entity.ActivityUserRegistered, map[string]string{"email": user.Email})
	return nil
}

// Login verifica email/password, resuelve el rol efectivo, audita el acceso y
// genera el JWT. Email inexistente y password incorrecto devuelven el mismo
// error para no filtrar cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	role, err := uc.userRepo.RoleOf(user.ID)
	if err != nil {
		return nil, err
	}
	uc.recorder.Record(user.ID, entity.ActivityUserLogin, map[string]string{"email": user.Email})

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.AuthUser{ID: user.ID, Email: user.Email, Role: role},
	}, nil
}

// Me arma la respuesta de GET /auth/me: identidad del token más el full_name
// del perfil desnormalizado (null si no hay).
func (uc *AuthUseCase) Me(userID, email, role string) (*dto.MeResponse, error) {
	out := &dto.MeResponse{ID: userID, Email: email, Role: role}
	profile, err := uc.userRepo.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile != nil && profile.FullName != "" {
		out.FullName = &profile.FullName
	}
	return out, nil
}

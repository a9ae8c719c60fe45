package usecase

import (
	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

const recentActivityLimit = 10

// AdminUseCase operaciones del back-office: listado de usuarios con rol,
// cambio de rol y panel de analítica.
type AdminUseCase struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	statsRepo    repository.UserStatsRepository
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(userRepo repository.UserRepository, activityRepo repository.ActivityRepository, statsRepo repository.UserStatsRepository) *AdminUseCase {
	return &AdminUseCase{userRepo: userRepo, activityRepo: activityRepo, statsRepo: statsRepo}
}

// ListUsers lista todos los usuarios con rol efectivo y último login.
func (uc *AdminUseCase) ListUsers() ([]dto.AdminUserResponse, error) {
	list, err := uc.userRepo.ListWithRoles()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdminUserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.AdminUserResponse{
			ID:        u.ID,
			Email:     u.Email,
			Role:      u.Role,
			LastLogin: u.LastLogin,
			CreatedAt: u.CreatedAt,
		})
	}
	return items, nil
}

// SetRole cambia el rol efectivo: "admin" inserta/actualiza la fila de rol,
// "user" elimina la fila admin (la ausencia de fila ES el rol user).
func (uc *AdminUseCase) SetRole(userID string, in dto.SetRoleRequest) error {
	if in.Role != entity.RoleUser && in.Role != entity.RoleAdmin {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.SetRole(userID, in.Role)
}

// Analytics agrega los contadores del panel: usuarios totales, altas de hoy,
// logins totales y la actividad más reciente.
func (uc *AdminUseCase) Analytics() (*dto.AnalyticsResponse, error) {
	totalUsers, err := uc.statsRepo.CountUsers()
	if err != nil {
		return nil, err
	}
	newToday, err := uc.statsRepo.CountUsersCreatedToday()
	if err != nil {
		return nil, err
	}
	totalLogins, err := uc.activityRepo.CountByType(entity.ActivityUserLogin)
	if err != nil {
		return nil, err
	}
	recent, err := uc.activityRepo.Recent(recentActivityLimit)
	if err != nil {
		return nil, err
	}
	activity := make([]dto.ActivityResponse, 0, len(recent))
	for _, a := range recent {
		activity = append(activity, dto.ActivityResponse{
			ID:           a.ID,
			ActivityType: a.ActivityType,
			Metadata:     a.Metadata,
			CreatedAt:    a.CreatedAt,
		})
	}
	return &dto.AnalyticsResponse{
		TotalUsers:     totalUsers,
		NewUsersToday:  newToday,
		TotalLogins:    totalLogins,
		RecentActivity: activity,
	}, nil
}

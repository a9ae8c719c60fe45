package repository

import "github.com/jhoicas/Boutique-api/internal/domain/entity"

// ActivityRepository puerto de la auditoría append-only y sus agregados.
type ActivityRepository interface {
	Insert(record *entity.ActivityRecord) error
	CountByType(activityType string) (int, error)
	Recent(limit int) ([]*entity.ActivityRecord, error)
}

// UserStatsRepository agregados de usuarios para el panel de analítica.
type UserStatsRepository interface {
	CountUsers() (int, error)
	CountUsersCreatedToday() (int, error)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)
var _ repository.UserStatsRepository = (*ActivityRepo)(nil)

// ActivityRepo auditoría append-only y agregados de analítica (solo lectura
// salvo Insert; las filas nunca se actualizan ni se borran).
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador de auditoría.
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Insert apila una fila de actividad.
func (r *ActivityRepo) Insert(record *entity.ActivityRecord) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO user_activity (id, user_id, activity_type, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		record.ID, record.UserID, record.ActivityType, record.Metadata, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// CountByType cuenta filas de un tipo de actividad (ej. logins totales).
func (r *ActivityRepo) CountByType(activityType string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM user_activity WHERE activity_type = $1`,
		activityType,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count activity: %w", err)
	}
	return n, nil
}

// Recent devuelve las últimas filas de actividad para el panel.
func (r *ActivityRepo) Recent(limit int) ([]*entity.ActivityRecord, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, user_id, activity_type, metadata, created_at
		FROM user_activity ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityRecord
	for rows.Next() {
		var a entity.ActivityRecord
		if err := rows.Scan(&a.ID, &a.UserID, &a.ActivityType, &a.Metadata, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// CountUsers total de cuentas registradas.
func (r *ActivityRepo) CountUsers() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM users`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// CountUsersCreatedToday altas del día corriente (fecha del servidor de DB).
func (r *ActivityRepo) CountUsersCreatedToday() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users WHERE created_at::date = CURRENT_DATE`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count new users: %w", err)
	}
	return n, nil
}

package dto

import (
	"encoding/json"
	"time"
)

// AdminUserResponse fila del listado de usuarios del back-office.
type AdminUserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	LastLogin time.Time `json:"last_login"`
	CreatedAt time.Time `json:"created_at"`
}

// SetRoleRequest entrada para cambiar el rol efectivo de un usuario.
type SetRoleRequest struct {
	Role string `json:"role"`
}

// SetRoleResponse eco del cambio aplicado.
type SetRoleResponse struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// ActivityResponse fila de auditoría en el panel de analítica.
type ActivityResponse struct {
	ID           string          `json:"id"`
	ActivityType string          `json:"activity_type"`
	Metadata     json.RawMessage `json:"metadata"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AnalyticsResponse agregados del panel de analítica.
type AnalyticsResponse struct {
	TotalUsers     int                `json:"totalUsers"`
	NewUsersToday  int                `json:"newUsersToday"`
	TotalLogins    int                `json:"totalLogins"`
	RecentActivity []ActivityResponse `json:"recentActivity"`
}

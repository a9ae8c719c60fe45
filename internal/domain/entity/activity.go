package entity

import (
	"encoding/json"
	"time"
)

// Tipos de actividad conocidos para la auditoría.
const (
	ActivityUserLogin      = "user_login"
	ActivityUserRegistered = "user_registered"
)

// ActivityRecord fila de auditoría append-only: nunca se actualiza ni se borra,
// solo alimenta los contadores de analítica del back-office.
type ActivityRecord struct {
	ID           string
	UserID       string
	ActivityType string
	Metadata     json.RawMessage // ej. {"email":"a@x.com"}
	CreatedAt    time.Time
}

package activity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// Recorder apila filas de auditoría sin bloquear la operación auditada: un
// login debe terminar bien aunque el insert de auditoría falle. El fallo solo
// se registra en el log.
type Recorder struct {
	repo repository.ActivityRepository
	log  zerolog.Logger
}

// NewRecorder construye el recorder de actividad.
func NewRecorder(repo repository.ActivityRepository, log zerolog.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record apila un evento con metadata estructurada. Fire-and-forget: escribe
// en una goroutine y nunca devuelve error al caller.
func (r *Recorder) Record(userID, activityType string, metadata map[string]string) {
	var meta json.RawMessage
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err != nil {
			r.log.Warn().Err(err).Str("activity_type", activityType).Msg("metadata de actividad no serializable")
			return
		}
		meta = b
	}
	record := &entity.ActivityRecord{
		ID:           uuid.New().String(),
		UserID:       userID,
		ActivityType: activityType,
		Metadata:     meta,
		CreatedAt:    time.Now(),
	}
	go func() {
		if err := r.repo.Insert(record); err != nil {
			r.log.Warn().Err(err).
				Str("user_id", userID).
				Str("activity_type", activityType).
				Msg("no se pudo registrar la actividad")
		}
	}()
}

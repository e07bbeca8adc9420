package worker

// notificacion_worker.go
// Processes notification jobs from QueueNotificacion: emails requesters when
// the CFO or treasury moves their payment request.

import (
	"context"
	"encoding/json"

	"github.com/chebellamachina/VC-LM/internal/infra"

	"github.com/rs/zerolog/log"
)

// NotificacionPayload is the job envelope sent to QueueNotificacion.
type NotificacionPayload struct {
	Para   string `json:"para"`
	Asunto string `json:"asunto"`
	Cuerpo string `json:"cuerpo"`
}

// NotificacionWorker processes notification jobs from QueueNotificacion.
type NotificacionWorker struct {
	mailer *infra.Mailer
}

func NewNotificacionWorker(mailer *infra.Mailer) *NotificacionWorker {
	return &NotificacionWorker{mailer: mailer}
}

// Process sends one notification email.
func (w *NotificacionWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload NotificacionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notificacion_worker: invalid payload")
		return
	}
	if payload.Para == "" {
		log.Warn().Msg("notificacion_worker: empty destinatario; skipping")
		return
	}

	if err := w.mailer.EnviarNotificacion(payload.Para, payload.Asunto, payload.Cuerpo); err != nil {
		log.Error().Err(err).Str("para", payload.Para).Msg("notificacion_worker: failed to send email")
		return
	}
	log.Info().Str("para", payload.Para).Msg("notificacion_worker: notificacion enviada")
}

package worker

// notify_worker.go
// Processes order-resolution notification jobs from QueueNotify and emails
// the requester via SMTP. Best-effort: a failed send is logged and dropped,
// never retried.

import (
	"context"
	"encoding/json"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/infra"

	"github.com/rs/zerolog/log"
)

// OrderNoticePayload is the job envelope sent to QueueNotify.
type OrderNoticePayload struct {
	ToEmail    string `json:"to_email"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	AttachPath string `json:"attach_path,omitempty"`
}

// NotifyWorker sends order-resolution notices to requester emails.
type NotifyWorker struct {
	mailer *infra.Mailer
}

func NewNotifyWorker(mailer *infra.Mailer) *NotifyWorker {
	return &NotifyWorker{mailer: mailer}
}

// Process sends one notification email.
func (w *NotifyWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload OrderNoticePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notify_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("notify_worker: empty to_email, skipping")
		return
	}

	if err := w.mailer.SendOrderNotice(payload.ToEmail, payload.Subject, payload.Body, payload.AttachPath); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("notify_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("notify_worker: order notice sent")
}

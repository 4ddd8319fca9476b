package email

import (
	"context"
	"log/slog"
)

// LogSender implements EmailSender for local development. Emails are written
// to the application log instead of being delivered.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a development email sender that logs outbound mail.
func NewLogSender(log *slog.Logger) EmailSender {
	if log == nil {
		log = slog.Default()
	}
	return &LogSender{log: log}
}

func (s *LogSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "email suppressed in development",
		slog.String("send_to", params.SendTo),
		slog.String("subject", params.Subject),
		slog.String("tag", params.Tag),
		slog.Int("body_bytes", len(params.BodyHTML)),
	)
	return nil
}

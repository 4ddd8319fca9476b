package email_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/hotelkit/pkg/email"
)

func TestSendEmailParamsValidate(t *testing.T) {
	t.Parallel()

	valid := email.SendEmailParams{
		SendTo:   "guest@example.com",
		Subject:  "Booking confirmed",
		BodyHTML: "<p>See you soon.</p>",
	}
	assert.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(*email.SendEmailParams){
		"bad recipient": func(p *email.SendEmailParams) { p.SendTo = "not-an-email" },
		"no subject":    func(p *email.SendEmailParams) { p.Subject = "" },
		"no body":       func(p *email.SendEmailParams) { p.BodyHTML = "" },
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := valid
			mutate(&p)
			assert.ErrorIs(t, p.Validate(), email.ErrInvalidParams)
		})
	}
}

func TestNewPostmarkClient(t *testing.T) {
	t.Parallel()

	_, err := email.NewPostmarkClient(email.Config{
		SenderEmail:  "frontdesk@example.com",
		SupportEmail: "support@example.com",
	})
	assert.ErrorIs(t, err, email.ErrInvalidConfig)

	_, err = email.NewPostmarkClient(email.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "not-an-email",
		SupportEmail:         "support@example.com",
	})
	assert.ErrorIs(t, err, email.ErrInvalidConfig)

	client, err := email.NewPostmarkClient(email.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "frontdesk@example.com",
		SupportEmail:         "support@example.com",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestLogSender(t *testing.T) {
	t.Parallel()

	sender := email.NewLogSender(slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "guest@example.com",
		Subject:  "Booking confirmed",
		BodyHTML: "<p>ok</p>",
	})
	assert.NoError(t, err)

	err = sender.SendEmail(context.Background(), email.SendEmailParams{})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}

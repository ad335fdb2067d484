package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"gomoto/config"
	"gomoto/infras/otel"
	"gomoto/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

var ErrNoRecipient = errors.New("mail requires at least one recipient")

type Message struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

type Mailer interface {
	Send(ctx context.Context, message Message) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type mailerImpl struct {
	config *config.Config
	dialer dialer
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Mailer {
	mailCfg := cfg.External.Mail

	return &mailerImpl{
		config: cfg,
		dialer: gomail.NewDialer(mailCfg.Host, mailCfg.Port, mailCfg.Username, mailCfg.Password),
		otel:   otel,
	}
}

func (m *mailerImpl) Send(ctx context.Context, message Message) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(message.To) == 0 {
		return ErrNoRecipient
	}

	scope.SetAttributes(map[string]any{
		"mail.subject":    message.Subject,
		"mail.recipients": len(message.To),
	})

	if !m.config.External.Mail.Enable {
		log.Debug().Strs("to", message.To).Str("subject", message.Subject).Msg("mail disabled, skipping send")

		return nil
	}

	err = m.dialer.DialAndSend(m.build(message))
	if err != nil {
		log.Error().Err(err).Strs("to", message.To).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Strs("to", message.To).Str("subject", message.Subject).Msg("mail sent")

	return nil
}

func (m *mailerImpl) build(message Message) *gomail.Message {
	mailCfg := m.config.External.Mail

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", mailCfg.From, mailCfg.FromName)
	msg.SetHeader("To", message.To...)
	msg.SetHeader("Subject", message.Subject)

	if message.TextBody != "" {
		msg.SetBody("text/plain", message.TextBody)
	}

	if message.HTMLBody != "" {
		if message.TextBody != "" {
			msg.AddAlternative("text/html", message.HTMLBody)
		} else {
			msg.SetBody("text/html", message.HTMLBody)
		}
	}

	return msg
}

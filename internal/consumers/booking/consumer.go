// Package booking consumes booking lifecycle events and notifies customers by mail.
package booking

import (
	"context"
	"errors"
	"fmt"

	"gomoto/config"
	"gomoto/infras/kafka"
	"gomoto/infras/mail"
	"gomoto/infras/metrics"
	"gomoto/infras/otel"
	"gomoto/internal/domains/booking/event"
	"gomoto/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	resultSent    = "sent"
	resultFailed  = "failed"
	resultInvalid = "invalid"
	resultSkipped = "skipped"
	unknownType   = "unknown"
)

var ErrMissingRecipient = errors.New("booking event has no user email")

type Consumer struct {
	cfg    *config.Config
	client kafka.Client
	mailer mail.Mailer
	otel   otel.Otel
}

func New(cfg *config.Config, client kafka.Client, mailer mail.Mailer, otel otel.Otel) *Consumer {
	return &Consumer{
		cfg:    cfg,
		client: client,
		mailer: mailer,
		otel:   otel,
	}
}

// Start blocks until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	topic := c.cfg.Kafka.Topics.Booking

	log.Info().Str("topic", topic).Str("group", c.cfg.Kafka.ConsumerGroup).Msg("booking consumer started")

	c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, topic, func(msg kafkaGo.Message) {
		if err := c.Handle(context.WithoutCancel(ctx), msg); err != nil {
			log.Error().Err(err).Str("key", string(msg.Key)).Msg("failed to handle booking event")
		}
	})
}

// Handle decodes one message and sends the matching notification.
func (c *Consumer) Handle(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Handle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, evt, err := kafka.DecodeKafkaMessage[event.BookingEvent](msg)
	if err != nil {
		metrics.ConsumerMessagesTotal.WithLabelValues(unknownType, resultInvalid).Inc()

		return fmt.Errorf("failed to decode booking event: %w", err)
	}

	scope.SetAttributes(map[string]any{
		"event.type":       evt.Type,
		"event.booking_id": evt.BookingID,
	})

	message, notify, err := buildMessage(evt)
	if err != nil {
		metrics.ConsumerMessagesTotal.WithLabelValues(evt.Type, resultFailed).Inc()

		return err
	}

	if !notify {
		log.Debug().Str("type", evt.Type).Str("booking_id", evt.BookingID).Msg("no notification for booking event")
		metrics.ConsumerMessagesTotal.WithLabelValues(evt.Type, resultSkipped).Inc()

		return nil
	}

	if evt.UserEmail == constant.Empty {
		metrics.ConsumerMessagesTotal.WithLabelValues(evt.Type, resultInvalid).Inc()

		return ErrMissingRecipient
	}

	if err = c.mailer.Send(ctx, message); err != nil {
		metrics.NotificationsSentTotal.WithLabelValues(evt.Type, resultFailed).Inc()
		metrics.ConsumerMessagesTotal.WithLabelValues(evt.Type, resultFailed).Inc()

		return fmt.Errorf("failed to send booking notification: %w", err)
	}

	metrics.NotificationsSentTotal.WithLabelValues(evt.Type, resultSent).Inc()
	metrics.ConsumerMessagesTotal.WithLabelValues(evt.Type, resultSent).Inc()

	log.Info().Str("type", evt.Type).Str("booking_reference", evt.BookingReference).Msg("booking notification sent")

	return nil
}

func (c *Consumer) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("failed to close kafka client: %w", err)
	}

	return nil
}

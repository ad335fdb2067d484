// Package event publishes booking lifecycle events to Kafka.
package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"gomoto/config"
	"gomoto/infras/kafka"
	"gomoto/infras/otel"
	"gomoto/internal/domains/booking/model"
	"gomoto/shared/constant"
	"gomoto/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated           = "booking.created"
	TypeBookingStatusUpdated     = "booking.status_updated"
	TypeBookingCancelled         = "booking.cancelled"
	TypeBookingFeedbackSubmitted = "booking.feedback_submitted"
)

type BookingEvent struct {
	Type             string    `json:"type"`
	BookingID        string    `json:"booking_id"`
	BookingReference string    `json:"booking_reference"`
	UserID           string    `json:"user_id"`
	UserEmail        string    `json:"user_email"`
	UserName         string    `json:"user_name"`
	VehicleID        string    `json:"vehicle_id"`
	VehicleName      string    `json:"vehicle_name"`
	VehicleType      string    `json:"vehicle_type"`
	BookingStatus    string    `json:"booking_status"`
	PaymentStatus    string    `json:"payment_status"`
	PickupDate       time.Time `json:"pickup_date"`
	DropoffDate      time.Time `json:"dropoff_date"`
	TotalAmount      float64   `json:"total_amount"`
	AdvancePayment   float64   `json:"advance_payment"`
	RefundAmount     *float64  `json:"refund_amount,omitempty"`
	Rating           *float64  `json:"rating,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

func NewBookingEvent(eventType string, booking model.Booking) BookingEvent {
	userName := booking.UserUsername
	if booking.UserFullName != nil && *booking.UserFullName != constant.Empty {
		userName = *booking.UserFullName
	}

	return BookingEvent{
		Type:             eventType,
		BookingID:        booking.ID,
		BookingReference: booking.BookingReference,
		UserID:           booking.UserID,
		UserEmail:        booking.UserEmail,
		UserName:         userName,
		VehicleID:        booking.VehicleID,
		VehicleName:      booking.VehicleBrand + " " + booking.VehicleModel,
		VehicleType:      booking.VehicleType,
		BookingStatus:    booking.BookingStatus,
		PaymentStatus:    booking.PaymentStatus,
		PickupDate:       booking.PickupDate,
		DropoffDate:      booking.DropoffDate,
		TotalAmount:      booking.TotalAmount,
		AdvancePayment:   booking.AdvancePayment,
		RefundAmount:     booking.RefundAmount,
		Rating:           booking.FeedbackRating,
		OccurredAt:       timezone.Now(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// Publish is a no-op while Kafka is disabled. Events are keyed by booking id.
func (p *publisherImpl) Publish(ctx context.Context, event BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"event.type":       event.Type,
		"event.booking_id": event.BookingID,
	})

	if !p.cfg.Kafka.Enable {
		log.Debug().Str("type", event.Type).Str("booking_id", event.BookingID).Msg("kafka disabled, skipping booking event")

		return nil
	}

	err = p.client.SendMessages(ctx, p.cfg.Kafka.Topics.Booking, kafka.Message{
		Key:   event.BookingID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}

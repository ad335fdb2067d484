package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"gomoto/config"
	kafkaMocks "gomoto/infras/kafka/mocks"
	"gomoto/infras/mail"
	mailMocks "gomoto/infras/mail/mocks"
	"gomoto/infras/metrics"
	"gomoto/infras/otel/mocks"
	"gomoto/internal/consumers/booking"
	"gomoto/internal/domains/booking/event"

	"github.com/prometheus/client_golang/prometheus/testutil"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func message(t *testing.T, evt event.BookingEvent) kafkaGo.Message {
	t.Helper()

	value, err := json.Marshal(evt)
	require.NoError(t, err)

	return kafkaGo.Message{Key: []byte(evt.BookingID), Value: value}
}

func bookingEvent(eventType string) event.BookingEvent {
	refund := 450.0

	return event.BookingEvent{
		Type:             eventType,
		BookingID:        "booking-1",
		BookingReference: "GOMOTO20261014093000000001",
		UserEmail:        "rider@example.com",
		UserName:         "Asha",
		VehicleName:      "Honda Activa",
		BookingStatus:    "cancelled",
		PickupDate:       time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC),
		DropoffDate:      time.Date(2026, 11, 3, 10, 0, 0, 0, time.UTC),
		TotalAmount:      900,
		RefundAmount:     &refund,
	}
}

func newConsumer(t *testing.T) (*booking.Consumer, *mailMocks.MockMailer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mailer := mailMocks.NewMockMailer(ctrl)

	return booking.New(&config.Config{}, kafkaMocks.NewMockClient(ctrl), mailer, mocks.NewOtel()), mailer
}

func TestConsumer_Handle(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		subject   string
		contains  string
	}{
		{name: "created", eventType: event.TypeBookingCreated, subject: "Booking received: GOMOTO20261014093000000001", contains: "Honda Activa"},
		{name: "status updated", eventType: event.TypeBookingStatusUpdated, subject: "Booking updated: GOMOTO20261014093000000001", contains: "changed to cancelled"},
		{name: "cancelled", eventType: event.TypeBookingCancelled, subject: "Booking cancelled: GOMOTO20261014093000000001", contains: "Refund: 450.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumer, mailer := newConsumer(t)

			sent := metrics.NotificationsSentTotal.WithLabelValues(tt.eventType, "sent")
			before := testutil.ToFloat64(sent)

			mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg mail.Message) error {
				assert.Equal(t, []string{"rider@example.com"}, msg.To)
				assert.Equal(t, tt.subject, msg.Subject)
				assert.Contains(t, msg.TextBody, tt.contains)
				assert.Contains(t, msg.HTMLBody, "GOMOTO20261014093000000001")

				return nil
			})

			require.NoError(t, consumer.Handle(context.Background(), message(t, bookingEvent(tt.eventType))))
			assert.Equal(t, before+1, testutil.ToFloat64(sent))
		})
	}
}

func TestConsumer_HandleSkipsFeedback(t *testing.T) {
	consumer, _ := newConsumer(t)

	err := consumer.Handle(context.Background(), message(t, bookingEvent(event.TypeBookingFeedbackSubmitted)))

	assert.NoError(t, err)
}

func TestConsumer_HandleInvalidPayload(t *testing.T) {
	consumer, _ := newConsumer(t)

	invalid := metrics.ConsumerMessagesTotal.WithLabelValues("unknown", "invalid")
	before := testutil.ToFloat64(invalid)

	err := consumer.Handle(context.Background(), kafkaGo.Message{Key: []byte("k"), Value: []byte("not json")})

	require.Error(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(invalid))
}

func TestConsumer_HandleMissingEmail(t *testing.T) {
	consumer, _ := newConsumer(t)

	evt := bookingEvent(event.TypeBookingCreated)
	evt.UserEmail = ""

	err := consumer.Handle(context.Background(), message(t, evt))

	assert.ErrorIs(t, err, booking.ErrMissingRecipient)
}

func TestConsumer_HandleMailFailure(t *testing.T) {
	consumer, mailer := newConsumer(t)
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	err := consumer.Handle(context.Background(), message(t, bookingEvent(event.TypeBookingCancelled)))

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "smtp down"))
}

func TestConsumer_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	mailer := mailMocks.NewMockMailer(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.ConsumerGroup = "gomoto-notifier"
	cfg.Kafka.Topics.Booking = "gomoto.booking"

	done := make(chan struct{})

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, mail.Message) error {
		close(done)

		return nil
	})

	client.EXPECT().Consume(gomock.Any(), "gomoto-notifier", "gomoto.booking", gomock.Any()).
		Do(func(_ context.Context, _, _ string, handler func(kafkaGo.Message)) {
			handler(message(t, bookingEvent(event.TypeBookingCreated)))
		})

	booking.New(cfg, client, mailer, mocks.NewOtel()).Start(context.Background())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

package kafka_test

import (
	"context"
	"testing"

	"gomoto/config"
	"gomoto/infras/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
}

func TestMessage_RoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "booking-1", Value: payload{BookingID: "booking-1", Amount: 3300}}

	kafkaMsg, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("booking-1"), kafkaMsg.Key)
	assert.JSONEq(t, `{"booking_id":"booking-1","amount":3300}`, string(kafkaMsg.Value))

	key, decoded, err := kafka.DecodeKafkaMessage[payload](kafkaMsg)
	require.NoError(t, err)
	assert.Equal(t, "booking-1", key)
	assert.Equal(t, 3300.0, decoded.Amount)
}

func TestMessage_UnsupportedValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestClient_SendMessagesRequiresTopic(t *testing.T) {
	client := kafka.New(&config.Config{})

	err := client.SendMessages(context.Background(), "", kafka.Message{Key: "k", Value: "v"})
	assert.ErrorIs(t, err, kafka.ErrMissingTopic)
	assert.NoError(t, client.Close())
}

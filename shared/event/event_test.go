package event_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	"hotel/shared/event"
)

func enabledConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic.Booking = "hotel.booking"

	return cfg
}

func TestPublisher_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	publisher := event.NewPublisher(&config.Config{}, client, mocks.NewOtel())

	err := publisher.PublishBooking(context.Background(), event.Booking{BookingID: "b1"})

	assert.NoError(t, err)
}

func TestPublisher_PublishBooking(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
		wantErr bool
	}{
		{name: "published"},
		{name: "broker unavailable", sendErr: errors.New("dial tcp: refused"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := kafkaMocks.NewMockClient(ctrl)

			client.EXPECT().
				SendMessages(gomock.Any(), "hotel.booking", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
					assert.Len(t, messages, 1)
					assert.Equal(t, "b1", messages[0].Key)

					return tt.sendErr
				})

			publisher := event.NewPublisher(enabledConfig(), client, mocks.NewOtel())

			err := publisher.PublishBooking(context.Background(), event.Booking{
				Type:      event.TypeBookingConfirmed,
				BookingID: "b1",
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

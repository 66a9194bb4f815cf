package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingConfirmed     = "booking.confirmed"
	TypeBookingPending       = "booking.pending"
	TypeBookingStatusChanged = "booking.status_changed"
	TypeBookingRoomAssigned  = "booking.room_assigned"
)

// Booking is the payload published on the booking topic, keyed by BookingID.
type Booking struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	GuestID    string    `json:"guest_id"`
	RoomTypeID string    `json:"room_type_id"`
	RoomID     string    `json:"room_id,omitempty"`
	Status     string    `json:"status"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	TotalPrice string    `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishBooking(ctx context.Context, events ...Booking) error
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

type noopPublisher struct{}

func (noopPublisher) PublishBooking(_ context.Context, events ...Booking) error {
	log.Debug().Int("count", len(events)).Msg("kafka disabled, dropping booking events")

	return nil
}

func NewPublisher(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	if !cfg.Kafka.Enable {
		return noopPublisher{}
	}

	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topic.Booking,
		otel:   otel,
	}
}

func (p *publisherImpl) PublishBooking(ctx context.Context, events ...Booking) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, len(events))
	for i, evt := range events {
		messages[i] = kafka.Message{Key: evt.BookingID, Value: evt}
	}

	scope.SetAttribute("event.topic", p.topic)
	scope.SetAttribute("event.count", len(events))

	if err = p.client.SendMessages(ctx, p.topic, messages...); err != nil {
		return fmt.Errorf("failed to publish booking events: %w", err)
	}

	return nil
}

// PublishAsync publishes after the caller's request has finished. Failures are logged only.
func PublishAsync(ctx context.Context, publisher Publisher, events ...Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := publisher.PublishBooking(c, events...); err != nil {
			log.Error().Err(err).Int("count", len(events)).Msg("failed to publish booking events")
		}
	}()
}

// Package events publishes domain events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/example/hotel-reservations/internal/application/usecases"
)

const ReservationConfirmedQueue = "reservation.confirmed"

// AMQPPublisher keeps one connection open and lazily re-dials after the
// broker drops it.
type AMQPPublisher struct {
	url string
	log *zap.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url string, log *zap.Logger) *AMQPPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &AMQPPublisher{url: url, log: log}
}

func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return nil, fmt.Errorf("amqp dial: %w", err)
		}
		p.conn = conn
	}
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	// durable so events survive a broker restart
	if _, err := ch.QueueDeclare(ReservationConfirmedQueue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("amqp queue declare: %w", err)
	}
	p.ch = ch
	return ch, nil
}

func (p *AMQPPublisher) PublishReservationConfirmed(ctx context.Context, ev usecases.ReservationConfirmed) error {
	pub, err := NewPublishing(ev, time.Now())
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	ch, err := p.channel()
	if err != nil {
		return err
	}
	if err := ch.PublishWithContext(ctx, "", ReservationConfirmedQueue, false, false, pub); err != nil {
		return fmt.Errorf("amqp publish: %w", err)
	}
	p.log.Debug("reservation.confirmed published", zap.String("reservation_id", ev.ReservationID))
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

// NewPublishing encodes ev as a persistent JSON message.
func NewPublishing(ev usecases.ReservationConfirmed, at time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ReservationID,
		Type:         ReservationConfirmedQueue,
		Timestamp:    at.UTC(),
		Body:         body,
	}, nil
}

package usecases

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/example/hotel-reservations/internal/domain/reservation"
)

type MockPayment struct {
	mock.Mock
	key string
}

func (m *MockPayment) Type() string { return m.key }
func (m *MockPayment) Name() string { return "Mock " + m.key }

func (m *MockPayment) Charge(ctx context.Context, amountCents int64, payerName string) bool {
	args := m.Called(amountCents, payerName)
	return args.Bool(0)
}

type MockNotification struct {
	mock.Mock
	key string
}

func (m *MockNotification) Type() string { return m.key }
func (m *MockNotification) Name() string { return "Mock " + m.key }

func (m *MockNotification) Recipient(c reservation.Customer) string {
	return c.Email()
}

func (m *MockNotification) Deliver(ctx context.Context, message, recipient string) {
	m.Called(message, recipient)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []ReservationConfirmed
	err    error
}

func (p *recordingPublisher) PublishReservationConfirmed(ctx context.Context, ev ReservationConfirmed) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

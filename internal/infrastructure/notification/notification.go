// Package notification holds the built-in confirmation senders. Delivery is
// simulated by writing to Out.
package notification

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/example/hotel-reservations/internal/domain/reservation"
)

const (
	TypeEmail = "email"
	TypeSMS   = "sms"
)

type Email struct {
	Out io.Writer
	Log *zap.Logger
}

func NewEmail(out io.Writer, log *zap.Logger) *Email { return &Email{Out: out, Log: orNop(log)} }

func (e *Email) Type() string                            { return TypeEmail }
func (e *Email) Name() string                            { return "Email" }
func (e *Email) Recipient(c reservation.Customer) string { return c.Email() }

func (e *Email) Deliver(ctx context.Context, message, recipient string) {
	fmt.Fprintf(e.Out, "Email sent to %s:\n%s\n", recipient, message)
	e.Log.Info("confirmation emailed", zap.String("recipient", recipient))
}

type SMS struct {
	Out io.Writer
	Log *zap.Logger
}

func NewSMS(out io.Writer, log *zap.Logger) *SMS { return &SMS{Out: out, Log: orNop(log)} }

func (s *SMS) Type() string                            { return TypeSMS }
func (s *SMS) Name() string                            { return "SMS" }
func (s *SMS) Recipient(c reservation.Customer) string { return c.Phone() }

func (s *SMS) Deliver(ctx context.Context, message, recipient string) {
	fmt.Fprintf(s.Out, "SMS sent to %s:\n%s\n", recipient, message)
	s.Log.Info("confirmation texted", zap.String("recipient", recipient))
}

// Registry returns the built-in notification strategies, email first.
func Registry(out io.Writer, log *zap.Logger) *reservation.Registry[reservation.NotificationMethod] {
	return reservation.NewRegistry[reservation.NotificationMethod](
		NewEmail(out, log),
		NewSMS(out, log),
	)
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

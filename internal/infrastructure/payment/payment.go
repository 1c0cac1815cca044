// Package payment holds the built-in payment strategies. Charges are
// simulated: they are reported to Out and logged, nothing leaves the process.
package payment

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/example/hotel-reservations/internal/domain/reservation"
)

const (
	TypeCreditCard = "credit"
	TypeOnSite     = "onsite"
)

// CreditCard charges immediately. Amounts above LimitCents are declined
// when LimitCents is positive.
type CreditCard struct {
	Out        io.Writer
	Log        *zap.Logger
	LimitCents int64
	Now        func() time.Time
}

func NewCreditCard(out io.Writer, log *zap.Logger, limitCents int64) *CreditCard {
	return &CreditCard{Out: out, Log: orNop(log), LimitCents: limitCents, Now: time.Now}
}

func (c *CreditCard) Type() string { return TypeCreditCard }
func (c *CreditCard) Name() string { return "Credit Card" }

func (c *CreditCard) Charge(ctx context.Context, amountCents int64, payerName string) bool {
	if amountCents < 0 {
		return false
	}
	if c.LimitCents > 0 && amountCents > c.LimitCents {
		fmt.Fprintf(c.Out, "Credit card payment of %s for %s declined: over limit of %s\n",
			reservation.FormatCents(amountCents), payerName, reservation.FormatCents(c.LimitCents))
		c.Log.Warn("credit card declined",
			zap.String("payer", payerName),
			zap.Int64("amount_cents", amountCents),
			zap.Int64("limit_cents", c.LimitCents))
		return false
	}
	ref := Reference(TypeCreditCard, payerName, amountCents, c.Now())
	fmt.Fprintf(c.Out, "Credit card payment of %s for %s processed successfully (ref %s)\n",
		reservation.FormatCents(amountCents), payerName, ref)
	c.Log.Info("credit card charged",
		zap.String("payer", payerName),
		zap.Int64("amount_cents", amountCents),
		zap.String("ref", ref))
	return true
}

// OnSite records that the guest settles at the front desk.
type OnSite struct {
	Out io.Writer
	Log *zap.Logger
	Now func() time.Time
}

func NewOnSite(out io.Writer, log *zap.Logger) *OnSite {
	return &OnSite{Out: out, Log: orNop(log), Now: time.Now}
}

func (o *OnSite) Type() string { return TypeOnSite }
func (o *OnSite) Name() string { return "On-site Payment" }

func (o *OnSite) Charge(ctx context.Context, amountCents int64, payerName string) bool {
	if amountCents < 0 {
		return false
	}
	ref := Reference(TypeOnSite, payerName, amountCents, o.Now())
	fmt.Fprintf(o.Out, "On-site payment of %s for %s received successfully (ref %s)\n",
		reservation.FormatCents(amountCents), payerName, ref)
	o.Log.Info("on-site payment recorded",
		zap.String("payer", payerName),
		zap.Int64("amount_cents", amountCents),
		zap.String("ref", ref))
	return true
}

// Registry returns the built-in payment strategies, credit card first.
func Registry(out io.Writer, log *zap.Logger, cardLimitCents int64) *reservation.Registry[reservation.PaymentMethod] {
	return reservation.NewRegistry[reservation.PaymentMethod](
		NewCreditCard(out, log, cardLimitCents),
		NewOnSite(out, log),
	)
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

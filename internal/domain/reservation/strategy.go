package reservation

import "context"

// Strategy is implemented by every selectable payment or notification
// behaviour. Type is the registry key, Name is shown to the customer.
type Strategy interface {
	Type() string
	Name() string
}

// PaymentMethod charges a customer. Failure is reported through the
// boolean result, never through a panic.
type PaymentMethod interface {
	Strategy
	Charge(ctx context.Context, amountCents int64, payerName string) bool
}

// NotificationMethod delivers a confirmation. Recipient picks the address
// (email, phone, ...) the variant sends to.
type NotificationMethod interface {
	Strategy
	Recipient(c Customer) string
	Deliver(ctx context.Context, message, recipient string)
}

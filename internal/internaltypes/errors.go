package internaltypes

import "errors"

// Booking rejections. All are recoverable; callers match them with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidDateRange = errors.New("invalid date range: check-out must be after check-in")
	ErrInvalidCustomer  = errors.New("invalid customer: name, email and phone are required")
	ErrInvalidRoom      = errors.New("invalid room")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomUnavailable  = errors.New("room is not available for the selected dates")
	ErrPaymentFailed    = errors.New("payment failed")
	ErrStrategyMissing  = errors.New("payment and notification methods are required")
	ErrUnknownStrategy  = errors.New("unknown strategy type")
)

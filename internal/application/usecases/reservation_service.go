package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/hotel-reservations/internal/domain/reservation"
	"github.com/example/hotel-reservations/internal/internaltypes"
)

// RoomUnavailableError rejects a booking whose dates collide with a
// confirmed reservation. Confirmed is the room's confirmed reservations at
// the time of the check.
type RoomUnavailableError struct {
	RoomNumber int
	Confirmed  []*reservation.Reservation
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf("room %d: %s", e.RoomNumber, internaltypes.ErrRoomUnavailable)
}

func (e *RoomUnavailableError) Unwrap() error { return internaltypes.ErrRoomUnavailable }

type BookingRequest struct {
	Customer     reservation.Customer
	RoomNumber   int
	CheckIn      time.Time
	CheckOut     time.Time
	Payment      reservation.PaymentMethod
	Notification reservation.NotificationMethod
}

// ReservationService runs booking transactions against a fixed catalog.
// Events is optional.
type ReservationService struct {
	Catalog *reservation.Catalog
	Locks   RoomLocker
	Events  EventPublisher
	Log     *zap.Logger
	Now     func() time.Time
}

func NewReservationService(catalog *reservation.Catalog, log *zap.Logger) *ReservationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReservationService{
		Catalog: catalog,
		Locks:   NewMemoryLocker(),
		Log:     log,
		Now:     time.Now,
	}
}

// MakeReservation validates the request, attaches a provisional reservation,
// charges for it and either confirms and notifies, or detaches it again.
// Rejections are returned as errors matching the internaltypes sentinels.
func (s *ReservationService) MakeReservation(ctx context.Context, req BookingRequest) (*reservation.Reservation, error) {
	if req.Payment == nil || req.Notification == nil {
		return nil, internaltypes.ErrStrategyMissing
	}
	if req.Customer.Name() == "" {
		return nil, internaltypes.ErrInvalidCustomer
	}
	dates := reservation.NewDateRange(req.CheckIn, req.CheckOut)
	log := s.Log.With(zap.Int("room", req.RoomNumber), zap.Stringer("dates", dates))
	if !dates.Valid() {
		log.Info("reservation rejected", zap.Error(internaltypes.ErrInvalidDateRange))
		return nil, internaltypes.ErrInvalidDateRange
	}
	room, ok := s.Catalog.Room(req.RoomNumber)
	if !ok {
		log.Info("reservation rejected", zap.Error(internaltypes.ErrRoomNotFound))
		return nil, fmt.Errorf("room %d: %w", req.RoomNumber, internaltypes.ErrRoomNotFound)
	}

	unlock, err := s.Locks.Lock(ctx, room.Number())
	if err != nil {
		return nil, fmt.Errorf("lock room %d: %w", room.Number(), err)
	}
	res, err := s.book(ctx, log, room, dates, req)
	unlock()
	if err != nil {
		return nil, err
	}

	if s.Events != nil {
		ev := newReservationConfirmed(res, req.Payment, req.Notification, s.Now())
		if perr := s.Events.PublishReservationConfirmed(ctx, ev); perr != nil {
			log.Warn("publish reservation.confirmed failed", zap.Error(perr))
		}
	}
	return res, nil
}

// book runs the check-attach-charge-confirm sequence. The caller holds the
// room lock.
func (s *ReservationService) book(ctx context.Context, log *zap.Logger, room *reservation.Room, dates reservation.DateRange, req BookingRequest) (*reservation.Reservation, error) {
	if !room.IsAvailable(dates) {
		log.Info("reservation rejected", zap.Error(internaltypes.ErrRoomUnavailable))
		return nil, &RoomUnavailableError{RoomNumber: room.Number(), Confirmed: room.ConfirmedReservations()}
	}

	res := reservation.New(req.Customer, room, dates, s.Now())
	room.Attach(res)
	log = log.With(zap.Stringer("reservation_id", res.ID()))

	if !req.Payment.Charge(ctx, res.TotalCents(), req.Customer.Name()) {
		room.Detach(res)
		log.Warn("payment failed, reservation rolled back",
			zap.String("payment", req.Payment.Type()),
			zap.Int64("amount_cents", res.TotalCents()))
		return nil, internaltypes.ErrPaymentFailed
	}
	res.Confirm()
	log.Info("reservation confirmed",
		zap.String("payment", req.Payment.Type()),
		zap.Int64("amount_cents", res.TotalCents()))

	msg := NewConfirmation(res).Message()
	req.Notification.Deliver(ctx, msg, req.Notification.Recipient(req.Customer))
	return res, nil
}

// RoomAvailability pairs a room with whether it can be booked for a range.
type RoomAvailability struct {
	Room      *reservation.Room
	Available bool
}

// ListAvailability reports every catalog room, ordered by number, with its
// availability for [checkIn, checkOut).
func (s *ReservationService) ListAvailability(checkIn, checkOut time.Time) ([]RoomAvailability, error) {
	dates := reservation.NewDateRange(checkIn, checkOut)
	if !dates.Valid() {
		return nil, internaltypes.ErrInvalidDateRange
	}
	rooms := s.Catalog.Rooms()
	out := make([]RoomAvailability, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RoomAvailability{Room: r, Available: r.IsAvailable(dates)})
	}
	return out, nil
}

func (s *ReservationService) Rooms() []*reservation.Room { return s.Catalog.Rooms() }

// IsRejection reports whether err is an expected booking outcome rather than
// an infrastructure failure.
func IsRejection(err error) bool {
	for _, target := range []error{
		internaltypes.ErrInvalidDateRange,
		internaltypes.ErrInvalidCustomer,
		internaltypes.ErrRoomNotFound,
		internaltypes.ErrRoomUnavailable,
		internaltypes.ErrPaymentFailed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

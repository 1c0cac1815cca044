// Package voucher issues tamper-proof confirmation codes for confirmed
// reservations and decodes them again at the front desk.
package voucher

import (
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/example/hotel-reservations/internal/domain/reservation"
)

const name = "hotelres_voucher"

// ValidFor bounds how long an issued voucher verifies.
const ValidFor = 365 * 24 * time.Hour

var ErrNotConfirmed = errors.New("voucher: reservation is not confirmed")

type Voucher struct {
	ReservationID string `json:"rid"`
	CustomerName  string `json:"name"`
	RoomNumber    int    `json:"room"`
	CheckIn       string `json:"in"`
	CheckOut      string `json:"out"`
	TotalCents    int64  `json:"total"`
}

type Signer struct{ sc *securecookie.SecureCookie }

func NewSigner(hashKey, blockKey []byte) *Signer {
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int(ValidFor.Seconds()))
	sc.SetSerializer(securecookie.JSONEncoder{})
	return &Signer{sc: sc}
}

func (s *Signer) Issue(r *reservation.Reservation) (string, error) {
	if !r.Confirmed() {
		return "", ErrNotConfirmed
	}
	v := Voucher{
		ReservationID: r.ID().String(),
		CustomerName:  r.Customer().Name(),
		RoomNumber:    r.Room().Number(),
		CheckIn:       r.CheckIn().Format(reservation.DateLayout),
		CheckOut:      r.CheckOut().Format(reservation.DateLayout),
		TotalCents:    r.TotalCents(),
	}
	code, err := s.sc.Encode(name, v)
	if err != nil {
		return "", fmt.Errorf("encode voucher: %w", err)
	}
	return code, nil
}

func (s *Signer) Verify(code string) (Voucher, error) {
	var v Voucher
	if err := s.sc.Decode(name, code, &v); err != nil {
		return Voucher{}, fmt.Errorf("invalid voucher: %w", err)
	}
	return v, nil
}

package voucher

import (
	"testing"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/hotel-reservations/internal/domain/reservation"
)

func newReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	room, err := reservation.NewRoom(103, "Standard", 12000)
	require.NoError(t, err)
	c, err := reservation.NewCustomer("Ana", "ana@example.com", "555")
	require.NoError(t, err)
	return reservation.New(c, room, reservation.NewDateRange(reservation.Date(2024, 6, 10), reservation.Date(2024, 6, 12)), time.Now())
}

func newSigner() *Signer {
	return NewSigner(securecookie.GenerateRandomKey(32), securecookie.GenerateRandomKey(32))
}

func TestIssueVerify(t *testing.T) {
	s := newSigner()
	res := newReservation(t)
	res.Confirm()

	code, err := s.Issue(res)
	require.NoError(t, err)

	v, err := s.Verify(code)
	require.NoError(t, err)
	assert.Equal(t, Voucher{
		ReservationID: res.ID().String(),
		CustomerName:  "Ana",
		RoomNumber:    103,
		CheckIn:       "2024-06-10",
		CheckOut:      "2024-06-12",
		TotalCents:    24000,
	}, v)
}

func TestIssue_Unconfirmed(t *testing.T) {
	_, err := newSigner().Issue(newReservation(t))
	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestVerify_RejectsForeignAndTampered(t *testing.T) {
	res := newReservation(t)
	res.Confirm()
	code, err := newSigner().Issue(res)
	require.NoError(t, err)

	_, err = newSigner().Verify(code)
	assert.Error(t, err, "different keys")

	s := newSigner()
	code, err = s.Issue(res)
	require.NoError(t, err)
	tampered := []byte(code)
	tampered[len(tampered)/2] ^= 1
	_, err = s.Verify(string(tampered))
	assert.Error(t, err)
}

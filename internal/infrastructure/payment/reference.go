package payment

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Reference derives a short, stable charge reference from the charge
// parameters. The same inputs always yield the same reference.
func Reference(method, payerName string, amountCents int64, at time.Time) string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(strings.ToLower(method)))
	h.Write([]byte{0})
	h.Write([]byte(payerName))
	h.Write([]byte{0})
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(amountCents))
	binary.BigEndian.PutUint64(buf[8:], uint64(at.UnixNano()))
	h.Write(buf[:])
	return strings.ToUpper(hex.EncodeToString(h.Sum(nil)[:6]))
}

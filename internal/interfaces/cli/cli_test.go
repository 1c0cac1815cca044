package cli

import (
	"bytes"
	"encoding/base64"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/hotel-reservations/internal/internaltypes"
)

func cleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DATABASE_URL", "REDIS_ADDR", "AMQP_URL", "VOUCHER_HASH_KEY", "VOUCHER_BLOCK_KEY", "CARD_LIMIT_CENTS", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	t.Setenv("LOG_LEVEL", "error")
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	err := root.Execute()
	return out.String(), err
}

func TestShell_BookThenConflict(t *testing.T) {
	cleanEnv(t)
	input := strings.Join([]string{
		"1", "Ana", "ana@example.com", "555-0100", "2024-06-10", "2024-06-12", "103", "1", "1",
		"1", "Bob", "bob@example.com", "555-0101", "2024-06-11", "2024-06-13", "103", "2", "2",
		"3",
	}, "\n") + "\n"

	out, err := run(t, input, "shell")
	require.NoError(t, err)

	assert.Contains(t, out, "Reservation completed successfully!")
	assert.Contains(t, out, "Total: $240.00")
	assert.Contains(t, out, "Credit card payment of $240.00 for Ana processed successfully")
	assert.Contains(t, out, "Email sent to ana@example.com")
	assert.Contains(t, out, "Room 103 is not available for the selected dates")
	assert.Contains(t, out, "Reservation: Ana | Room: 103 | 2024-06-10 to 2024-06-12 | $240.00")
	assert.NotContains(t, out, "SMS sent to 555-0101")
	assert.Contains(t, out, "Thank you for using our system!")
	assert.Equal(t, 1, strings.Count(out, "Reservation completed successfully!"))
}

func TestShell_AvailabilityTableAndBadInput(t *testing.T) {
	cleanEnv(t)
	input := strings.Join([]string{
		"abc", "9",
		"2",
		"1", "Ana", "ana@example.com", "555", "2024-13-01", "2024-06-12", "2024-06-10",
		"3",
	}, "\n") + "\n"

	out, err := run(t, input, "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "Please enter a valid number!")
	assert.Contains(t, out, "Invalid choice! Please try again.")
	assert.Contains(t, out, "    101 | Luxury      |     $250.00")
	assert.Contains(t, out, "Invalid date format!")
	assert.Contains(t, out, "Invalid date range: check-out must be after check-in")
}

func TestShell_CancelledCustomerAndEOF(t *testing.T) {
	cleanEnv(t)
	out, err := run(t, "1\nAna\n\n", "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "Customer creation cancelled.")
}

func TestBook_UnknownStrategyFallsBack(t *testing.T) {
	cleanEnv(t)
	out, err := run(t, "", "book",
		"--name", "Ana", "--email", "ana@example.com", "--phone", "555",
		"--room", "201", "--check-in", "2024-03-01", "--check-out", "2024-03-04",
		"--payment", "paypal", "--notify", "SMS")
	require.NoError(t, err)
	assert.Contains(t, out, "Credit card payment of $780.00 for Ana")
	assert.Contains(t, out, "SMS sent to 555")
	assert.Contains(t, out, "Payment Method: Credit Card")
}

func TestBook_CardLimitDeclines(t *testing.T) {
	cleanEnv(t)
	t.Setenv("CARD_LIMIT_CENTS", "10000")
	out, err := run(t, "", "book",
		"--name", "Ana", "--email", "ana@example.com", "--phone", "555",
		"--room", "103", "--check-in", "2024-03-01", "--check-out", "2024-03-04")
	require.ErrorIs(t, err, internaltypes.ErrPaymentFailed)
	assert.Contains(t, out, "Payment failed!")
	assert.NotContains(t, out, "Email sent")
}

func TestBook_Rejections(t *testing.T) {
	cleanEnv(t)
	_, err := run(t, "", "book",
		"--name", "Ana", "--email", "ana@example.com", "--phone", "555",
		"--room", "999", "--check-in", "2024-03-01", "--check-out", "2024-03-04")
	assert.ErrorIs(t, err, internaltypes.ErrRoomNotFound)

	_, err = run(t, "", "book",
		"--name", "Ana", "--email", "ana@example.com", "--phone", "555",
		"--room", "101", "--check-in", "2024-03-04", "--check-out", "2024-03-01")
	assert.ErrorIs(t, err, internaltypes.ErrInvalidDateRange)

	_, err = run(t, "", "book",
		"--name", " ", "--email", "ana@example.com", "--phone", "555",
		"--room", "101", "--check-in", "2024-03-01", "--check-out", "2024-03-04")
	assert.ErrorIs(t, err, internaltypes.ErrInvalidCustomer)
}

func TestVoucher_IssueAndVerify(t *testing.T) {
	cleanEnv(t)
	t.Setenv("VOUCHER_HASH_KEY", base64.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)))
	t.Setenv("VOUCHER_BLOCK_KEY", base64.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)))

	out, err := run(t, "", "book",
		"--name", "Ana", "--email", "ana@example.com", "--phone", "555",
		"--room", "102", "--check-in", "2024-05-01", "--check-out", "2024-05-02")
	require.NoError(t, err)
	m := regexp.MustCompile(`Voucher: (\S+)`).FindStringSubmatch(out)
	require.Len(t, m, 2, out)

	out, err = run(t, "", "voucher", "verify", m[1])
	require.NoError(t, err)
	assert.Contains(t, out, "Voucher is valid")
	assert.Contains(t, out, "Customer: Ana")
	assert.Contains(t, out, "Room: 102")
	assert.Contains(t, out, "Total: $180.00")

	_, err = run(t, "", "voucher", "verify", "not-a-voucher")
	assert.Error(t, err)
}

func TestRoomsAndMethods(t *testing.T) {
	cleanEnv(t)
	out, err := run(t, "", "rooms")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "$"), out)
	assert.Contains(t, out, "    203 | Standard    |     $130.00")

	out, err = run(t, "", "rooms", "--check-in", "2024-01-01", "--check-out", "2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "| YES"))

	out, err = run(t, "", "methods")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Credit Card (credit)")
	assert.Contains(t, out, "2. On-site Payment (onsite)")
	assert.Contains(t, out, "1. Email (email)")
	assert.Contains(t, out, "2. SMS (sms)")
}

func TestKeysAndVersion(t *testing.T) {
	out, err := run(t, "", "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "export VOUCHER_HASH_KEY=")
	assert.Contains(t, out, "export VOUCHER_BLOCK_KEY=")

	out, err = run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hotelres dev")
}

func TestCatalogMigrate_RequiresDatabase(t *testing.T) {
	cleanEnv(t)
	_, err := run(t, "", "catalog", "migrate")
	assert.ErrorContains(t, err, "DATABASE_URL is required")
}

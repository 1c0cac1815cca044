package reservation

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange is the half-open interval [Start, End) of calendar days.
// End after Start is checked by Validate, not by construction.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Date returns the calendar day y-m-d at midnight UTC.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// Day truncates t to its calendar day, keeping the day as seen in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Day(start), End: Day(end)}
}

func (r DateRange) Valid() bool { return r.End.After(r.Start) }

// Nights is the number of nights between check-in and check-out.
func (r DateRange) Nights() int {
	if !r.Valid() {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Overlaps reports whether a and b share at least one day. Ranges that only
// touch at a boundary (a.End == b.Start) do not overlap.
func Overlaps(a, b DateRange) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

func (r DateRange) Overlaps(other DateRange) bool { return Overlaps(r, other) }

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + " → " + r.End.Format(DateLayout)
}

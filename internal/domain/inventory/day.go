package inventory

import (
	"errors"
	"time"
)

var ErrInvalidDay = errors.New("invalid ledger date")

const dayLayout = "2006-01-02"

// Day is the calendar date a ledger is keyed by. Always date-only, UTC.
type Day struct {
	t time.Time
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, ErrInvalidDay
	}
	return Day{t: t}, nil
}

func DayOf(t time.Time) Day {
	y, m, d := t.UTC().Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Day) String() string {
	return d.t.Format(dayLayout)
}

func (d Day) Time() time.Time {
	return d.t
}

func (d Day) IsZero() bool {
	return d.t.IsZero()
}

func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

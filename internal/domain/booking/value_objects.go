package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidStayPeriod = errors.New("arrival date must be before departure date")
)

const dateLayout = "2006-01-02"

// Date is a civil calendar day. The wire and storage format is ISO-8601
// (YYYY-MM-DD); time-of-day and zone never enter date comparisons.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// StayPeriod is the half of a reservation that carries meaning: the
// arrival/departure date pair. Arrival must be strictly before departure.
type StayPeriod struct {
	arrival   Date
	departure Date
}

func NewStayPeriod(arrival, departure Date) (StayPeriod, error) {
	if !arrival.Before(departure) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{arrival: arrival, departure: departure}, nil
}

func (p StayPeriod) Arrival() Date {
	return p.arrival
}

func (p StayPeriod) Departure() Date {
	return p.departure
}

func (p StayPeriod) Nights() int {
	return int(p.departure.t.Sub(p.arrival.t).Hours() / 24)
}

// Overlaps reports whether two stays conflict on the same room. The
// comparison is inclusive on both ends: a departure date equal to another
// stay's arrival date counts as a conflict. Back-to-back same-day turnover
// is therefore rejected, matching the booking rule this system enforces.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return !p.arrival.After(other.departure) && !p.departure.Before(other.arrival)
}

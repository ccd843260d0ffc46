package binding

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
)

// Date is a calendar day without a time of day or a zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the day t falls on in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate accepts anything dateparse understands ("2018-02-14",
// "Feb 14 2018", "2018-02-14T10:00:00Z", ...) and keeps only the day.
func ParseDate(s string) (Date, error) {
	t, err := ParseDateTime(s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// ParseDateTime parses a wire timestamp. Strings without a zone are read as
// UTC.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date string")
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parsing date '%s'", s)
	}
	return t, nil
}

// FormatDateTime renders t the way the API expects timestamps.
func FormatDateTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time-of-day component.
// All arithmetic happens at UTC midnight so two dates built from the
// same wall-clock day always compare equal.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its UTC calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

func Today() Date {
	return DateOf(time.Now())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) AddDays(n int) Date {
	return Date{d.t.AddDate(0, 0, n)}
}

// AddMonths moves the date by whole calendar months, clipping the
// day-of-month to the last valid day of the target month. Go's AddDate
// normalizes overflow instead (Mar 31 minus one month becomes Mar 3),
// which is not the calendar behavior the statistics window needs.
func (d Date) AddMonths(n int) Date {
	y, m, day := d.t.Date()

	firstOfTarget := time.Date(y, time.Month(int(m)+n), 1, 0, 0, 0, 0, time.UTC)
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}

	return NewDate(firstOfTarget.Year(), firstOfTarget.Month(), day)
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// DaysInMonth returns the length of the month this date falls in.
func (d Date) DaysInMonth() int {
	return daysInMonth(d.t.Year(), d.t.Month())
}

func (d Date) Year() int        { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int         { return d.t.Day() }

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// InWindow reports whether the date lies inside [start, end], both ends
// inclusive.
func (d Date) InWindow(start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SortDates orders dates ascending in place.
func SortDates(dates []Date) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
}

package domain

import "errors"

var ErrInvalidPeriod = errors.New("invalid period (must be day, week or month)")

// Period is a symbolic time window used for filtering executions and
// sizing success-rate denominators.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return Period(s), nil
	default:
		return "", ErrInvalidPeriod
	}
}

// Window resolves the period against a reference date into a concrete
// [start, end] range, end always being the reference date itself. MONTH
// goes back one calendar month (same day-of-month, clipped to the last
// valid day of the previous month), not a fixed 30 days.
func (p Period) Window(ref Date) (start, end Date) {
	switch p {
	case PeriodDay:
		start = ref.AddDays(-1)
	case PeriodWeek:
		start = ref.AddDays(-7)
	case PeriodMonth:
		start = ref.AddMonths(-1)
	}
	return start, ref
}

// TotalDays is the denominator base for success rates: DAY is one day,
// WEEK seven, MONTH the length of the month the reference date falls in.
// Note the deliberate asymmetry with Window: the month window reaches into
// the previous month while the denominator counts the current one.
func (p Period) TotalDays(ref Date) int {
	switch p {
	case PeriodDay:
		return 1
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return ref.DaysInMonth()
	}
	return 0
}

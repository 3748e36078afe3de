package domain

import "errors"

var ErrInvalidFrequency = errors.New("invalid frequency (must be daily or weekly)")

// Frequency is the expected cadence of a habit. Each variant carries its
// own duplicate-prevention window, streak step, and expected-completion
// count, so rule logic lives here once per variant instead of being
// spread across flag checks.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyWeekly:
		return Frequency(s), nil
	default:
		return "", ErrInvalidFrequency
	}
}

func (f Frequency) Valid() bool {
	_, err := ParseFrequency(string(f))
	return err == nil
}

// DuplicateWindowViolated reports whether recording a completion on ref
// would break the at-most-one-per-window rule given the existing history.
// DAILY rejects a second completion on the same calendar day. WEEKLY uses
// a rolling trailing window: any completion strictly after ref-7d blocks
// the attempt, so day 0 and day 7 are both allowed but day 0 and day 6
// are not.
func (f Frequency) DuplicateWindowViolated(history []Date, ref Date) bool {
	switch f {
	case FrequencyDaily:
		for _, d := range history {
			if d.Equal(ref) {
				return true
			}
		}
	case FrequencyWeekly:
		cutoff := ref.AddDays(-7)
		for _, d := range history {
			if d.After(cutoff) {
				return true
			}
		}
	}
	return false
}

// StreakExtends reports whether a completion on cur keeps a streak alive
// when the previously counted completion was on prev (walking backward in
// time, so cur is the earlier date). DAILY accepts the same day or the
// day before; WEEKLY demands an exact 7-day offset, so a 6 or 8 day gap
// breaks the streak.
func (f Frequency) StreakExtends(prev, cur Date) bool {
	switch f {
	case FrequencyDaily:
		return cur.Equal(prev) || cur.Equal(prev.AddDays(-1))
	case FrequencyWeekly:
		return cur.Equal(prev.AddDays(-7))
	}
	return false
}

// ExpectedCompletions is the number of completions a habit of this
// frequency is expected to have in a period spanning totalDays. A period
// too short to contain even one expected occurrence yields zero.
func (f Frequency) ExpectedCompletions(totalDays int) int {
	switch f {
	case FrequencyDaily:
		return totalDays
	case FrequencyWeekly:
		return totalDays / 7
	}
	return 0
}

package domain

// StatisticReport is the per-habit view derived for an owner's habit set
// over one period. It is never persisted: streak and rate are always
// recomputed from the execution history, so there is no stored value to
// drift out of sync.
type StatisticReport struct {
	HabitID       int64   `json:"habit_id"`
	Executions    []Date  `json:"executions"`
	CurrentStreak int     `json:"current_streak"`
	SuccessRate   float64 `json:"success_rate"`
}

type StatsInput struct {
	OwnerID int64
	Period  Period
}

// CurrentStreak counts consecutive qualifying completions ending at the
// most recent one. The input may be unsorted; it is sorted ascending and
// walked backward from the latest date, advancing while the frequency's
// step rule holds and stopping at the first gap.
func CurrentStreak(executions []Date, frequency Frequency) int {
	if len(executions) == 0 {
		return 0
	}

	sorted := make([]Date, len(executions))
	copy(sorted, executions)
	SortDates(sorted)

	// the most recent completion always counts as a streak of one
	streak := 1
	previous := sorted[len(sorted)-1]
	for i := len(sorted) - 2; i >= 0; i-- {
		current := sorted[i]
		if !frequency.StreakExtends(previous, current) {
			break
		}
		streak++
		previous = current
	}

	return streak
}

// SuccessRate is the percentage of expected completions actually achieved
// within the period, where the expectation follows the habit's frequency
// and the period's day count. The result is deliberately uncapped: an
// over-completing habit reports more than 100. A period too short to
// expect a single completion rates zero rather than erroring.
func SuccessRate(executionCount int, frequency Frequency, period Period, ref Date) float64 {
	expected := frequency.ExpectedCompletions(period.TotalDays(ref))
	if expected == 0 {
		return 0
	}
	return float64(executionCount) / float64(expected) * 100
}

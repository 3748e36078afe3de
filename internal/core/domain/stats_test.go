package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/masnaviev/habit-tracker/internal/core/domain"
)

func TestCurrentStreak(t *testing.T) {
	today := domain.Today()
	daysAgo := func(n int) domain.Date {
		return today.AddDays(-n)
	}

	tests := []struct {
		name       string
		executions []domain.Date
		frequency  domain.Frequency
		want       int
	}{
		{
			name:       "Empty executions give zero for daily",
			executions: nil,
			frequency:  domain.FrequencyDaily,
			want:       0,
		},
		{
			name:       "Empty executions give zero for weekly",
			executions: nil,
			frequency:  domain.FrequencyWeekly,
			want:       0,
		},
		{
			name:       "Three consecutive days",
			executions: []domain.Date{today, daysAgo(1), daysAgo(2)},
			frequency:  domain.FrequencyDaily,
			want:       3,
		},
		{
			name:       "Six day gap breaks daily streak after first",
			executions: []domain.Date{today, daysAgo(6)},
			frequency:  domain.FrequencyDaily,
			want:       1,
		},
		{
			name:       "Unsorted input is sorted before the walk",
			executions: []domain.Date{daysAgo(2), today, daysAgo(1)},
			frequency:  domain.FrequencyDaily,
			want:       3,
		},
		{
			name:       "Gap inside history stops the walk",
			executions: []domain.Date{today, daysAgo(1), daysAgo(4), daysAgo(5)},
			frequency:  domain.FrequencyDaily,
			want:       2,
		},
		{
			name:       "Three weekly completions exactly seven days apart",
			executions: []domain.Date{today, daysAgo(7), daysAgo(14)},
			frequency:  domain.FrequencyWeekly,
			want:       3,
		},
		{
			name:       "Weekly eight-day gap breaks the streak",
			executions: []domain.Date{today, daysAgo(8)},
			frequency:  domain.FrequencyWeekly,
			want:       1,
		},
		{
			name:       "Weekly six-day gap breaks the streak",
			executions: []domain.Date{today, daysAgo(6), daysAgo(13)},
			frequency:  domain.FrequencyWeekly,
			want:       1,
		},
		{
			name:       "Single weekly completion",
			executions: []domain.Date{today},
			frequency:  domain.FrequencyWeekly,
			want:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CurrentStreak(tt.executions, tt.frequency)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrentStreak_DoesNotMutateInput(t *testing.T) {
	today := domain.Today()
	executions := []domain.Date{today, today.AddDays(-2), today.AddDays(-1)}

	domain.CurrentStreak(executions, domain.FrequencyDaily)

	assert.True(t, executions[0].Equal(today), "input order must be preserved")
	assert.True(t, executions[1].Equal(today.AddDays(-2)))
}

func TestSuccessRate(t *testing.T) {
	ref := domain.NewDate(2024, time.June, 10) // June has 30 days

	tests := []struct {
		name      string
		count     int
		frequency domain.Frequency
		period    domain.Period
		want      float64
	}{
		{
			name:      "Daily over a day, over-completed, uncapped",
			count:     7,
			frequency: domain.FrequencyDaily,
			period:    domain.PeriodDay,
			want:      700.0,
		},
		{
			name:      "Weekly over a day short-circuits to zero",
			count:     0,
			frequency: domain.FrequencyWeekly,
			period:    domain.PeriodDay,
			want:      0,
		},
		{
			name:      "Weekly over a day with a completion still zero",
			count:     1,
			frequency: domain.FrequencyWeekly,
			period:    domain.PeriodDay,
			want:      0,
		},
		{
			name:      "Daily over a week",
			count:     5,
			frequency: domain.FrequencyDaily,
			period:    domain.PeriodWeek,
			want:      5.0 / 7.0 * 100,
		},
		{
			name:      "Weekly over a week",
			count:     1,
			frequency: domain.FrequencyWeekly,
			period:    domain.PeriodWeek,
			want:      100.0,
		},
		{
			name:      "Daily over a thirty-day month",
			count:     15,
			frequency: domain.FrequencyDaily,
			period:    domain.PeriodMonth,
			want:      50.0,
		},
		{
			name:      "Weekly over a thirty-day month expects four",
			count:     4,
			frequency: domain.FrequencyWeekly,
			period:    domain.PeriodMonth,
			want:      100.0,
		},
		{
			name:      "Zero completions rate zero",
			count:     0,
			frequency: domain.FrequencyDaily,
			period:    domain.PeriodMonth,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.SuccessRate(tt.count, tt.frequency, tt.period, ref)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestSuccessRate_MonthDenominatorFollowsCurrentMonth(t *testing.T) {
	feb := domain.NewDate(2024, time.February, 20) // leap year, 29 days
	got := domain.SuccessRate(29, domain.FrequencyDaily, domain.PeriodMonth, feb)
	assert.InDelta(t, 100.0, got, 0.0001)
}

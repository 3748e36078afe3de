package services

import (
	"context"

	"github.com/masnaviev/habit-tracker/internal/core/domain"
)

type StatsService struct {
	habitRepo domain.HabitRepository
}

func NewStatsService(habitRepo domain.HabitRepository) *StatsService {
	return &StatsService{
		habitRepo: habitRepo,
	}
}

// GetStatistics builds one report per habit the owner has: the period is
// resolved to a window against today, the execution history filtered to
// it, and streak plus success rate computed from the filtered dates. An
// owner without habits gets an empty list, not an error.
func (s *StatsService) GetStatistics(ctx context.Context, input domain.StatsInput) ([]domain.StatisticReport, error) {
	habits, err := s.habitRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	today := domain.Today()
	start, end := input.Period.Window(today)

	reports := make([]domain.StatisticReport, 0, len(habits))
	for _, habit := range habits {
		executions := habit.ExecutionsInWindow(start, end)

		reports = append(reports, domain.StatisticReport{
			HabitID:       habit.ID,
			Executions:    executions,
			CurrentStreak: domain.CurrentStreak(executions, habit.Frequency),
			SuccessRate:   domain.SuccessRate(len(executions), habit.Frequency, input.Period, today),
		})
	}

	return reports, nil
}

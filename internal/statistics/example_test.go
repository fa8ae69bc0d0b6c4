package statistics_test

import (
	"fmt"

	"github.com/k-yamane/vocamind/internal/mission"
	"github.com/k-yamane/vocamind/internal/statistics"
)

func ExampleCalculateStatistics() {
	missions := []mission.Mission{
		{
			ID:           "alice:2026-01-15",
			UserID:       "alice",
			Date:         "2026-01-15",
			Status:       mission.StatusCompleted,
			NumQuestions: 5,
			CorrectCount: 4,
			XPReward:     50,
		},
	}

	// Calculate statistics for all time (no filters)
	result := statistics.CalculateStatistics(missions, nil, 0, 0)
	for _, stat := range result.Periods {
		fmt.Printf("Period %s: %d missions, %d/%d correct (%.0f%%), %d XP\n",
			stat.Period, stat.MissionsCompleted,
			stat.CorrectAnswers, stat.QuestionsAnswered,
			stat.AccuracyPercent, stat.XPEarned)
	}

	// Output:
	// Period 2026-01: 1 missions, 4/5 correct (80%), 50 XP
}

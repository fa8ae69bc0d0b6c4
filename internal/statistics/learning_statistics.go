// Package statistics aggregates completed missions and word states into
// per-month and overall learning figures.
package statistics

import (
	"sort"
	"time"

	"github.com/k-yamane/vocamind/internal/learning"
	"github.com/k-yamane/vocamind/internal/mission"
)

// PeriodStatistics summarizes one calendar month of completed missions.
type PeriodStatistics struct {
	Period            string
	MissionsCompleted int
	QuestionsAnswered int
	CorrectAnswers    int
	AccuracyPercent   float64
	XPEarned          int
	WeakWordsServed   int
	NewWordsServed    int
}

// AggregateStatistics summarizes everything in the filtered range, plus the
// current word-state breakdown, which is a point-in-time snapshot and ignores
// the period filter.
type AggregateStatistics struct {
	MissionsCompleted int
	QuestionsAnswered int
	CorrectAnswers    int
	AccuracyPercent   float64
	XPEarned          int

	NewWords      int
	LearningWords int
	ReviewWords   int
	MasteredWords int
}

// Result holds the per-period breakdown, newest period first, and the
// aggregate totals.
type Result struct {
	Periods   []PeriodStatistics
	Aggregate AggregateStatistics
}

// CalculateStatistics aggregates completed missions by calendar month. A
// non-zero year restricts to that year; a non-zero month additionally
// restricts to that month. Missions that never completed are skipped.
func CalculateStatistics(missions []mission.Mission, states []learning.WordState, year, month int) Result {
	byPeriod := map[string]*PeriodStatistics{}
	aggregate := AggregateStatistics{}

	for _, m := range missions {
		if m.Status != mission.StatusCompleted {
			continue
		}
		date, err := time.Parse("2006-01-02", m.Date)
		if err != nil {
			continue
		}
		if year != 0 && date.Year() != year {
			continue
		}
		if month != 0 && int(date.Month()) != month {
			continue
		}

		period := date.Format("2006-01")
		stats, ok := byPeriod[period]
		if !ok {
			stats = &PeriodStatistics{Period: period}
			byPeriod[period] = stats
		}

		stats.MissionsCompleted++
		stats.QuestionsAnswered += m.NumQuestions
		stats.CorrectAnswers += m.CorrectCount
		stats.XPEarned += m.XPReward
		stats.WeakWordsServed += m.WeakWordsCount
		stats.NewWordsServed += m.NewWordsCount

		aggregate.MissionsCompleted++
		aggregate.QuestionsAnswered += m.NumQuestions
		aggregate.CorrectAnswers += m.CorrectCount
		aggregate.XPEarned += m.XPReward
	}

	periods := make([]PeriodStatistics, 0, len(byPeriod))
	for _, stats := range byPeriod {
		stats.AccuracyPercent = accuracyPercent(stats.CorrectAnswers, stats.QuestionsAnswered)
		periods = append(periods, *stats)
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	aggregate.AccuracyPercent = accuracyPercent(aggregate.CorrectAnswers, aggregate.QuestionsAnswered)

	for _, state := range states {
		switch state.Status {
		case learning.StatusNew:
			aggregate.NewWords++
		case learning.StatusLearning:
			aggregate.LearningWords++
		case learning.StatusReview:
			aggregate.ReviewWords++
		case learning.StatusMastered:
			aggregate.MasteredWords++
		}
	}

	return Result{Periods: periods, Aggregate: aggregate}
}

func accuracyPercent(correct, answered int) float64 {
	if answered == 0 {
		return 0
	}
	return float64(correct) / float64(answered) * 100
}

package learning

import (
	"sort"
	"time"
)

const (
	correctStrengthDelta   = 0.15
	incorrectStrengthDelta = 0.25
	weakStrengthThreshold  = 0.6
	masteryStrength        = 0.85
	reviewStage            = 2
	masteryStage           = 5
)

// UpdateAfterAnswer applies one answer to a word state and returns the new
// state. The deltas are asymmetric on purpose: a wrong answer costs more
// strength than a right answer earns, so struggling words resurface sooner
// and more often.
func UpdateAfterAnswer(state WordState, wasCorrect bool, today time.Time) WordState {
	next := state

	if wasCorrect {
		next.TotalCorrect++
		if next.Stage < MaxStage {
			next.Stage++
		}
		next.Strength = clampStrength(next.Strength + correctStrengthDelta)
		next.Status = promoteAfterCorrect(next)
		next.NextReviewAt = StartOfDay(today).AddDate(0, 0, IntervalForStage(next.Stage))
	} else {
		next.TotalIncorrect++
		if next.Stage > 0 {
			next.Stage--
		}
		next.Strength = clampStrength(next.Strength - incorrectStrengthDelta)
		// Only new words change status on a wrong answer. Review and
		// mastered never downgrade.
		if next.Status == StatusNew {
			next.Status = StatusLearning
		}
		next.NextReviewAt = StartOfDay(today).AddDate(0, 0, 1)
	}

	next.LastSeenAt = today
	return next
}

func promoteAfterCorrect(state WordState) Status {
	status := state.Status
	if status == StatusNew {
		status = StatusLearning
	}
	if status == StatusLearning && state.Stage >= reviewStage {
		status = StatusReview
	}
	if status == StatusReview && state.Stage >= masteryStage && state.Strength > masteryStrength {
		status = StatusMastered
	}
	return status
}

// IsWeak reports whether a word needs attention today. Two independent
// triggers: the word is due for review, or its strength is chronically low.
// New words are never weak; they have not been answered yet.
func IsWeak(state WordState, today time.Time) bool {
	if state.Status == StatusNew {
		return false
	}
	due := !state.NextReviewAt.After(StartOfDay(today))
	return due || state.Strength < weakStrengthThreshold
}

// SortWeakStates orders states weakest-first: ascending strength, ties broken
// by the oldest last-seen date. The planner consumes weak words in this order
// so the most urgent reviews always surface first.
func SortWeakStates(states []WordState) []WordState {
	sorted := make([]WordState, len(states))
	copy(sorted, states)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Strength != sorted[j].Strength {
			return sorted[i].Strength < sorted[j].Strength
		}
		return sorted[i].LastSeenAt.Before(sorted[j].LastSeenAt)
	})
	return sorted
}

func clampStrength(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

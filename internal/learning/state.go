// Package learning implements the spaced-repetition word state machine: pure
// transition functions applied to a per-user, per-word repetition record after
// each answer, plus weak-word classification and ordering.
package learning

import "time"

// Status is the lifecycle phase of a word for a user. It advances
// monotonically and never drops below learning once a word has been answered.
type Status string

const (
	StatusNew      Status = "new"
	StatusLearning Status = "learning"
	StatusReview   Status = "review"
	StatusMastered Status = "mastered"
)

// intervalDays maps a stage to the number of days until the next review.
var intervalDays = [...]int{1, 2, 4, 7, 15, 30, 60}

// MaxStage is the highest stage in the interval table.
const MaxStage = len(intervalDays) - 1

// WordState is the spaced-repetition record for one word and one user.
type WordState struct {
	UserID         string    `json:"user_id"`
	WordID         string    `json:"word_id"`
	Status         Status    `json:"status"`
	Stage          int       `json:"stage"`
	Strength       float64   `json:"strength"`
	LastSeenAt     time.Time `json:"last_seen_at"`
	NextReviewAt   time.Time `json:"next_review_at"`
	TotalCorrect   int       `json:"total_correct"`
	TotalIncorrect int       `json:"total_incorrect"`
}

// NewWordState creates the initial record for a word the user has never
// answered. The word becomes reviewable immediately.
func NewWordState(userID, wordID string, now time.Time) WordState {
	return WordState{
		UserID:       userID,
		WordID:       wordID,
		Status:       StatusNew,
		Stage:        0,
		Strength:     0,
		LastSeenAt:   now,
		NextReviewAt: now,
	}
}

// IntervalForStage returns the review interval in days for a stage, clamping
// out-of-range stages into the table.
func IntervalForStage(stage int) int {
	if stage < 0 {
		stage = 0
	}
	if stage > MaxStage {
		stage = MaxStage
	}
	return intervalDays[stage]
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

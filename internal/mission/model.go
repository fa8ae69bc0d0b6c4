// Package mission implements the daily mission planner: selecting words from
// weak/new/pool sources and synthesizing a fixed-shape set of heterogeneous
// quiz questions, ending with a story-context question.
package mission

import (
	"fmt"
	"time"
)

// Status is the lifecycle phase of a mission.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	// StatusExpired is declared for completeness; an incomplete mission is
	// superseded by the next day's mission rather than explicitly expired.
	StatusExpired Status = "expired"
)

// QuestionType identifies the contract a question was built under.
type QuestionType string

const (
	TypeDefinitionMCQ    QuestionType = "definition_mcq"
	TypeContextFillBlank QuestionType = "context_fill_blank"
	TypeUsageValidation  QuestionType = "usage_validation"
	TypeSynonymAntonym   QuestionType = "synonym_antonym"
	TypeRewriteSentence  QuestionType = "rewrite_sentence"
	TypeStoryContextMCQ  QuestionType = "story_context_mcq"
)

// Mission is one day's quiz for one user. One mission exists per (user, date).
type Mission struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Date           string     `json:"date"`
	Status         Status     `json:"status"`
	NumQuestions   int        `json:"num_questions"`
	XPReward       int        `json:"xp_reward"`
	WeakWordsCount int        `json:"weak_words_count"`
	NewWordsCount  int        `json:"new_words_count"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CorrectCount   int        `json:"correct_count"`
}

// Question is one immutable quiz item within a mission; only Answered changes
// after creation.
type Question struct {
	ID            string       `json:"id"`
	MissionID     string       `json:"mission_id"`
	Index         int          `json:"index"`
	Type          QuestionType `json:"type"`
	PrimaryWordID string       `json:"primary_word_id"`
	ExtraWordIDs  []string     `json:"extra_word_ids,omitempty"`
	Prompt        string       `json:"prompt"`
	Options       []string     `json:"options"`
	CorrectIndex  int          `json:"correct_index"`
	Answered      bool         `json:"answered"`
}

// WordIDs returns every word id the question references, primary first.
func (q Question) WordIDs() []string {
	ids := make([]string, 0, 1+len(q.ExtraWordIDs))
	ids = append(ids, q.PrimaryWordID)
	ids = append(ids, q.ExtraWordIDs...)
	return ids
}

// DateKey formats a time as the YYYY-MM-DD key missions are stored under.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MissionID derives the deterministic mission identifier for a user and day.
func MissionID(userID string, date time.Time) string {
	return fmt.Sprintf("%s:%s", userID, DateKey(date))
}

// QuestionID derives the identifier for the question at index within a mission.
func QuestionID(missionID string, index int) string {
	return fmt.Sprintf("%s:q%d", missionID, index)
}

// Package placement implements the adaptive placement test: an item bank
// built from the catalog with CEFR-like bands, and a sequential session that
// estimates a learner's band from multiple-choice answers.
package placement

import (
	"fmt"
	"time"
)

// Band is a coarse CEFR-like proficiency band.
type Band string

const (
	BandA1 Band = "A1"
	BandA2 Band = "A2"
	BandB1 Band = "B1"
	BandB2 Band = "B2"
	BandC1 Band = "C1"
)

// BandNone means no forced band; PickNextItem follows the session's ability.
const BandNone Band = ""

var bandOrder = []Band{BandA1, BandA2, BandB1, BandB2, BandC1}

// BandIndex returns the position of a band in the A1..C1 ordering.
func BandIndex(band Band) int {
	for i, b := range bandOrder {
		if b == band {
			return i
		}
	}
	return len(bandOrder) - 1
}

// Kind is the question style of a placement item.
type Kind string

const (
	KindDefinition Kind = "definition"
	KindSynonym    Kind = "synonym"
	KindAntonym    Kind = "antonym"
)

// Item is one immutable placement question, built once per session.
type Item struct {
	ID           string
	WordID       string
	Word         string
	Band         Band
	Topic        string
	Kind         Kind
	Prompt       string
	Options      []string
	CorrectIndex int
}

const (
	// Ability bounds for selection and updates. Ability 0 maps to B1.
	minAbility = -1
	maxAbility = 2
)

// Session is one adaptive test run. Ability is a bounded integer score; each
// answer nudges it and the next item is drawn near the implied band.
type Session struct {
	ID      string
	Asked   []string
	Answers []bool
	Ability int
}

// NewSession starts a session at ability 0 (band B1).
func NewSession() *Session {
	return &Session{
		ID: fmt.Sprintf("placement-%d", time.Now().UnixNano()),
	}
}

// HasAsked reports whether the item was already presented in this session.
func (s *Session) HasAsked(itemID string) bool {
	for _, id := range s.Asked {
		if id == itemID {
			return true
		}
	}
	return false
}

// Band maps the session's current ability to a band.
func (s *Session) Band() Band {
	return bandForAbility(s.Ability)
}

// CorrectCount returns how many answers so far were correct.
func (s *Session) CorrectCount() int {
	count := 0
	for _, correct := range s.Answers {
		if correct {
			count++
		}
	}
	return count
}

// bandForAbility maps an ability score to a band: -2 is A1, 0 is B1, 2 is C1.
func bandForAbility(ability int) Band {
	index := ability + 2
	if index < 0 {
		index = 0
	}
	if index >= len(bandOrder) {
		index = len(bandOrder) - 1
	}
	return bandOrder[index]
}

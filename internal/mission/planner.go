package mission

import (
	"math/rand"
	"time"

	"github.com/k-yamane/vocamind/internal/catalog"
)

const (
	// DefaultTargetQuestions is the number of questions a mission aims for.
	DefaultTargetQuestions = 5
	defaultXPPerQuestion   = 10
)

// Planner synthesizes daily missions. All randomness flows through the
// injected random source so planning is reproducible under a fixed seed.
type Planner struct {
	tagger          catalog.PosTagger
	rng             *rand.Rand
	targetQuestions int
	xpPerQuestion   int
}

// PlannerOption customizes a Planner.
type PlannerOption func(*Planner)

// WithTargetQuestions overrides the number of mission slots.
func WithTargetQuestions(n int) PlannerOption {
	return func(p *Planner) {
		p.targetQuestions = n
	}
}

// WithXPPerQuestion overrides the XP awarded per question.
func WithXPPerQuestion(xp int) PlannerOption {
	return func(p *Planner) {
		p.xpPerQuestion = xp
	}
}

// NewPlanner creates a Planner using the given part-of-speech strategy and
// random source.
func NewPlanner(tagger catalog.PosTagger, rng *rand.Rand, opts ...PlannerOption) *Planner {
	p := &Planner{
		tagger:          tagger,
		rng:             rng,
		targetQuestions: DefaultTargetQuestions,
		xpPerQuestion:   defaultXPPerQuestion,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan bundles a mission with its questions.
type Plan struct {
	Mission   Mission
	Questions []Question
}

// PlanDailyMission selects words from the weak/new/pool sources and builds
// one question per selected word. Whenever at least two words are selected,
// the final question is a story-context question over the last selected word,
// with earlier selections as the story's context.
func (p *Planner) PlanDailyMission(
	userID string,
	date time.Time,
	weakRanked []catalog.Word,
	newCandidates []catalog.Word,
	pool []catalog.Word,
) Plan {
	selected := SelectMissionWords(weakRanked, newCandidates, pool, p.targetQuestions, p.rng)
	b := newBuilder(pool, p.tagger, p.rng)

	missionID := MissionID(userID, date)
	questions := make([]Question, 0, len(selected))
	for i, sw := range selected {
		var d draft
		if i == len(selected)-1 && len(selected) >= 2 {
			context := make([]catalog.Word, 0, len(selected)-1)
			for _, other := range selected[:i] {
				context = append(context, other.Word)
			}
			d = b.storyQuestion(sw.Word, context)
		} else {
			d = b.questionForPosition(i, sw.Word)
		}

		questions = append(questions, Question{
			ID:            QuestionID(missionID, i),
			MissionID:     missionID,
			Index:         i,
			Type:          d.Type,
			PrimaryWordID: d.PrimaryWordID,
			ExtraWordIDs:  d.ExtraWordIDs,
			Prompt:        d.Prompt,
			Options:       d.Options,
			CorrectIndex:  d.CorrectIndex,
		})
	}

	weakCount, newCount := 0, 0
	for _, sw := range selected {
		switch sw.Bucket {
		case BucketWeak:
			weakCount++
		case BucketNew:
			newCount++
		}
	}

	return Plan{
		Mission: Mission{
			ID:             missionID,
			UserID:         userID,
			Date:           DateKey(date),
			Status:         StatusNotStarted,
			NumQuestions:   len(questions),
			XPReward:       p.xpPerQuestion * len(questions),
			WeakWordsCount: weakCount,
			NewWordsCount:  newCount,
			CreatedAt:      date,
		},
		Questions: questions,
	}
}

// IsStale reports whether a previously stored mission predates the current
// mission shape and should be regenerated: fewer than the target number of
// questions, or no story question. This is a migration guard for missions
// persisted before a shape change, not a gameplay rule.
func IsStale(m Mission, questions []Question) bool {
	if len(questions) < DefaultTargetQuestions {
		return true
	}
	for _, q := range questions {
		if q.Type == TypeStoryContextMCQ {
			return false
		}
	}
	return true
}

package mission

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-yamane/vocamind/internal/catalog"
)

var planDate = time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

func newTestPlanner(seed int64) *Planner {
	return NewPlanner(catalog.NewHeuristicPosTagger(), rand.New(rand.NewSource(seed)))
}

func TestPlanDailyMission(t *testing.T) {
	tests := []struct {
		name            string
		weak            []catalog.Word
		newWords        []catalog.Word
		pool            []catalog.Word
		expectedWeakMin int
		expectedNewMin  int
		expectedNewZero bool
	}{
		{
			name:            "weak and new words",
			weak:            makeWords("weak", 4),
			newWords:        makeWords("new", 2),
			pool:            makeWords("pool", 10),
			expectedWeakMin: 3,
			expectedNewMin:  1,
		},
		{
			name:           "cold start with only new words",
			weak:           nil,
			newWords:       makeWords("new", 6),
			pool:           makeWords("new", 6),
			expectedNewMin: 4,
		},
		{
			name:            "no new words",
			weak:            makeWords("weak", 6),
			newWords:        nil,
			pool:            makeWords("pool", 10),
			expectedWeakMin: 4,
			expectedNewZero: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := newTestPlanner(42).PlanDailyMission("user-1", planDate, tt.weak, tt.newWords, tt.pool)

			require.Len(t, plan.Questions, 5)
			assert.Equal(t, 5, plan.Mission.NumQuestions)
			assert.Equal(t, "user-1", plan.Mission.UserID)
			assert.Equal(t, "2025-06-10", plan.Mission.Date)
			assert.Equal(t, StatusNotStarted, plan.Mission.Status)
			assert.Equal(t, 50, plan.Mission.XPReward)

			// The mission always ends with exactly one story question.
			storyCount := 0
			for _, q := range plan.Questions {
				if q.Type == TypeStoryContextMCQ {
					storyCount++
				}
			}
			assert.Equal(t, 1, storyCount)
			assert.Equal(t, TypeStoryContextMCQ, plan.Questions[4].Type)

			assert.GreaterOrEqual(t, plan.Mission.WeakWordsCount, tt.expectedWeakMin)
			assert.GreaterOrEqual(t, plan.Mission.NewWordsCount, tt.expectedNewMin)
			if tt.expectedNewZero {
				assert.Zero(t, plan.Mission.NewWordsCount)
			}
		})
	}
}

func TestPlanDailyMission_QuestionInvariants(t *testing.T) {
	plan := newTestPlanner(7).PlanDailyMission("user-1", planDate, testPool(), nil, testPool())

	for _, q := range plan.Questions {
		assert.GreaterOrEqual(t, q.CorrectIndex, 0, "question %s", q.ID)
		assert.Less(t, q.CorrectIndex, len(q.Options), "question %s", q.ID)
		assert.Contains(t, []int{3, 4}, len(q.Options), "question %s", q.ID)
		assert.Equal(t, plan.Mission.ID, q.MissionID)
		assert.False(t, q.Answered)
	}

	assert.Equal(t, TypeDefinitionMCQ, plan.Questions[0].Type)
	assert.Equal(t, TypeContextFillBlank, plan.Questions[1].Type)
	assert.Contains(t, []QuestionType{TypeUsageValidation, TypeSynonymAntonym}, plan.Questions[2].Type)
	assert.Equal(t, TypeRewriteSentence, plan.Questions[3].Type)
}

func TestPlanDailyMission_DeterministicUnderFixedSeed(t *testing.T) {
	pool := makeWords("pool", 20)

	first := newTestPlanner(99).PlanDailyMission("user-1", planDate, nil, nil, pool)
	second := newTestPlanner(99).PlanDailyMission("user-1", planDate, nil, nil, pool)

	require.Equal(t, len(first.Questions), len(second.Questions))
	for i := range first.Questions {
		assert.Equal(t, first.Questions[i], second.Questions[i])
	}
}

func TestPlanDailyMission_FewerThanFiveWords(t *testing.T) {
	pool := makeWords("pool", 3)

	plan := newTestPlanner(13).PlanDailyMission("user-1", planDate, nil, nil, pool)

	require.Len(t, plan.Questions, 3)
	// Even a short mission ends with the story question.
	assert.Equal(t, TypeStoryContextMCQ, plan.Questions[2].Type)
}

func TestPlanDailyMission_SingleWordHasNoStory(t *testing.T) {
	pool := makeWords("pool", 1)

	plan := newTestPlanner(13).PlanDailyMission("user-1", planDate, nil, nil, pool)

	require.Len(t, plan.Questions, 1)
	assert.Equal(t, TypeDefinitionMCQ, plan.Questions[0].Type)
}

func TestIsStale(t *testing.T) {
	plan := newTestPlanner(1).PlanDailyMission("user-1", planDate, nil, nil, makeWords("pool", 10))
	assert.False(t, IsStale(plan.Mission, plan.Questions))

	// Too few questions.
	short := newTestPlanner(1).PlanDailyMission("user-1", planDate, nil, nil, makeWords("pool", 3))
	assert.True(t, IsStale(short.Mission, short.Questions))

	// Five questions but no story type.
	questions := make([]Question, 5)
	for i := range questions {
		questions[i] = Question{Type: TypeDefinitionMCQ}
	}
	assert.True(t, IsStale(Mission{}, questions))
}

package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-yamane/vocamind/internal/catalog"
	"github.com/k-yamane/vocamind/internal/mission"
	"github.com/k-yamane/vocamind/internal/session"
	"github.com/k-yamane/vocamind/internal/storage"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func testCatalog() *catalog.Catalog {
	entries := []catalog.Entry{
		{Word: "abundant", Definition: "existing in large amounts", Example: "Fish are abundant in this lake.", Synonyms: []string{"plentiful"}, Antonym: "scarce"},
		{Word: "brisk", Definition: "quick and energetic", Example: "We took a brisk walk.", Synonyms: []string{"lively"}},
		{Word: "candid", Definition: "honest and direct", Example: "She gave a candid answer.", Synonyms: []string{"frank"}, Antonym: "evasive"},
		{Word: "diligent", Definition: "showing steady effort", Example: "He is a diligent student.", Synonyms: []string{"industrious"}},
		{Word: "eloquent", Definition: "fluent and persuasive in speech", Example: "Her eloquent speech moved the crowd.", Synonyms: []string{"articulate"}},
		{Word: "frugal", Definition: "careful with money", Example: "A frugal shopper compares prices.", Synonyms: []string{"thrifty"}, Antonym: "wasteful"},
		{Word: "gregarious", Definition: "fond of company", Example: "A gregarious host greets everyone.", Synonyms: []string{"sociable"}},
		{Word: "hasty", Definition: "done with too much speed", Example: "A hasty decision can backfire.", Synonyms: []string{"rushed"}},
	}
	return catalog.New([]catalog.Level{
		{
			ID:   "level-1",
			Name: "Level 1",
			Tier: catalog.TierBeginner,
			Sets: []catalog.Set{
				{Name: "Daily Life", Words: entries[:4]},
				{Name: "Character", Words: entries[4:]},
			},
		},
	})
}

func newTestSessionService(t *testing.T) *session.Service {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	planner := mission.NewPlanner(catalog.NewHeuristicPosTagger(), rand.New(rand.NewSource(1)))
	return session.NewService(store, testCatalog(), planner)
}

func TestMissionCLI_RunCompletesMission(t *testing.T) {
	svc := newTestSessionService(t)
	today := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	record, err := svc.GetTodayMission(ctx, "alice", today)
	require.NoError(t, err)

	// Answer every question correctly.
	var input strings.Builder
	for _, q := range record.Questions {
		fmt.Fprintf(&input, "%d\n", q.CorrectIndex+1)
	}

	var output strings.Builder
	runner := NewMissionCLI(svc, "alice", strings.NewReader(input.String()), &output)
	runner.now = func() time.Time { return today }

	require.NoError(t, runner.Run(ctx))

	got := output.String()
	assert.Contains(t, got, "Daily Mission for 2026-03-01")
	assert.Contains(t, got, "Question 1:")
	assert.Contains(t, got, "Correct!")
	assert.Contains(t, got, fmt.Sprintf("Mission complete! %d/%d correct. +%d XP",
		record.Mission.NumQuestions, record.Mission.NumQuestions, record.Mission.XPReward))
	assert.Contains(t, got, "Streak: 1 day(s).")
}

func TestMissionCLI_WrongAnswerShowsCorrection(t *testing.T) {
	svc := newTestSessionService(t)
	today := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	record, err := svc.GetTodayMission(ctx, "alice", today)
	require.NoError(t, err)

	var input strings.Builder
	for _, q := range record.Questions {
		fmt.Fprintf(&input, "%d\n", (q.CorrectIndex+1)%len(q.Options)+1)
	}

	var output strings.Builder
	runner := NewMissionCLI(svc, "alice", strings.NewReader(input.String()), &output)
	runner.now = func() time.Time { return today }

	require.NoError(t, runner.Run(ctx))
	assert.Contains(t, output.String(), "Incorrect. The answer was:")
	assert.Contains(t, output.String(), "Mission complete! 0/")
}

func TestMissionCLI_RepromptsOnInvalidInput(t *testing.T) {
	svc := newTestSessionService(t)
	today := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	record, err := svc.GetTodayMission(ctx, "alice", today)
	require.NoError(t, err)

	var input strings.Builder
	input.WriteString("nope\n99\n")
	for _, q := range record.Questions {
		fmt.Fprintf(&input, "%d\n", q.CorrectIndex+1)
	}

	var output strings.Builder
	runner := NewMissionCLI(svc, "alice", strings.NewReader(input.String()), &output)
	runner.now = func() time.Time { return today }

	require.NoError(t, runner.Run(ctx))
	assert.Contains(t, output.String(), "Please enter a number between 1 and")
}

func TestMissionCLI_AlreadyCompleted(t *testing.T) {
	svc := newTestSessionService(t)
	today := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	record, err := svc.GetTodayMission(ctx, "alice", today)
	require.NoError(t, err)
	for _, q := range record.Questions {
		_, err := svc.SubmitAnswer(ctx, session.SubmitAnswerRequest{
			MissionID:   record.Mission.ID,
			QuestionID:  q.ID,
			ChosenIndex: q.CorrectIndex,
			UserID:      "alice",
			AnsweredAt:  today,
		})
		require.NoError(t, err)
	}

	var output strings.Builder
	runner := NewMissionCLI(svc, "alice", strings.NewReader(""), &output)
	runner.now = func() time.Time { return today }

	require.NoError(t, runner.Run(ctx))
	assert.Contains(t, output.String(), "already completed")
}

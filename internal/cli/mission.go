// Package cli implements the interactive terminal runners behind the cobra
// commands: the daily mission quiz, the placement test, progress reports, and
// catalog maintenance.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/k-yamane/vocamind/internal/mission"
	"github.com/k-yamane/vocamind/internal/session"
)

// MissionCLI runs one daily mission as an interactive quiz session.
type MissionCLI struct {
	service *session.Service
	userID  string
	stdin   *bufio.Reader
	stdout  io.Writer
	now     func() time.Time
}

// NewMissionCLI creates a MissionCLI. stdin and stdout are injected so tests
// can script the session.
func NewMissionCLI(service *session.Service, userID string, stdin io.Reader, stdout io.Writer) *MissionCLI {
	return &MissionCLI{
		service: service,
		userID:  userID,
		stdin:   bufio.NewReader(stdin),
		stdout:  stdout,
		now:     time.Now,
	}
}

// Run fetches today's mission and walks the user through its unanswered
// questions.
func (c *MissionCLI) Run(ctx context.Context) error {
	record, err := c.service.GetTodayMission(ctx, c.userID, c.now())
	if err != nil {
		return fmt.Errorf("service.GetTodayMission() > %w", err)
	}

	if record.Mission.Status == mission.StatusCompleted {
		fmt.Fprintf(c.stdout, "Today's mission (%s) is already completed. Come back tomorrow!\n", record.Mission.Date)
		return nil
	}

	fmt.Fprintf(c.stdout, "Daily Mission for %s\n", record.Mission.Date)
	fmt.Fprintf(c.stdout, "%d questions (%d weak, %d new). Reward: %d XP\n\n",
		record.Mission.NumQuestions, record.Mission.WeakWordsCount,
		record.Mission.NewWordsCount, record.Mission.XPReward)

	for _, question := range record.Questions {
		if question.Answered {
			continue
		}
		result, err := c.askQuestion(ctx, record.Mission.ID, question)
		if err != nil {
			return err
		}
		if result.Mission.Status == mission.StatusCompleted {
			return c.printCompletion(ctx, result.Mission)
		}
	}
	return nil
}

func (c *MissionCLI) askQuestion(ctx context.Context, missionID string, question mission.Question) (session.SubmitAnswerResult, error) {
	fmt.Fprintf(c.stdout, "Question %d:\n%s\n", question.Index+1, question.Prompt)
	for i, option := range question.Options {
		fmt.Fprintf(c.stdout, "  %d) %s\n", i+1, option)
	}

	chosen, err := readChoice(c.stdin, c.stdout, len(question.Options))
	if err != nil {
		return session.SubmitAnswerResult{}, err
	}

	result, err := c.service.SubmitAnswer(ctx, session.SubmitAnswerRequest{
		MissionID:   missionID,
		QuestionID:  question.ID,
		ChosenIndex: chosen,
		UserID:      c.userID,
		AnsweredAt:  c.now(),
	})
	if err != nil {
		return session.SubmitAnswerResult{}, fmt.Errorf("service.SubmitAnswer() > %w", err)
	}

	if result.WasCorrect {
		color.New(color.FgGreen).Fprintln(c.stdout, "Correct!")
	} else {
		color.New(color.FgRed).Fprintf(c.stdout, "Incorrect. The answer was: %s\n",
			question.Options[question.CorrectIndex])
	}
	fmt.Fprintln(c.stdout)

	return result, nil
}

func (c *MissionCLI) printCompletion(ctx context.Context, m mission.Mission) error {
	color.New(color.FgGreen).Fprintf(c.stdout, "Mission complete! %d/%d correct. +%d XP\n",
		m.CorrectCount, m.NumQuestions, m.XPReward)

	stats, err := c.service.StatsForUser(ctx, c.userID)
	if err != nil {
		return fmt.Errorf("service.StatsForUser() > %w", err)
	}
	fmt.Fprintf(c.stdout, "Streak: %d day(s). Total XP: %d.\n", stats.Streak, stats.XP)
	return nil
}

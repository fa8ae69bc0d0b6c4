package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/k-yamane/vocamind/internal/catalog"
	"github.com/k-yamane/vocamind/internal/placement"
)

// DefaultPlacementQuestions is the length of a full placement test.
const DefaultPlacementQuestions = 20

// placementBlockSize is the number of questions sharing one forced band.
const placementBlockSize = 5

// PlacementCLI runs the placement test in the terminal. The screen policy
// walks fixed band blocks (A1, A2, B1, then B2) while the engine's own
// ability estimate keeps updating underneath, so the final band still
// reflects the learner's answers.
type PlacementCLI struct {
	engine    *placement.Engine
	catalog   *catalog.Catalog
	stdin     *bufio.Reader
	stdout    io.Writer
	questions int
}

// NewPlacementCLI creates a PlacementCLI asking the default number of
// questions.
func NewPlacementCLI(engine *placement.Engine, c *catalog.Catalog, stdin io.Reader, stdout io.Writer) *PlacementCLI {
	return &PlacementCLI{
		engine:    engine,
		catalog:   c,
		stdin:     bufio.NewReader(stdin),
		stdout:    stdout,
		questions: DefaultPlacementQuestions,
	}
}

// bandForBlock is the screen-layer band schedule: each block of five
// questions targets one band, capped at B2.
func bandForBlock(questionIndex int) placement.Band {
	switch questionIndex / placementBlockSize {
	case 0:
		return placement.BandA1
	case 1:
		return placement.BandA2
	case 2:
		return placement.BandB1
	default:
		return placement.BandB2
	}
}

// Run executes a full placement session and prints the resulting band.
func (c *PlacementCLI) Run() (placement.Band, error) {
	bank := c.engine.BuildBank(c.catalog)
	if len(bank) == 0 {
		return placement.BandNone, fmt.Errorf("catalog has no words to build a placement test from")
	}

	sess := placement.NewSession()
	fmt.Fprintf(c.stdout, "Placement Test (%d questions)\n\n", c.questions)

	for i := 0; i < c.questions; i++ {
		item, ok := c.engine.PickNextItem(bank, sess, bandForBlock(i))
		if !ok {
			break
		}

		fmt.Fprintf(c.stdout, "Question %d:\n%s\n", i+1, item.Prompt)
		for j, option := range item.Options {
			fmt.Fprintf(c.stdout, "  %d) %s\n", j+1, option)
		}

		chosen, err := readChoice(c.stdin, c.stdout, len(item.Options))
		if err != nil {
			return placement.BandNone, err
		}

		correct := chosen == item.CorrectIndex
		if correct {
			color.New(color.FgGreen).Fprintln(c.stdout, "Correct!")
		} else {
			color.New(color.FgRed).Fprintf(c.stdout, "Incorrect. The answer was: %s\n",
				item.Options[item.CorrectIndex])
		}
		fmt.Fprintln(c.stdout)

		c.engine.RecordAnswer(sess, item, correct)
	}

	band := sess.Band()
	fmt.Fprintf(c.stdout, "Placement complete: %d/%d correct. Your level: %s\n",
		sess.CorrectCount(), len(sess.Asked), band)
	return band, nil
}

package mission

import (
	"math/rand"
	"strings"
)

// Option is a candidate answer before shuffling. Exactly one option in a set
// should be correct.
type Option struct {
	Text      string
	IsCorrect bool
}

// shuffleOptions shuffles the options and returns the texts with the index of
// the correct option recomputed after the shuffle. Every builder goes through
// this helper so the correct-index bookkeeping lives in one place.
func shuffleOptions(options []Option, rng *rand.Rand) ([]string, int) {
	shuffled := make([]Option, len(options))
	copy(shuffled, options)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	texts := make([]string, len(shuffled))
	correctIndex := 0
	for i, option := range shuffled {
		texts[i] = option.Text
		if option.IsCorrect {
			correctIndex = i
		}
	}
	return texts, correctIndex
}

// buildOptions pairs one correct text with its distractors.
func buildOptions(correct string, distractors []string) []Option {
	options := make([]Option, 0, 1+len(distractors))
	options = append(options, Option{Text: correct, IsCorrect: true})
	for _, d := range distractors {
		options = append(options, Option{Text: d})
	}
	return options
}

// containsFold reports whether values contains s, ignoring case.
func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

package placement

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/k-yamane/vocamind/internal/catalog"
)

const optionsPerItem = 4

// Engine builds item banks and drives adaptive sessions. All randomness goes
// through the injected source.
type Engine struct {
	tagger catalog.PosTagger
	rng    *rand.Rand
}

// NewEngine creates an Engine.
func NewEngine(tagger catalog.PosTagger, rng *rand.Rand) *Engine {
	return &Engine{tagger: tagger, rng: rng}
}

// bandForWord derives a band from the word's catalog position: the first five
// beginner sets are A1, the rest of the beginner tier A2, the two
// intermediate tiers B1, advanced B2, and everything beyond C1.
func bandForWord(word catalog.Word) Band {
	switch word.Tier {
	case catalog.TierBeginner:
		if word.SetIndex < 5 {
			return BandA1
		}
		return BandA2
	case catalog.TierLowerIntermediate, catalog.TierUpperIntermediate:
		return BandB1
	case catalog.TierAdvanced:
		return BandB2
	default:
		return BandC1
	}
}

// BuildBank flattens the catalog into placement items, one per word, picking
// at random among the item kinds the word's data supports. Definition items
// are always possible; synonym and antonym items require authored data.
func (e *Engine) BuildBank(c *catalog.Catalog) []Item {
	words := c.Words()
	bank := make([]Item, 0, len(words))

	for _, word := range words {
		kinds := []Kind{KindDefinition}
		if word.HasSynonyms() {
			kinds = append(kinds, KindSynonym)
		}
		if word.HasAntonym() {
			kinds = append(kinds, KindAntonym)
		}
		kind := kinds[e.rng.Intn(len(kinds))]

		var item Item
		switch kind {
		case KindSynonym:
			item = e.synonymItem(word, words)
		case KindAntonym:
			item = e.antonymItem(word, words)
		default:
			item = e.definitionItem(word, words)
		}

		item.ID = fmt.Sprintf("pi-%s", word.ID)
		item.WordID = word.ID
		item.Word = word.Text
		item.Band = bandForWord(word)
		item.Topic = word.SetName
		bank = append(bank, item)
	}

	return bank
}

// definitionItem ranks distractor candidates by part-of-speech match first,
// then by closeness of definition length, with random jitter breaking ties.
func (e *Engine) definitionItem(word catalog.Word, words []catalog.Word) Item {
	targetPos := e.tagger.InferPos(word.Text, word.Definition)
	targetLen := len(strings.Fields(word.Definition))

	type scored struct {
		definition string
		score      float64
	}
	var candidates []scored
	for _, other := range words {
		if other.ID == word.ID || catalog.SameLemma(other.Text, word.Text) {
			continue
		}
		if strings.TrimSpace(other.Definition) == "" ||
			strings.EqualFold(other.Definition, word.Definition) {
			continue
		}

		score := e.rng.Float64() * 0.5
		if e.tagger.InferPos(other.Text, other.Definition) != targetPos {
			score += 100
		}
		score += math.Abs(float64(len(strings.Fields(other.Definition)) - targetLen))
		candidates = append(candidates, scored{definition: other.Definition, score: score})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})

	distractors := make([]string, 0, optionsPerItem-1)
	for _, c := range candidates {
		if len(distractors) >= optionsPerItem-1 {
			break
		}
		if !containsFold(distractors, c.definition) {
			distractors = append(distractors, c.definition)
		}
	}

	options, correctIndex := e.assembleOptions(word.Definition, distractors)
	return Item{
		Kind:         KindDefinition,
		Prompt:       fmt.Sprintf("What does %q mean?", word.Text),
		Options:      options,
		CorrectIndex: correctIndex,
	}
}

// antonymItem uses the authored antonym as the correct answer and three
// random other words as distractors.
func (e *Engine) antonymItem(word catalog.Word, words []catalog.Word) Item {
	var distractors []string
	for _, other := range e.shuffledWords(words) {
		if len(distractors) >= optionsPerItem-1 {
			break
		}
		if other.ID == word.ID || catalog.SameLemma(other.Text, word.Text) {
			continue
		}
		if strings.EqualFold(other.Text, word.Antonym) || containsFold(distractors, other.Text) {
			continue
		}
		distractors = append(distractors, other.Text)
	}

	options, correctIndex := e.assembleOptions(word.Antonym, distractors)
	return Item{
		Kind:         KindAntonym,
		Prompt:       fmt.Sprintf("Which word is the opposite of %q?", word.Text),
		Options:      options,
		CorrectIndex: correctIndex,
	}
}

// synonymItem uses the word's first listed synonym as the correct answer and
// random synonyms of other words as distractors.
func (e *Engine) synonymItem(word catalog.Word, words []catalog.Word) Item {
	correct := word.Synonyms[0]

	var distractors []string
	for _, other := range e.shuffledWords(words) {
		if len(distractors) >= optionsPerItem-1 {
			break
		}
		if other.ID == word.ID || !other.HasSynonyms() || catalog.SameLemma(other.Text, word.Text) {
			continue
		}
		candidate := other.Synonyms[e.rng.Intn(len(other.Synonyms))]
		if strings.EqualFold(candidate, correct) || containsFold(distractors, candidate) {
			continue
		}
		if catalog.SameLemma(candidate, word.Text) {
			continue
		}
		distractors = append(distractors, candidate)
	}
	// Pad from plain word texts when too few words carry synonyms.
	for _, other := range e.shuffledWords(words) {
		if len(distractors) >= optionsPerItem-1 {
			break
		}
		if other.ID == word.ID || catalog.SameLemma(other.Text, word.Text) {
			continue
		}
		if strings.EqualFold(other.Text, correct) || containsFold(distractors, other.Text) {
			continue
		}
		distractors = append(distractors, other.Text)
	}

	options, correctIndex := e.assembleOptions(correct, distractors)
	return Item{
		Kind:         KindSynonym,
		Prompt:       fmt.Sprintf("Which word is a synonym of %q?", word.Text),
		Options:      options,
		CorrectIndex: correctIndex,
	}
}

// assembleOptions shuffles the correct answer in with the distractors and
// relocates the correct index after the shuffle by case-insensitive match.
func (e *Engine) assembleOptions(correct string, distractors []string) ([]string, int) {
	options := make([]string, 0, 1+len(distractors))
	options = append(options, correct)
	options = append(options, distractors...)

	e.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, option := range options {
		if strings.EqualFold(option, correct) {
			correctIndex = i
			break
		}
	}
	return options, correctIndex
}

func (e *Engine) shuffledWords(words []catalog.Word) []catalog.Word {
	shuffled := make([]catalog.Word, len(words))
	copy(shuffled, words)
	e.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

package mission

import (
	"math/rand"
	"strings"

	"github.com/k-yamane/vocamind/internal/catalog"
)

// Generic fallback pools, used only when the catalog cannot supply enough
// distractors even after every filter has been dropped. A question is always
// produced; it is never an error to run out of good candidates.
var genericDefinitions = []string{
	"to arrange things in a particular order",
	"a feeling of great happiness or excitement",
	"used to describe something that happens every day",
	"to look at something carefully for a long time",
	"a person who travels to unfamiliar places",
}

var genericWords = []string{"window", "gather", "bright", "journey", "quietly"}

// picker selects distractors from a word pool, progressively relaxing its
// filters: same part of speech first, then any part of speech, then the
// generic fallback pool. Words sharing the target's lemma are always
// excluded so a question never offers an inflection of its own answer.
type picker struct {
	pool   []catalog.Word
	tagger catalog.PosTagger
	rng    *rand.Rand
}

func (p *picker) candidates(target catalog.Word, matchPos bool) []catalog.Word {
	targetPos := p.tagger.InferPos(target.Text, target.Definition)

	var result []catalog.Word
	for _, word := range p.pool {
		if word.ID == target.ID || catalog.SameLemma(word.Text, target.Text) {
			continue
		}
		if strings.TrimSpace(word.Definition) == "" {
			continue
		}
		if matchPos && p.tagger.InferPos(word.Text, word.Definition) != targetPos {
			continue
		}
		result = append(result, word)
	}

	p.rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

// definitionDistractors returns up to n distractor definitions for target.
func (p *picker) definitionDistractors(target catalog.Word, n int) []string {
	var result []string

	appendFrom := func(words []catalog.Word) {
		for _, word := range words {
			if len(result) >= n {
				return
			}
			definition := truncateDefinition(word.Definition)
			if strings.EqualFold(definition, truncateDefinition(target.Definition)) {
				continue
			}
			if containsFold(result, definition) {
				continue
			}
			result = append(result, definition)
		}
	}

	appendFrom(p.candidates(target, true))
	if len(result) < n {
		appendFrom(p.candidates(target, false))
	}
	for _, generic := range genericDefinitions {
		if len(result) >= n {
			break
		}
		if !containsFold(result, generic) {
			result = append(result, generic)
		}
	}
	return result
}

// wordDistractors returns up to n distractor word texts for target.
func (p *picker) wordDistractors(target catalog.Word, n int) []string {
	var result []string

	appendFrom := func(words []catalog.Word) {
		for _, word := range words {
			if len(result) >= n {
				return
			}
			if containsFold(result, word.Text) {
				continue
			}
			result = append(result, word.Text)
		}
	}

	appendFrom(p.candidates(target, true))
	if len(result) < n {
		appendFrom(p.candidates(target, false))
	}
	for _, generic := range genericWords {
		if len(result) >= n {
			break
		}
		if !containsFold(result, generic) && !strings.EqualFold(generic, target.Text) {
			result = append(result, generic)
		}
	}
	return result
}

// sentenceDistractors returns up to n sentences that misuse target: other
// words' example sentences with the target word substituted in place of the
// original word.
func (p *picker) sentenceDistractors(target catalog.Word, correctSentence string, n int) []string {
	var result []string

	appendFrom := func(words []catalog.Word) {
		for _, word := range words {
			if len(result) >= n {
				return
			}
			if strings.TrimSpace(word.ExampleSentence) == "" {
				continue
			}
			sentence := substituteWord(word.ExampleSentence, word.Text, target.Text)
			if strings.EqualFold(sentence, correctSentence) || containsFold(result, sentence) {
				continue
			}
			result = append(result, sentence)
		}
	}

	appendFrom(p.candidates(target, true))
	if len(result) < n {
		appendFrom(p.candidates(target, false))
	}
	// Last resort: template a sentence around a generic word and substitute.
	for _, generic := range genericWords {
		if len(result) >= n {
			break
		}
		sentence := substituteWord(templatedSentence(generic, catalog.PosOther), generic, target.Text)
		if !strings.EqualFold(sentence, correctSentence) && !containsFold(result, sentence) {
			result = append(result, sentence)
		}
	}
	return result
}

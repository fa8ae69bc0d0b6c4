package mission

import (
	"fmt"
	"math/rand"

	"github.com/k-yamane/vocamind/internal/catalog"
)

const (
	definitionDistractorCount = 3
	wordDistractorCount       = 3
	usageDistractorCount      = 2
	rewriteDistractorCount    = 3
	usageValidationChance     = 0.6
)

// draft is a question before it is bound to a mission and index.
type draft struct {
	Type          QuestionType
	PrimaryWordID string
	ExtraWordIDs  []string
	Prompt        string
	Options       []string
	CorrectIndex  int
}

// builder synthesizes question drafts for selected words. One builder exists
// per plan so all questions draw distractors from the same pool and random
// source.
type builder struct {
	picker *picker
	tagger catalog.PosTagger
	rng    *rand.Rand
}

func newBuilder(pool []catalog.Word, tagger catalog.PosTagger, rng *rand.Rand) *builder {
	return &builder{
		picker: &picker{pool: pool, tagger: tagger, rng: rng},
		tagger: tagger,
		rng:    rng,
	}
}

// definitionQuestion asks for the word's meaning among distractor definitions
// drawn from words of the same part of speech.
func (b *builder) definitionQuestion(word catalog.Word) draft {
	correct := truncateDefinition(word.Definition)
	distractors := b.picker.definitionDistractors(word, definitionDistractorCount)
	options, correctIndex := shuffleOptions(buildOptions(correct, distractors), b.rng)

	return draft{
		Type:          TypeDefinitionMCQ,
		PrimaryWordID: word.ID,
		Prompt:        fmt.Sprintf("What does %q mean?", word.Text),
		Options:       options,
		CorrectIndex:  correctIndex,
	}
}

// fillBlankQuestion blanks the word out of its example sentence and asks
// which word completes it.
func (b *builder) fillBlankQuestion(word catalog.Word) draft {
	sentence := exampleSentence(word, b.tagger)
	blanked := blankOutWord(sentence, word.Text)

	distractors := b.picker.wordDistractors(word, wordDistractorCount)
	options, correctIndex := shuffleOptions(buildOptions(word.Text, distractors), b.rng)

	return draft{
		Type:          TypeContextFillBlank,
		PrimaryWordID: word.ID,
		Prompt:        fmt.Sprintf("Which word completes the sentence?\n%s", blanked),
		Options:       options,
		CorrectIndex:  correctIndex,
	}
}

// usageQuestion asks which sentence uses the word naturally. Distractors are
// other words' example sentences with the target word substituted in.
func (b *builder) usageQuestion(word catalog.Word) draft {
	correct := exampleSentence(word, b.tagger)
	distractors := b.picker.sentenceDistractors(word, correct, usageDistractorCount)
	options, correctIndex := shuffleOptions(buildOptions(correct, distractors), b.rng)

	return draft{
		Type:          TypeUsageValidation,
		PrimaryWordID: word.ID,
		Prompt:        fmt.Sprintf("Which sentence uses %q naturally?", word.Text),
		Options:       options,
		CorrectIndex:  correctIndex,
	}
}

// synonymQuestion is a closest-definition MCQ with the same distractor
// strategy as definitionQuestion.
func (b *builder) synonymQuestion(word catalog.Word) draft {
	correct := truncateDefinition(word.Definition)
	distractors := b.picker.definitionDistractors(word, definitionDistractorCount)
	options, correctIndex := shuffleOptions(buildOptions(correct, distractors), b.rng)

	return draft{
		Type:          TypeSynonymAntonym,
		PrimaryWordID: word.ID,
		Prompt:        fmt.Sprintf("Which is closest in meaning to %q?", word.Text),
		Options:       options,
		CorrectIndex:  correctIndex,
	}
}

// rewriteQuestion gives the word's definition as "the idea" and asks which
// sentence expresses it using the target word.
func (b *builder) rewriteQuestion(word catalog.Word) draft {
	correct := exampleSentence(word, b.tagger)
	distractors := b.picker.sentenceDistractors(word, correct, rewriteDistractorCount)
	options, correctIndex := shuffleOptions(buildOptions(correct, distractors), b.rng)

	return draft{
		Type:          TypeRewriteSentence,
		PrimaryWordID: word.ID,
		Prompt: fmt.Sprintf("The idea: %q.\nWhich sentence expresses this idea using %q?",
			truncateDefinition(word.Definition), word.Text),
		Options:      options,
		CorrectIndex: correctIndex,
	}
}

// storyQuestion weaves the target word into a narrative line mentioning the
// context words by name, then asks for the target's meaning in that context.
func (b *builder) storyQuestion(target catalog.Word, context []catalog.Word) draft {
	if len(context) > 2 {
		context = context[:2]
	}

	line := storyLine(target, context)
	correct := truncateDefinition(target.Definition)
	distractors := b.picker.definitionDistractors(target, definitionDistractorCount)
	options, correctIndex := shuffleOptions(buildOptions(correct, distractors), b.rng)

	extraIDs := make([]string, 0, len(context))
	for _, word := range context {
		extraIDs = append(extraIDs, word.ID)
	}

	return draft{
		Type:          TypeStoryContextMCQ,
		PrimaryWordID: target.ID,
		ExtraWordIDs:  extraIDs,
		Prompt:        fmt.Sprintf("%s\nWhat does %q mean here?", line, target.Text),
		Options:       options,
		CorrectIndex:  correctIndex,
	}
}

// questionForPosition dispatches to the builder contract for a slot position.
// Position 2 randomly becomes a usage-validation or synonym question.
func (b *builder) questionForPosition(position int, word catalog.Word) draft {
	switch position {
	case 0:
		return b.definitionQuestion(word)
	case 1:
		return b.fillBlankQuestion(word)
	case 2:
		if b.rng.Float64() < usageValidationChance {
			return b.usageQuestion(word)
		}
		return b.synonymQuestion(word)
	case 3:
		return b.rewriteQuestion(word)
	default:
		return b.definitionQuestion(word)
	}
}

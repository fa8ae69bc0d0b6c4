package mission

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/k-yamane/vocamind/internal/catalog"
)

const blankMarker = "_____"

const definitionMaxLength = 120

// truncateDefinition caps a definition at 120 characters, appending an
// ellipsis when it was cut.
func truncateDefinition(definition string) string {
	runes := []rune(definition)
	if len(runes) <= definitionMaxLength {
		return definition
	}
	return string(runes[:definitionMaxLength]) + "..."
}

// wordPattern builds a case-insensitive whole-word matcher for word.
func wordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

// blankOutWord replaces every case-insensitive whole-word occurrence of word
// in sentence with the blank marker. If the word never literally appears, a
// parenthetical blank is appended instead of failing.
func blankOutWord(sentence, word string) string {
	pattern := wordPattern(word)
	if !pattern.MatchString(sentence) {
		return strings.TrimSpace(sentence) + " (" + blankMarker + ")"
	}
	return pattern.ReplaceAllString(sentence, blankMarker)
}

// substituteWord replaces every whole-word occurrence of original in sentence
// with replacement. Used to turn another word's example sentence into an
// unnatural-usage distractor for the target word.
func substituteWord(sentence, original, replacement string) string {
	pattern := wordPattern(original)
	if !pattern.MatchString(sentence) {
		// Nothing to substitute; bolt the replacement on so the sentence
		// still mentions the target word.
		return strings.TrimSpace(sentence) + " (" + replacement + ")"
	}
	return pattern.ReplaceAllString(sentence, replacement)
}

// exampleSentence returns the word's authored example, or a templated
// sentence by part of speech when no example exists. Missing examples are a
// data gap, never an error.
func exampleSentence(word catalog.Word, tagger catalog.PosTagger) string {
	if strings.TrimSpace(word.ExampleSentence) != "" {
		return word.ExampleSentence
	}
	return templatedSentence(word.Text, tagger.InferPos(word.Text, word.Definition))
}

func templatedSentence(word string, pos catalog.PosTag) string {
	switch pos {
	case catalog.PosVerb:
		return fmt.Sprintf("They decided to %s before anyone could stop them.", word)
	case catalog.PosNoun:
		return fmt.Sprintf("The %s turned out to be more important than expected.", word)
	case catalog.PosAdjective:
		return fmt.Sprintf("Everyone agreed it was a remarkably %s idea.", word)
	case catalog.PosAdverb:
		return fmt.Sprintf("She finished the whole task %s, without any help.", word)
	default:
		return fmt.Sprintf("The word %s came up again during the lesson.", word)
	}
}

// storyLine weaves the target word together with up to two context words into
// a single narrative sentence.
func storyLine(target catalog.Word, context []catalog.Word) string {
	switch len(context) {
	case 0:
		return fmt.Sprintf("At the end of the day, one word kept coming back to Mia: %s.", target.Text)
	case 1:
		return fmt.Sprintf("Mia kept thinking about %s on the way home, but it was %s that stayed with her.",
			context[0].Text, target.Text)
	default:
		return fmt.Sprintf("The lesson touched on %s and %s, yet what Mia remembered most was %s.",
			context[0].Text, context[1].Text, target.Text)
	}
}

package catalog

import "strings"

// PosTag is a coarse part-of-speech classification.
type PosTag string

const (
	PosNoun      PosTag = "noun"
	PosVerb      PosTag = "verb"
	PosAdjective PosTag = "adjective"
	PosAdverb    PosTag = "adverb"
	PosOther     PosTag = "other"
)

// PosTagger infers a coarse part of speech for a word. It is an interface so
// the heuristic implementation can later be swapped for a lexical resource
// without touching question synthesis.
type PosTagger interface {
	InferPos(word, definition string) PosTag
}

// HeuristicPosTagger infers part of speech from definition phrasing and word
// suffixes. Definitions written as "to ..." are treated as verbs, "a ..." or
// "an ..." as nouns, and so on.
type HeuristicPosTagger struct{}

// NewHeuristicPosTagger creates a HeuristicPosTagger.
func NewHeuristicPosTagger() *HeuristicPosTagger {
	return &HeuristicPosTagger{}
}

// InferPos classifies word using its definition first, then word shape.
func (t *HeuristicPosTagger) InferPos(word, definition string) PosTag {
	def := strings.ToLower(strings.TrimSpace(definition))

	if strings.HasPrefix(def, "to ") {
		return PosVerb
	}
	if strings.HasPrefix(def, "a ") || strings.HasPrefix(def, "an ") ||
		strings.Contains(def, "someone who") || strings.Contains(def, "something that") {
		return PosNoun
	}
	if strings.Contains(def, "able to") || strings.Contains(def, "used to describe") ||
		strings.HasPrefix(def, "very ") {
		return PosAdjective
	}
	if strings.HasSuffix(strings.ToLower(strings.TrimSpace(word)), "ly") {
		return PosAdverb
	}
	return PosOther
}

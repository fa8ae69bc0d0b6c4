package catalog

import "strings"

// lemmaSuffixes are stripped in order; longer suffixes first so that "walking"
// reduces by "ing" rather than leaving a dangling "walkin".
var lemmaSuffixes = []string{"ing", "ed", "es", "s"}

const minStemLength = 4

// Lemma reduces a word to a crude stem by stripping common inflection
// suffixes. Stems shorter than four characters are left untouched so short
// words like "runs" vs "rung" are not conflated aggressively.
func Lemma(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	for _, suffix := range lemmaSuffixes {
		if strings.HasSuffix(w, suffix) {
			stem := strings.TrimSuffix(w, suffix)
			if len(stem) >= minStemLength {
				return stem
			}
		}
	}
	return w
}

// SameLemma reports whether two words reduce to the same stem. Distractor
// pickers use this to avoid offering "running" as a distractor for "run".
func SameLemma(a, b string) bool {
	return Lemma(a) == Lemma(b)
}

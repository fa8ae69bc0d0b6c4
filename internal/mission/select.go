package mission

import (
	"math/rand"

	"github.com/k-yamane/vocamind/internal/catalog"
)

// SourceBucket records which source a mission word belongs to. Mission
// counters reflect the bucket, not the question type the word ends up in: a
// new word selected during the random pool-fill pass still counts as new.
type SourceBucket string

const (
	BucketNew  SourceBucket = "new"
	BucketWeak SourceBucket = "weak"
	BucketPool SourceBucket = "pool"
)

// SelectedWord is a word chosen for a mission together with its source bucket.
type SelectedWord struct {
	Word   catalog.Word
	Bucket SourceBucket
}

// SelectMissionWords fills totalSlots mission slots from three sources, in
// this order:
//
//  1. One or two new words chosen at random, so the daily dose of novelty is
//     not always the same first candidate.
//  2. Weak words in rank order (weakest first), so the most urgent reviews
//     always surface.
//  3. Random words from the full pool, so a cold-start user with no weak or
//     new words still gets a full mission.
//
// Words are de-duplicated by id across all three passes.
func SelectMissionWords(
	weakRanked []catalog.Word,
	newCandidates []catalog.Word,
	pool []catalog.Word,
	totalSlots int,
	rng *rand.Rand,
) []SelectedWord {
	newIDs := make(map[string]bool, len(newCandidates))
	for _, word := range newCandidates {
		newIDs[word.ID] = true
	}
	weakIDs := make(map[string]bool, len(weakRanked))
	for _, word := range weakRanked {
		weakIDs[word.ID] = true
	}

	selected := make([]SelectedWord, 0, totalSlots)
	used := make(map[string]bool)

	take := func(word catalog.Word) bool {
		if len(selected) >= totalSlots || used[word.ID] {
			return false
		}
		used[word.ID] = true

		bucket := BucketPool
		switch {
		case newIDs[word.ID]:
			bucket = BucketNew
		case weakIDs[word.ID]:
			bucket = BucketWeak
		}
		selected = append(selected, SelectedWord{Word: word, Bucket: bucket})
		return true
	}

	newSlots := 0
	if len(newCandidates) > 0 {
		newSlots = 1
		if len(newCandidates) > 1 {
			newSlots = 2
		}
	}
	for _, word := range shuffledCopy(newCandidates, rng) {
		if newSlots == 0 {
			break
		}
		if take(word) {
			newSlots--
		}
	}

	for _, word := range weakRanked {
		if len(selected) >= totalSlots {
			break
		}
		take(word)
	}

	for _, word := range shuffledCopy(pool, rng) {
		if len(selected) >= totalSlots {
			break
		}
		take(word)
	}

	return selected
}

func shuffledCopy(words []catalog.Word, rng *rand.Rand) []catalog.Word {
	shuffled := make([]catalog.Word, len(words))
	copy(shuffled, words)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

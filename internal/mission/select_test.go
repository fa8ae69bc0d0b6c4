package mission

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-yamane/vocamind/internal/catalog"
)

func makeWords(prefix string, n int) []catalog.Word {
	words := make([]catalog.Word, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, catalog.Word{
			ID:         fmt.Sprintf("%s-%d", prefix, i),
			Text:       fmt.Sprintf("%sword%d", prefix, i),
			Definition: fmt.Sprintf("a definition for %s word %d", prefix, i),
		})
	}
	return words
}

func TestSelectMissionWords(t *testing.T) {
	tests := []struct {
		name             string
		weak             []catalog.Word
		newWords         []catalog.Word
		pool             []catalog.Word
		expectedTotal    int
		expectedNewMin   int
		expectedWeakMin  int
		expectedNewExact *int
	}{
		{
			name:            "weak and new words fill the mission",
			weak:            makeWords("weak", 4),
			newWords:        makeWords("new", 2),
			pool:            makeWords("pool", 10),
			expectedTotal:   5,
			expectedNewMin:  1,
			expectedWeakMin: 3,
		},
		{
			name:          "cold start fills from pool only",
			weak:          nil,
			newWords:      nil,
			pool:          makeWords("pool", 10),
			expectedTotal: 5,
		},
		{
			name:           "zero weak words fill from new candidates via pool pass",
			weak:           nil,
			newWords:       makeWords("new", 6),
			pool:           makeWords("new", 6),
			expectedTotal:  5,
			expectedNewMin: 4,
		},
		{
			name:            "zero new words fill from weak",
			weak:            makeWords("weak", 6),
			newWords:        nil,
			pool:            makeWords("pool", 10),
			expectedTotal:   5,
			expectedWeakMin: 4,
			expectedNewExact: func() *int {
				zero := 0
				return &zero
			}(),
		},
		{
			name:          "small pool yields short selection",
			weak:          nil,
			newWords:      nil,
			pool:          makeWords("pool", 3),
			expectedTotal: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			selected := SelectMissionWords(tt.weak, tt.newWords, tt.pool, 5, rng)

			assert.Len(t, selected, tt.expectedTotal)

			seen := make(map[string]bool)
			newCount, weakCount := 0, 0
			for _, sw := range selected {
				require.False(t, seen[sw.Word.ID], "duplicate word %s", sw.Word.ID)
				seen[sw.Word.ID] = true
				switch sw.Bucket {
				case BucketNew:
					newCount++
				case BucketWeak:
					weakCount++
				}
			}

			assert.GreaterOrEqual(t, newCount, tt.expectedNewMin)
			assert.GreaterOrEqual(t, weakCount, tt.expectedWeakMin)
			if tt.expectedNewExact != nil {
				assert.Equal(t, *tt.expectedNewExact, newCount)
			}
		})
	}
}

func TestSelectMissionWords_WeakRankOrderPreserved(t *testing.T) {
	weak := makeWords("weak", 5)
	rng := rand.New(rand.NewSource(7))

	selected := SelectMissionWords(weak, nil, nil, 5, rng)
	require.Len(t, selected, 5)

	// Weak words are taken in rank order, not shuffled.
	for i, sw := range selected {
		assert.Equal(t, weak[i].ID, sw.Word.ID)
	}
}

func TestSelectMissionWords_ReservesAtMostTwoNewSlots(t *testing.T) {
	weak := makeWords("weak", 10)
	newWords := makeWords("new", 10)
	rng := rand.New(rand.NewSource(3))

	selected := SelectMissionWords(weak, newWords, nil, 5, rng)
	require.Len(t, selected, 5)

	newCount := 0
	for _, sw := range selected {
		if sw.Bucket == BucketNew {
			newCount++
		}
	}
	assert.Equal(t, 2, newCount)
}

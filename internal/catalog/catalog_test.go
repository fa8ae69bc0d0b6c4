package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLevels() []Level {
	return []Level{
		{
			ID:   "b1",
			Name: "Beginner 1",
			Tier: TierBeginner,
			Sets: []Set{
				{
					Name: "Daily Life",
					Words: []Entry{
						{Word: "run", Definition: "to move quickly on foot", Example: "I run every morning."},
						{Word: "house", Definition: "a building where people live"},
					},
				},
				{
					Name: "Travel",
					Words: []Entry{
						{Word: "journey", Definition: "a trip from one place to another", Synonyms: []string{"trip", "voyage"}},
					},
				},
			},
		},
		{
			ID:   "a1",
			Name: "Advanced 1",
			Tier: TierAdvanced,
			Sets: []Set{
				{
					Name: "Abstract",
					Words: []Entry{
						{Word: "ephemeral", Definition: "lasting for a very short time", Antonym: "permanent"},
					},
				},
			},
		},
	}
}

func TestNew(t *testing.T) {
	c := New(testLevels())

	assert.Equal(t, 4, c.Len())

	word, ok := c.Lookup("b1-s0-w0")
	require.True(t, ok)
	assert.Equal(t, "run", word.Text)
	assert.Equal(t, TierBeginner, word.Tier)
	assert.Equal(t, 1, word.Difficulty)

	word, ok = c.Lookup("b1-s1-w0")
	require.True(t, ok)
	assert.Equal(t, "journey", word.Text)
	assert.True(t, word.HasSynonyms())
	assert.False(t, word.HasAntonym())

	word, ok = c.Lookup("a1-s0-w0")
	require.True(t, ok)
	assert.Equal(t, "ephemeral", word.Text)
	assert.Equal(t, 4, word.Difficulty)
	assert.True(t, word.HasAntonym())

	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

func TestWordID_StableAcrossLoads(t *testing.T) {
	first := New(testLevels())
	second := New(testLevels())

	for _, word := range first.Words() {
		got, ok := second.Lookup(word.ID)
		require.True(t, ok, "word %s missing on reload", word.ID)
		assert.Equal(t, word.Text, got.Text)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	levels := testLevels()
	// File names chosen so lexical order matches the intended catalog order.
	require.NoError(t, WriteYamlFile(filepath.Join(tmpDir, "01-beginner.yml"), levels[0]))
	require.NoError(t, WriteYamlFile(filepath.Join(tmpDir, "02-advanced.yml"), levels[1]))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "README.txt"), []byte("not a level"), 0644))

	c, err := Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, "b1", c.Levels()[0].ID)
	assert.Equal(t, "a1", c.Levels()[1].ID)
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLevelValidate(t *testing.T) {
	tests := []struct {
		name          string
		level         Level
		expectedCount int
	}{
		{
			name:          "valid level",
			level:         testLevels()[0],
			expectedCount: 0,
		},
		{
			name: "missing id and invalid tier",
			level: Level{
				Tier: Tier("casual"),
			},
			expectedCount: 2,
		},
		{
			name: "empty word and empty definition",
			level: Level{
				ID:   "b1",
				Tier: TierBeginner,
				Sets: []Set{
					{
						Name: "Broken",
						Words: []Entry{
							{Word: "", Definition: "a thing"},
							{Word: "thing", Definition: ""},
						},
					},
				},
			},
			expectedCount: 2,
		},
		{
			name: "duplicate word in set",
			level: Level{
				ID:   "b1",
				Tier: TierBeginner,
				Sets: []Set{
					{
						Name: "Dups",
						Words: []Entry{
							{Word: "echo", Definition: "a reflected sound"},
							{Word: "Echo", Definition: "a reflected sound"},
						},
					},
				},
			},
			expectedCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := tt.level.Validate()
			assert.Len(t, errors, tt.expectedCount)
		})
	}
}

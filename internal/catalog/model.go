// Package catalog provides the static vocabulary catalog: ordered levels of
// word sets loaded from YAML files, with stable per-word identifiers.
package catalog

import (
	"fmt"
	"strings"
)

// Tier classifies a level within the catalog's difficulty progression.
type Tier string

const (
	TierBeginner          Tier = "beginner"
	TierLowerIntermediate Tier = "lower_intermediate"
	TierUpperIntermediate Tier = "upper_intermediate"
	TierAdvanced          Tier = "advanced"
	TierExpert            Tier = "expert"
)

// Entry is a raw catalog record as authored in a level YAML file.
type Entry struct {
	Word       string   `yaml:"word"`
	Definition string   `yaml:"definition"`
	Example    string   `yaml:"example,omitempty"`
	Phonetic   string   `yaml:"phonetic,omitempty"`
	Synonyms   []string `yaml:"synonyms,omitempty"`
	Antonym    string   `yaml:"antonym,omitempty"`
}

// Set is a named group of entries within a level.
type Set struct {
	Name  string  `yaml:"set"`
	Words []Entry `yaml:"words"`
}

// Level is one catalog file: an ordered list of sets sharing a tier.
type Level struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Tier Tier   `yaml:"tier"`
	Sets []Set  `yaml:"sets"`
}

// Word is a flattened catalog entry with its stable identity and position.
// The same word always maps to the same ID across sessions because the ID is
// derived from the word's level/set/word position, not from load order.
type Word struct {
	ID              string
	Text            string
	Definition      string
	ExampleSentence string
	Phonetic        string
	Synonyms        []string
	Antonym         string
	Difficulty      int

	LevelID   string
	Tier      Tier
	SetName   string
	SetIndex  int
	WordIndex int
}

// HasSynonyms reports whether the word carries synonym data.
func (w Word) HasSynonyms() bool {
	return len(w.Synonyms) > 0
}

// HasAntonym reports whether the word carries a hand-authored antonym.
func (w Word) HasAntonym() bool {
	return strings.TrimSpace(w.Antonym) != ""
}

// WordID derives the stable identifier for a word at the given position.
func WordID(levelID string, setIndex, wordIndex int) string {
	return fmt.Sprintf("%s-s%d-w%d", levelID, setIndex, wordIndex)
}

// Catalog is the read-only flattened view over all loaded levels.
type Catalog struct {
	levels []Level
	words  []Word
	byID   map[string]Word
}

// New flattens the given levels into a catalog. Level order is preserved and
// determines tier-based difficulty scoring.
func New(levels []Level) *Catalog {
	c := &Catalog{
		levels: levels,
		byID:   make(map[string]Word),
	}
	for _, level := range levels {
		for setIdx, set := range level.Sets {
			for wordIdx, entry := range set.Words {
				word := Word{
					ID:              WordID(level.ID, setIdx, wordIdx),
					Text:            entry.Word,
					Definition:      entry.Definition,
					ExampleSentence: entry.Example,
					Phonetic:        entry.Phonetic,
					Synonyms:        entry.Synonyms,
					Antonym:         entry.Antonym,
					Difficulty:      difficultyForTier(level.Tier),
					LevelID:         level.ID,
					Tier:            level.Tier,
					SetName:         set.Name,
					SetIndex:        setIdx,
					WordIndex:       wordIdx,
				}
				c.words = append(c.words, word)
				c.byID[word.ID] = word
			}
		}
	}
	return c
}

// Levels returns the loaded levels in catalog order.
func (c *Catalog) Levels() []Level {
	return c.levels
}

// Words returns all words in catalog order.
func (c *Catalog) Words() []Word {
	return c.words
}

// Lookup returns the word with the given ID.
func (c *Catalog) Lookup(id string) (Word, bool) {
	word, ok := c.byID[id]
	return word, ok
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int {
	return len(c.words)
}

func difficultyForTier(tier Tier) int {
	switch tier {
	case TierBeginner:
		return 1
	case TierLowerIntermediate:
		return 2
	case TierUpperIntermediate:
		return 3
	case TierAdvanced:
		return 4
	default:
		return 5
	}
}

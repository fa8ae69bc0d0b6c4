package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/k-yamane/vocamind/internal/catalog"
)

// Lookuper is the lookup surface Enricher needs from Client.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (Definition, error)
}

// Enricher fills the optional fields of catalog entries (phonetic, example,
// synonyms, antonym) from dictionary lookups. Authored data always wins; only
// empty fields are filled.
type Enricher struct {
	client Lookuper
	logger *slog.Logger
}

// NewEnricher creates an Enricher.
func NewEnricher(client Lookuper, logger *slog.Logger) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enricher{client: client, logger: logger}
}

// EnrichLevel looks up every word in the level and fills missing fields in
// place. It returns the number of entries that changed. Words the dictionary
// does not know are skipped with a warning.
func (e *Enricher) EnrichLevel(ctx context.Context, level *catalog.Level) (int, error) {
	updated := 0
	for setIdx := range level.Sets {
		for wordIdx := range level.Sets[setIdx].Words {
			entry := &level.Sets[setIdx].Words[wordIdx]
			if !needsEnrichment(*entry) {
				continue
			}

			def, err := e.client.Lookup(ctx, entry.Word)
			if errors.Is(err, ErrWordNotFound) {
				e.logger.Warn("word not found in dictionary", "word", entry.Word, "level", level.ID)
				continue
			}
			if err != nil {
				return updated, fmt.Errorf("client.Lookup(%s) > %w", entry.Word, err)
			}

			if applyDefinition(entry, def) {
				updated++
			}
		}
	}
	return updated, nil
}

func needsEnrichment(entry catalog.Entry) bool {
	return entry.Phonetic == "" || entry.Example == "" || len(entry.Synonyms) == 0 || entry.Antonym == ""
}

func applyDefinition(entry *catalog.Entry, def Definition) bool {
	changed := false
	if entry.Phonetic == "" && def.Phonetic != "" {
		entry.Phonetic = def.Phonetic
		changed = true
	}
	if entry.Example == "" && def.Example != "" {
		entry.Example = def.Example
		changed = true
	}
	if len(entry.Synonyms) == 0 && len(def.Synonyms) > 0 {
		entry.Synonyms = def.Synonyms
		changed = true
	}
	if entry.Antonym == "" && len(def.Antonyms) > 0 {
		entry.Antonym = def.Antonyms[0]
		changed = true
	}
	return changed
}

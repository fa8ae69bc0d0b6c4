// Package dictionary enriches catalog words with phonetics, synonyms, and
// antonyms from an external dictionary API, caching raw responses on disk and
// optionally in MySQL.
package dictionary

import (
	"encoding/json"
	"time"
)

// SourceTypeDictionaryAPI tags entries fetched from dictionaryapi.dev.
const SourceTypeDictionaryAPI = "dictionaryapi"

// Entry is one cached dictionary API response.
type Entry struct {
	Word       string          `db:"word"`
	SourceType string          `db:"source_type"`
	Response   json.RawMessage `db:"response"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

// Definition is the normalized view over an API response, reduced to the
// fields the catalog can absorb.
type Definition struct {
	Word         string
	Phonetic     string
	PartOfSpeech string
	Meaning      string
	Example      string
	Synonyms     []string
	Antonyms     []string
}

// apiEntry mirrors the dictionaryapi.dev response shape.
type apiEntry struct {
	Word      string `json:"word"`
	Phonetic  string `json:"phonetic"`
	Phonetics []struct {
		Text string `json:"text"`
	} `json:"phonetics"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string   `json:"definition"`
			Example    string   `json:"example"`
			Synonyms   []string `json:"synonyms"`
			Antonyms   []string `json:"antonyms"`
		} `json:"definitions"`
		Synonyms []string `json:"synonyms"`
		Antonyms []string `json:"antonyms"`
	} `json:"meanings"`
}

// normalize flattens a raw API payload into a Definition. The first meaning
// wins; synonym and antonym lists are merged across the meaning and its
// definitions.
func normalize(payload []byte) (Definition, error) {
	var entries []apiEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return Definition{}, err
	}
	if len(entries) == 0 {
		return Definition{}, errEmptyResponse
	}

	entry := entries[0]
	def := Definition{
		Word:     entry.Word,
		Phonetic: entry.Phonetic,
	}
	if def.Phonetic == "" && len(entry.Phonetics) > 0 {
		def.Phonetic = entry.Phonetics[0].Text
	}

	for _, meaning := range entry.Meanings {
		if def.PartOfSpeech == "" {
			def.PartOfSpeech = meaning.PartOfSpeech
		}
		def.Synonyms = appendUnique(def.Synonyms, meaning.Synonyms...)
		def.Antonyms = appendUnique(def.Antonyms, meaning.Antonyms...)
		for _, d := range meaning.Definitions {
			if def.Meaning == "" {
				def.Meaning = d.Definition
			}
			if def.Example == "" {
				def.Example = d.Example
			}
			def.Synonyms = appendUnique(def.Synonyms, d.Synonyms...)
			def.Antonyms = appendUnique(def.Antonyms, d.Antonyms...)
		}
	}
	return def, nil
}

func appendUnique(existing []string, values ...string) []string {
	for _, value := range values {
		found := false
		for _, have := range existing {
			if have == value {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, value)
		}
	}
	return existing
}

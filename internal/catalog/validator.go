package catalog

import (
	"fmt"
	"strings"
)

// ValidationError describes a single problem found in a catalog file.
type ValidationError struct {
	Location    string
	Message     string
	Suggestions []string
}

func (e ValidationError) String() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%s: %s", e.Location, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Location, e.Message, strings.Join(e.Suggestions, "; "))
}

var validTiers = map[Tier]bool{
	TierBeginner:          true,
	TierLowerIntermediate: true,
	TierUpperIntermediate: true,
	TierAdvanced:          true,
	TierExpert:            true,
}

// Validate checks a level for structural problems: missing ids, unknown
// tiers, empty words or definitions, and duplicate words within a set.
func (level Level) Validate() []ValidationError {
	var errors []ValidationError

	location := fmt.Sprintf("level %q", level.ID)
	if strings.TrimSpace(level.ID) == "" {
		errors = append(errors, ValidationError{
			Location: location,
			Message:  "id field is empty",
		})
	}
	if !validTiers[level.Tier] {
		errors = append(errors, ValidationError{
			Location: location,
			Message:  fmt.Sprintf("invalid tier: %q", level.Tier),
			Suggestions: []string{
				"valid tiers are: beginner, lower_intermediate, upper_intermediate, advanced, expert",
			},
		})
	}

	for setIdx, set := range level.Sets {
		setLocation := fmt.Sprintf("%s -> set[%d]: %s", location, setIdx, set.Name)

		seen := make(map[string]bool)
		for wordIdx, entry := range set.Words {
			wordLocation := fmt.Sprintf("%s -> word[%d]", setLocation, wordIdx)

			word := strings.TrimSpace(entry.Word)
			if word == "" {
				errors = append(errors, ValidationError{
					Location: wordLocation,
					Message:  "word field is empty",
				})
				continue
			}
			if strings.TrimSpace(entry.Definition) == "" {
				errors = append(errors, ValidationError{
					Location: wordLocation,
					Message:  fmt.Sprintf("definition is empty for %q", word),
				})
			}

			key := strings.ToLower(word)
			if seen[key] {
				errors = append(errors, ValidationError{
					Location: setLocation,
					Message:  fmt.Sprintf("duplicate word %q in set", word),
				})
			}
			seen[key] = true
		}
	}

	return errors
}

// Validate validates every level in the catalog.
func (c *Catalog) Validate() []ValidationError {
	var errors []ValidationError
	for _, level := range c.levels {
		errors = append(errors, level.Validate()...)
	}
	return errors
}

package datasync

import (
	"context"
	"fmt"
	"io"

	"github.com/k-yamane/vocamind/internal/dictionary"
)

// DictionaryImporter copies cached dictionary API responses from the file
// cache into the database.
type DictionaryImporter struct {
	cache  *dictionary.FileCache
	repo   dictionary.Repository
	writer io.Writer
}

// NewDictionaryImporter creates a new DictionaryImporter.
func NewDictionaryImporter(cache *dictionary.FileCache, repo dictionary.Repository, writer io.Writer) *DictionaryImporter {
	return &DictionaryImporter{
		cache:  cache,
		repo:   repo,
		writer: writer,
	}
}

// Import upserts every cached response not yet in the database. Words already
// present are skipped so repeated runs stay cheap.
func (imp *DictionaryImporter) Import(ctx context.Context, opts Options) (*Result, error) {
	cached, err := imp.cache.Entries()
	if err != nil {
		return nil, fmt.Errorf("cache.Entries() > %w", err)
	}

	existing, err := imp.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.FindAll() > %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, entry := range existing {
		known[entry.Word] = true
	}

	var result Result
	var toUpsert []*dictionary.Entry
	for i := range cached {
		entry := &cached[i]
		if known[entry.Word] {
			_, _ = fmt.Fprintf(imp.writer, "  [SKIP]  %s (already in database)\n", entry.Word)
			result.KeysSkipped++
			continue
		}
		_, _ = fmt.Fprintf(imp.writer, "  [COPY]  %s (%d bytes)\n", entry.Word, len(entry.Response))
		toUpsert = append(toUpsert, entry)
		result.KeysCopied++
	}

	if !opts.DryRun && len(toUpsert) > 0 {
		if err := imp.repo.BatchUpsert(ctx, toUpsert); err != nil {
			return nil, fmt.Errorf("repo.BatchUpsert() > %w", err)
		}
	}
	return &result, nil
}

// Package datasync copies learner progress between storage backends, for
// example from the file store into MySQL when switching backends.
package datasync

import (
	"context"
	"fmt"
	"io"

	"github.com/k-yamane/vocamind/internal/session"
	"github.com/k-yamane/vocamind/internal/storage"
)

// Result tracks counts for a sync run.
type Result struct {
	KeysCopied  int
	KeysSkipped int
}

// Options controls sync behavior.
type Options struct {
	// DryRun reports what would be copied without writing to the target.
	DryRun bool
}

// Syncer copies the session service's persisted caches from one store to
// another. The target's existing values for those keys are overwritten.
type Syncer struct {
	source storage.Store
	target storage.Store
	writer io.Writer
}

// NewSyncer creates a new Syncer. Progress lines are written to writer.
func NewSyncer(source, target storage.Store, writer io.Writer) *Syncer {
	return &Syncer{
		source: source,
		target: target,
		writer: writer,
	}
}

// Sync copies every session cache key present in the source to the target.
// Keys the source has never saved are skipped, not deleted from the target.
func (s *Syncer) Sync(ctx context.Context, opts Options) (*Result, error) {
	var result Result
	for _, key := range session.CacheKeys() {
		value, err := s.source.Load(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("source.Load(%s) > %w", key, err)
		}
		if value == nil {
			_, _ = fmt.Fprintf(s.writer, "  [SKIP]  %s (not present in source)\n", key)
			result.KeysSkipped++
			continue
		}

		if !opts.DryRun {
			if err := s.target.Save(ctx, key, value); err != nil {
				return nil, fmt.Errorf("target.Save(%s) > %w", key, err)
			}
		}
		_, _ = fmt.Fprintf(s.writer, "  [COPY]  %s (%d bytes)\n", key, len(value))
		result.KeysCopied++
	}
	return &result, nil
}

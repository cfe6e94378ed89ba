// Package scheduler drives the sequential enrichment pipeline: it
// walks the pending items of one dataset context in stable catalog
// order, invokes the generation capability one item at a time, and
// writes results back through the catalog store.
package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/vocab-forge/vocabforge/internal/catalog"
	"github.com/vocab-forge/vocabforge/internal/gen"
	"github.com/vocab-forge/vocabforge/internal/log"
	"github.com/vocab-forge/vocabforge/internal/models"
)

// debugLog wraps log.DebugLog with the "scheduler" component.
func debugLog(format string, args ...interface{}) {
	log.DebugLog("scheduler", format, args...)
}

// Result summarizes one scheduler run.
type Result struct {
	Processed int
	Completed int
	Errored   int
}

// ProgressFunc is called after each item reaches a terminal status.
type ProgressFunc func(item models.VocabItem)

// Scheduler processes pending items strictly sequentially: at most one
// generation call is in flight, so at most one item is ever Loading.
type Scheduler struct {
	store *catalog.Store
	gen   gen.Generator

	// OnProgress, when set, receives each item as it completes or errors.
	OnProgress ProgressFunc
}

// New creates a scheduler over the given store and generator.
func New(store *catalog.Store, generator gen.Generator) *Scheduler {
	return &Scheduler{store: store, gen: generator}
}

// Run processes every pending item in the (appName, targetLang)
// context until none remain. Generation failures mark the item Error
// and do not halt the run; errored items are not retried automatically.
// Context cancellation stops the loop between items, never mid-write.
func (s *Scheduler) Run(ctx context.Context, appName, targetLang string) (*Result, error) {
	languageName := models.LanguageName(targetLang)
	result := &Result{}

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		items, err := s.store.List(ctx, appName, targetLang)
		if err != nil {
			return result, fmt.Errorf("list context: %w", err)
		}

		next := firstPending(items)
		if next == nil {
			debugLog("no pending items left in %s/%s", appName, targetLang)
			return result, nil
		}

		item, err := s.processOne(ctx, next.ID, next.Term, languageName)
		if err != nil {
			return result, err
		}

		result.Processed++
		if item.Status == models.StatusCompleted {
			result.Completed++
		} else {
			result.Errored++
		}
		if s.OnProgress != nil {
			s.OnProgress(*item)
		}
	}
}

// processOne runs the Pending -> Loading -> Completed/Error transition
// for a single item. The Loading transition is optimistic and visible
// immediately; the generation result (or failure) is applied by id via
// a functional patch, so unrelated concurrent field changes survive.
func (s *Scheduler) processOne(ctx context.Context, id, term, languageName string) (*models.VocabItem, error) {
	if _, err := s.store.Update(ctx, id, func(item *models.VocabItem) {
		item.Status = models.StatusLoading
	}); err != nil {
		return nil, fmt.Errorf("mark loading: %w", err)
	}

	generated, genErr := s.gen.Generate(ctx, term, languageName)
	if genErr != nil {
		debugLog("generation failed for %q: %v", term, genErr)
		item, err := s.store.Update(ctx, id, func(item *models.VocabItem) {
			item.Status = models.StatusError
		})
		if err != nil {
			return nil, fmt.Errorf("mark error: %w", err)
		}
		return item, nil
	}

	item, err := s.store.Update(ctx, id, func(item *models.VocabItem) {
		generated.ApplyTo(item)
		item.Status = models.StatusCompleted
	})
	if err != nil {
		return nil, fmt.Errorf("apply result: %w", err)
	}
	return item, nil
}

// Regenerate re-runs generation for one item regardless of its current
// status. It shares the scheduler's write path but bypasses the
// context filter, so it may run concurrently with a scheduler loop
// working a different item.
func (s *Scheduler) Regenerate(ctx context.Context, id string) (*models.VocabItem, error) {
	current, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	item, err := s.processOne(ctx, id, current.Term, models.LanguageName(current.TargetLang))
	if err != nil {
		return nil, err
	}
	if item.Status == models.StatusError {
		return item, errors.New("generation failed")
	}
	return item, nil
}

// Reset returns items to the pending queue. This is the only way a
// Completed or Error item re-enters the automatic pipeline.
func (s *Scheduler) Reset(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := s.store.Update(ctx, id, func(item *models.VocabItem) {
			item.Status = models.StatusPending
		}); err != nil {
			return err
		}
	}
	return nil
}

// firstPending returns the first pending item in stable catalog order,
// or nil when the context is idle.
func firstPending(items []models.VocabItem) *models.VocabItem {
	for i := range items {
		if items[i].Status == models.StatusPending {
			return &items[i]
		}
	}
	return nil
}

// Package catalog presents one logical vocabulary catalog over two
// physical tiers: a fast, always-available local cache and a remote
// authoritative store that may be unreachable. The remote wins whenever
// reachable; the cache exists for continuity during outages and for
// optimistic UI, never the reverse.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/vocab-forge/vocabforge/internal/db"
	"github.com/vocab-forge/vocabforge/internal/log"
	"github.com/vocab-forge/vocabforge/internal/models"
	"github.com/vocab-forge/vocabforge/internal/remote"
)

// debugLog wraps log.DebugLog with the "catalog" component.
func debugLog(format string, args ...interface{}) {
	log.DebugLog("catalog", format, args...)
}

// ErrNotFound is returned when an item id is unknown to both tiers.
var ErrNotFound = fmt.Errorf("catalog: item not found")

// Patch mutates an item in place. Patches run against the latest
// cached state under the store's writer lock, so concurrent writers
// compose instead of clobbering each other.
type Patch func(item *models.VocabItem)

// Store is the dual-tier catalog repository. It is constructed with
// its dependencies and passed by reference; there is no ambient global
// state.
type Store struct {
	cache  *db.DB
	remote *remote.Client
	alloc  *Allocator

	// mu enforces the single-writer discipline for updates.
	mu sync.Mutex
}

// NewStore creates a catalog store over the given tiers.
func NewStore(cache *db.DB, remoteClient *remote.Client) *Store {
	return &Store{
		cache:  cache,
		remote: remoteClient,
		alloc:  NewAllocator(cache),
	}
}

// List returns the catalog view for one dataset context. It attempts a
// remote fetch first; on success the result is normalized, merged by id
// with the cache (remote wins, local-only preserved), and the merged
// set is persisted back to the cache. On transport failure the cached
// view is returned unmodified: degraded but available.
func (s *Store) List(ctx context.Context, appName, targetLang string) ([]models.VocabItem, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterContext(all, appName, targetLang), nil
}

// ListAll returns the whole catalog across contexts with the same
// dual-tier semantics as List.
func (s *Store) ListAll(ctx context.Context) ([]models.VocabItem, error) {
	remoteItems, err := s.remote.ListVocab(ctx, "")
	if err != nil {
		if !remote.IsUnavailable(err) {
			return nil, err
		}
		debugLog("remote list failed, serving cache: %v", err)
		return s.cache.ListAllVocab()
	}

	NormalizeAll(remoteItems)

	local, err := s.cache.ListAllVocab()
	if err != nil {
		return nil, err
	}

	merged := mergeByID(local, remoteItems)
	if err := s.cache.ReplaceAllVocab(merged); err != nil {
		return nil, fmt.Errorf("persist merged catalog: %w", err)
	}
	return merged, nil
}

// Get returns a single item by id from the cache tier.
func (s *Store) Get(id string) (*models.VocabItem, error) {
	item, err := s.cache.GetVocab(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// Create batch-creates items. On remote success the authoritative
// response is canonical — the server assigns int ids — and the full
// list is re-read. On remote failure items are written straight to the
// cache with locally-allocated int ids so the batch is never lost.
func (s *Store) Create(ctx context.Context, items []models.VocabItem) ([]models.VocabItem, error) {
	if len(items) == 0 {
		return nil, nil
	}
	NormalizeAll(items)

	created, err := s.remote.CreateVocab(ctx, items)
	if err == nil {
		NormalizeAll(created)
		if _, err := s.ListAll(ctx); err != nil {
			return nil, err
		}
		return created, nil
	}
	if !remote.IsUnavailable(err) {
		return nil, err
	}

	debugLog("remote create failed, writing to cache: %v", err)
	s.mu.Lock()
	defer s.mu.Unlock()

	firstID, allocErr := s.alloc.NextIntID()
	if allocErr != nil {
		return nil, allocErr
	}
	for i := range items {
		items[i].IntID = firstID + i
	}
	if err := s.cache.InsertVocab(items); err != nil {
		return nil, fmt.Errorf("offline create: %w", err)
	}
	return items, nil
}

// Update applies a patch to the item's latest state under the writer
// lock, persists it to the cache, then attempts the remote update
// idempotently by id. The optimistic local update is authoritative for
// the caller; a transport failure only means remote divergence until
// the next successful sync.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (*models.VocabItem, error) {
	s.mu.Lock()
	item, err := s.cache.GetVocab(id)
	if err != nil {
		s.mu.Unlock()
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	patch(item)
	Normalize(item)
	item.UpdatedAt = time.Now()

	if err := s.cache.UpsertVocab(item); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("cache update: %w", err)
	}
	s.mu.Unlock()

	if _, err := s.remote.UpdateVocab(ctx, *item); err != nil {
		if !remote.IsUnavailable(err) {
			return nil, err
		}
		debugLog("remote update failed for %s, cache retains change: %v", id, err)
	}
	return item, nil
}

// Delete removes items by id from both tiers. Deletions apply locally
// even when the remote call fails, so a user is never blocked from
// removing an item they can see. Absent ids are skipped; repeating the
// call yields no further change. The server's remaining catalog is
// merged with the cache, not swapped in wholesale: records created
// while offline are unknown to the server and must survive deletes of
// unrelated items.
func (s *Store) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	remaining, err := s.remote.DeleteVocab(ctx, ids)
	if err == nil {
		NormalizeAll(remaining)
		if err := s.cache.DeleteVocab(ids); err != nil {
			return err
		}
		local, err := s.cache.ListAllVocab()
		if err != nil {
			return err
		}
		merged := mergeByID(local, remaining)
		if err := s.cache.ReplaceAllVocab(merged); err != nil {
			return fmt.Errorf("persist remaining catalog: %w", err)
		}
		return nil
	}
	if !remote.IsUnavailable(err) {
		return err
	}

	debugLog("remote delete failed, filtering cache: %v", err)
	return s.cache.DeleteVocab(ids)
}

// Apps returns the app definitions with the same dual-tier discipline:
// remote when reachable (replacing the cached list), cache otherwise.
func (s *Store) Apps(ctx context.Context) ([]models.AppDefinition, error) {
	apps, err := s.remote.GetApps(ctx)
	if err != nil {
		if !remote.IsUnavailable(err) {
			return nil, err
		}
		debugLog("remote apps failed, serving cache: %v", err)
		return s.cache.ListApps()
	}
	if err := s.cache.ReplaceApps(apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// CreateApp registers a dataset app. A duplicate name is a validation
// failure and propagates; a transport failure degrades to creating the
// app in the cache only.
func (s *Store) CreateApp(ctx context.Context, name string) (*models.AppDefinition, error) {
	if name == "" {
		return nil, fmt.Errorf("app name is required")
	}

	app, err := s.remote.CreateApp(ctx, name)
	if err == nil {
		if _, err := s.Apps(ctx); err != nil {
			return nil, err
		}
		return app, nil
	}
	if !remote.IsUnavailable(err) {
		return nil, err
	}

	debugLog("remote app create failed, writing to cache: %v", err)
	return s.cache.CreateApp(name)
}

// Counts returns per-status item counts for one context, from the
// cache tier.
func (s *Store) Counts(appName, targetLang string) (map[models.ItemStatus]int64, error) {
	return s.cache.CountVocabByStatus(appName, targetLang)
}

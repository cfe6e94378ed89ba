package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocab-forge/vocabforge/internal/config"
	"github.com/vocab-forge/vocabforge/internal/db"
	"github.com/vocab-forge/vocabforge/internal/models"
	"github.com/vocab-forge/vocabforge/internal/remote"
)

func testCache(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.New(db.Config{
		Path:        filepath.Join(t.TempDir(), "test.db"),
		MaxIdleConn: 1,
		MaxOpenConn: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// offlineStore builds a store whose remote tier is unconfigured, so
// every remote call fails with ErrUnavailable.
func offlineStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(testCache(t), remote.NewClient(config.RemoteConfig{}))
}

// serverStore builds a store backed by a stub remote server.
func serverStore(t *testing.T, handler http.Handler) *Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := remote.NewClient(config.RemoteConfig{BaseURL: srv.URL, RateLimit: 6000})
	return NewStore(testCache(t), client)
}

func pendingItem(term string) models.VocabItem {
	return models.VocabItem{
		AppName:    "lingodeer",
		TargetLang: "ja",
		Term:       term,
		Status:     models.StatusPending,
	}
}

func TestStore_OfflineCreateAllocatesSequentialIntIDs(t *testing.T) {
	store := offlineStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, []models.VocabItem{
		pendingItem("dog"), pendingItem("cat"), pendingItem("fish"),
	})
	require.NoError(t, err)
	require.Len(t, created, 3)

	assert.Equal(t, []int{1, 2, 3}, []int{created[0].IntID, created[1].IntID, created[2].IntID})
	for _, it := range created {
		assert.NotEmpty(t, it.ID, "offline create must still assign a uuid")
	}

	// A second batch continues the sequence past the existing max.
	more, err := store.Create(ctx, []models.VocabItem{pendingItem("bird")})
	require.NoError(t, err)
	assert.Equal(t, 4, more[0].IntID)
}

func TestStore_OfflineListServesCache(t *testing.T) {
	store := offlineStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, []models.VocabItem{pendingItem("dog"), pendingItem("cat")})
	require.NoError(t, err)

	listed, err := store.List(ctx, "lingodeer", "ja")
	require.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, "dog", listed[0].Term)
}

func TestStore_OfflineDeleteIsIdempotent(t *testing.T) {
	store := offlineStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, []models.VocabItem{
		pendingItem("dog"), pendingItem("cat"), pendingItem("fish"),
	})
	require.NoError(t, err)

	catID := created[1].ID
	require.NoError(t, store.Delete(ctx, []string{catID}))
	// Repeating the deletion yields no further change and no error.
	require.NoError(t, store.Delete(ctx, []string{catID}))

	listed, err := store.List(ctx, "lingodeer", "ja")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, []int{1, 3}, []int{listed[0].IntID, listed[1].IntID},
		"surviving items keep their int ids")
}

func TestStore_OnlineDeletePreservesLocalOnlyRecords(t *testing.T) {
	// After deleting "b" the server's remaining catalog holds only "c";
	// it has never heard of the offline-created "a".
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /vocab", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.VocabItem{
			{ID: "c", IntID: 3, AppName: "lingodeer", TargetLang: "ja", Term: "fish", Status: models.StatusCompleted},
		})
	})
	store := serverStore(t, mux)
	ctx := context.Background()

	require.NoError(t, store.cache.InsertVocab([]models.VocabItem{
		{ID: "a", IntID: 1, AppName: "lingodeer", TargetLang: "ja", Term: "dog", Status: models.StatusPending},
		{ID: "b", IntID: 2, AppName: "lingodeer", TargetLang: "ja", Term: "cat", Status: models.StatusCompleted},
	}))

	require.NoError(t, store.Delete(ctx, []string{"b"}))

	cached, err := store.cache.ListAllVocab()
	require.NoError(t, err)
	require.Len(t, cached, 2, "deleting a remote item must not erase offline-created records")
	assert.Equal(t, "a", cached[0].ID, "offline-created record survives")
	assert.Equal(t, "c", cached[1].ID, "server's remaining catalog is merged in")
}

func TestStore_GetNotFound(t *testing.T) {
	store := offlineStore(t)

	_, err := store.Get("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpdatePatchesLatestState(t *testing.T) {
	store := offlineStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, []models.VocabItem{pendingItem("dog")})
	require.NoError(t, err)
	id := created[0].ID

	// Two sequential patches touching different fields must compose.
	_, err = store.Update(ctx, id, func(it *models.VocabItem) {
		it.Translations["fr"] = "chien"
	})
	require.NoError(t, err)

	updated, err := store.Update(ctx, id, func(it *models.VocabItem) {
		it.PartOfSpeech = "noun"
	})
	require.NoError(t, err)

	assert.Equal(t, "chien", updated.Translations["fr"], "earlier patch must survive")
	assert.Equal(t, "noun", updated.PartOfSpeech)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestStore_UpdateUnknownID(t *testing.T) {
	store := offlineStore(t)

	_, err := store.Update(context.Background(), "no-such-id", func(it *models.VocabItem) {})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ListMergesRemoteOverCache(t *testing.T) {
	remoteItems := []models.VocabItem{
		{ID: "b", IntID: 2, AppName: "lingodeer", TargetLang: "ja", Term: "cat-remote", Status: models.StatusCompleted},
		{ID: "c", IntID: 3, AppName: "lingodeer", TargetLang: "ja", Term: "fish"},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /vocab", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(remoteItems)
	})
	store := serverStore(t, mux)
	ctx := context.Background()

	// Seed the cache with one overlapping and one local-only record.
	seedErr := store.cache.InsertVocab([]models.VocabItem{
		{ID: "a", IntID: 1, AppName: "lingodeer", TargetLang: "ja", Term: "dog", Status: models.StatusPending},
		{ID: "b", IntID: 2, AppName: "lingodeer", TargetLang: "ja", Term: "cat-local", Status: models.StatusPending},
	})
	require.NoError(t, seedErr)

	listed, err := store.List(ctx, "lingodeer", "ja")
	require.NoError(t, err)

	require.Len(t, listed, 3)
	assert.Equal(t, "dog", listed[0].Term, "local-only record survives the merge")
	assert.Equal(t, "cat-remote", listed[1].Term, "remote record wins on id collision")
	assert.Equal(t, "fish", listed[2].Term)

	// The merged view was persisted back to the cache tier.
	cached, err := store.cache.ListAllVocab()
	require.NoError(t, err)
	assert.Len(t, cached, 3)
}

func TestStore_ListServerErrorFallsBack(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /vocab", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	store := serverStore(t, mux)
	ctx := context.Background()

	require.NoError(t, store.cache.InsertVocab([]models.VocabItem{
		{ID: "a", IntID: 1, AppName: "lingodeer", TargetLang: "ja", Term: "dog", Status: models.StatusPending},
	}))

	listed, err := store.List(ctx, "lingodeer", "ja")
	require.NoError(t, err, "5xx degrades to the cache, not an error")
	assert.Len(t, listed, 1)
}

func TestStore_CreateAppValidationPropagates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /apps", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "app already exists"})
	})
	store := serverStore(t, mux)

	_, err := store.CreateApp(context.Background(), "lingodeer")
	require.Error(t, err)
	var apiErr *remote.APIError
	assert.ErrorAs(t, err, &apiErr, "duplicate app is a validation failure, not an outage")
	assert.False(t, remote.IsUnavailable(err))
}

func TestStore_CreateAppOfflineFallsBack(t *testing.T) {
	store := offlineStore(t)

	app, err := store.CreateApp(context.Background(), "Duolingo")
	require.NoError(t, err)
	assert.Equal(t, "Duolingo", app.Name)
	assert.NotEmpty(t, app.ID)
}

func TestAllocator_NextIntID(t *testing.T) {
	cache := testCache(t)
	alloc := NewAllocator(cache)

	first, err := alloc.NextIntID()
	require.NoError(t, err)
	assert.Equal(t, 1, first, "empty catalog starts at 1")

	require.NoError(t, cache.InsertVocab([]models.VocabItem{
		{ID: "x", IntID: 41, AppName: "lingodeer", TargetLang: "ja", Term: "t", Status: models.StatusPending},
	}))

	next, err := alloc.NextIntID()
	require.NoError(t, err)
	assert.Equal(t, 42, next)
}

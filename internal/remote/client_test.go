package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocab-forge/vocabforge/internal/config"
	"github.com/vocab-forge/vocabforge/internal/models"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.RemoteConfig{BaseURL: srv.URL, RateLimit: 6000})
}

func TestClient_Unconfigured(t *testing.T) {
	client := NewClient(config.RemoteConfig{})

	assert.False(t, client.Configured())

	_, err := client.ListVocab(context.Background(), "")
	assert.True(t, IsUnavailable(err), "unconfigured client must look like an outage")
}

func TestClient_ConnectionRefused(t *testing.T) {
	// A closed port: connection errors map to ErrUnavailable.
	client := NewClient(config.RemoteConfig{BaseURL: "http://127.0.0.1:1", TimeoutSeconds: 1})

	_, err := client.ListVocab(context.Background(), "")
	assert.True(t, IsUnavailable(err))
}

func TestClient_ServerErrorIsUnavailable(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	_, err := client.GetApps(context.Background())
	assert.True(t, IsUnavailable(err), "5xx means the remote tier is down")
}

func TestClient_ValidationErrorIsAPIError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "app already exists"})
	}))

	_, err := client.CreateApp(context.Background(), "lingodeer")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "app already exists", apiErr.Message)
	assert.False(t, IsUnavailable(err), "4xx is a data error, not an outage")
}

func TestLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["password"] != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(models.User{
			ID:       "u1",
			Username: creds["username"],
			Role:     models.RoleEditor,
			Permissions: models.PermissionMap{
				"lingodeer": {models.ScopeCommon, "fr"},
			},
		})
	})
	client := testClient(t, mux)

	user, err := client.Login(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.Permissions.Grants("lingodeer", "fr"))

	_, err = client.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_NilPermissionsBecomeEmptyMap(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1", Username: "root", Role: models.RoleAdmin})
	}))

	user, err := client.Login(context.Background(), "root", "pw")
	require.NoError(t, err)
	assert.NotNil(t, user.Permissions)
}

func TestListVocab_AppFilterQuery(t *testing.T) {
	var gotQuery string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]models.VocabItem{
			{ID: "a", IntID: 1, AppName: "lingodeer", TargetLang: "ja", Term: "犬"},
		})
	}))

	items, err := client.ListVocab(context.Background(), "lingodeer")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "appName=lingodeer", gotQuery)
	assert.Equal(t, "犬", items[0].Term)
}

func TestDeleteVocab_ReturnsRemainingCatalog(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /vocab", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, []string{"b"}, payload["ids"])
		_ = json.NewEncoder(w).Encode([]models.VocabItem{
			{ID: "a", IntID: 1, AppName: "lingodeer", TargetLang: "ja", Term: "犬"},
			{ID: "c", IntID: 3, AppName: "lingodeer", TargetLang: "ja", Term: "魚"},
		})
	})
	client := testClient(t, mux)

	remaining, err := client.DeleteVocab(context.Background(), []string{"b"})
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, []int{1, 3}, []int{remaining[0].IntID, remaining[1].IntID})
}

func TestUpdateVocab_TranslationsTravelAsJSONObjects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /vocab/item-1", func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		// The wire format is a real JSON object, not a string column.
		_, ok := raw["translations"].(map[string]interface{})
		assert.True(t, ok, "translations must be a JSON object on the wire")

		var item models.VocabItem
		data, _ := json.Marshal(raw)
		require.NoError(t, json.Unmarshal(data, &item))
		_ = json.NewEncoder(w).Encode(item)
	})
	client := testClient(t, mux)

	updated, err := client.UpdateVocab(context.Background(), models.VocabItem{
		ID:           "item-1",
		AppName:      "lingodeer",
		TargetLang:   "ja",
		Term:         "犬",
		Translations: models.TranslationMap{"en": "dog"},
	})
	require.NoError(t, err)
	assert.Equal(t, "dog", updated.Translations["en"])
}

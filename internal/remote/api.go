package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/vocab-forge/vocabforge/internal/models"
)

// Login authenticates against the remote store and returns the
// sanitized user record. A 401 maps to ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, error) {
	payload := map[string]string{"username": username, "password": password}
	var user models.User
	err := c.do(ctx, http.MethodPost, "/auth/login", payload, &user)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Permissions == nil {
		user.Permissions = models.PermissionMap{}
	}
	return &user, nil
}

// GetApps fetches all app definitions.
func (c *Client) GetApps(ctx context.Context) ([]models.AppDefinition, error) {
	var apps []models.AppDefinition
	if err := c.do(ctx, http.MethodGet, "/apps", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// CreateApp registers a new app definition. A duplicate name surfaces
// as an *APIError with status 400.
func (c *Client) CreateApp(ctx context.Context, name string) (*models.AppDefinition, error) {
	payload := map[string]string{"name": name}
	var app models.AppDefinition
	if err := c.do(ctx, http.MethodPost, "/apps", payload, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// ListVocab fetches catalog items, optionally filtered to one app.
// Translation maps arrive as real JSON objects; the server handles its
// own column encoding.
func (c *Client) ListVocab(ctx context.Context, appName string) ([]models.VocabItem, error) {
	path := query("/vocab", map[string]string{"appName": appName})
	var items []models.VocabItem
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateVocab batch-creates items. The server assigns int ids
// sequentially from its current max and returns the canonical records.
func (c *Client) CreateVocab(ctx context.Context, items []models.VocabItem) ([]models.VocabItem, error) {
	var created []models.VocabItem
	if err := c.do(ctx, http.MethodPost, "/vocab", items, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateVocab updates a single item by id. The server keeps id and
// intId immutable regardless of the payload, so retries are idempotent.
func (c *Client) UpdateVocab(ctx context.Context, item models.VocabItem) (*models.VocabItem, error) {
	var updated models.VocabItem
	path := fmt.Sprintf("/vocab/%s", item.ID)
	if err := c.do(ctx, http.MethodPut, path, item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteVocab removes items by id and returns the full remaining
// catalog. Absent ids are silently skipped by the server.
func (c *Client) DeleteVocab(ctx context.Context, ids []string) ([]models.VocabItem, error) {
	payload := map[string][]string{"ids": ids}
	var remaining []models.VocabItem
	if err := c.do(ctx, http.MethodDelete, "/vocab", payload, &remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

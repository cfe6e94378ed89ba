package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vocab-forge/vocabforge/internal/models"
)

func editor(perms models.PermissionMap) *models.User {
	return &models.User{
		Username:    "test-editor",
		Role:        models.RoleEditor,
		Permissions: perms,
	}
}

func TestCanEdit_Admin(t *testing.T) {
	admin := &models.User{Username: "root", Role: models.RoleAdmin}

	assert.True(t, CanEditCommon(admin, "lingodeer"))
	assert.True(t, CanEditLanguage(admin, "lingodeer", "fr"))
	assert.True(t, CanEditLanguage(admin, "some-unknown-app", "zh-rTW"))
}

func TestCanEdit_NilUser(t *testing.T) {
	assert.False(t, CanEditCommon(nil, "lingodeer"))
	assert.False(t, CanEditLanguage(nil, "lingodeer", "fr"))
}

func TestCanEdit_EditorScopes(t *testing.T) {
	user := editor(models.PermissionMap{
		"lingodeer":    {models.ScopeCommon, "fr"},
		"chineseskill": {"de"},
	})

	// Common scope covers shared metadata but not translations.
	assert.True(t, CanEditCommon(user, "lingodeer"))
	assert.True(t, CanEditLanguage(user, "lingodeer", "fr"))
	assert.False(t, CanEditLanguage(user, "lingodeer", "de"))

	// Scopes are per-app; a grant on one app says nothing about another.
	assert.False(t, CanEditCommon(user, "chineseskill"))
	assert.True(t, CanEditLanguage(user, "chineseskill", "de"))
	assert.False(t, CanEditCommon(user, "unlisted-app"))
}

func TestCanEdit_CommonDoesNotImplyLanguages(t *testing.T) {
	user := editor(models.PermissionMap{"lingodeer": {models.ScopeCommon}})

	assert.True(t, CanEditCommon(user, "lingodeer"))
	for _, l := range models.SupportedLanguages {
		assert.False(t, CanEditLanguage(user, "lingodeer", l.Code),
			"common scope must not grant language %s", l.Code)
	}
}

func TestValidatePermissions(t *testing.T) {
	assert.NoError(t, ValidatePermissions(nil))
	assert.NoError(t, ValidatePermissions(models.PermissionMap{
		"lingodeer": {models.ScopeCommon, "en", "zh-rCN"},
	}))

	assert.Error(t, ValidatePermissions(models.PermissionMap{
		"": {models.ScopeCommon},
	}))
	assert.Error(t, ValidatePermissions(models.PermissionMap{
		"lingodeer": {"klingon"},
	}))
}

func TestEditableLanguages(t *testing.T) {
	user := editor(models.PermissionMap{"lingodeer": {"fr", "ja", models.ScopeCommon}})

	langs := EditableLanguages(user, "lingodeer")
	assert.ElementsMatch(t, []string{"fr", "ja"}, langs)

	admin := &models.User{Role: models.RoleAdmin}
	assert.Len(t, EditableLanguages(admin, "lingodeer"), len(models.SupportedLanguages))
}

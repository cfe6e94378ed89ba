// Package permission evaluates field-level edit rights. This is a
// client-side trust boundary only: the remote persistence API does not
// re-validate scope on write.
package permission

import (
	"fmt"

	"github.com/vocab-forge/vocabforge/internal/models"
)

// CanEdit reports whether the user may mutate fields under the given
// scope in the given app. Admins always pass; editors pass iff their
// permission map grants the scope for that app.
func CanEdit(user *models.User, appName string, scope models.Scope) bool {
	if user == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}
	return user.Permissions.Grants(appName, scope)
}

// CanEditCommon reports whether the user may mutate non-language
// metadata (script, part of speech, media) in the given app.
func CanEditCommon(user *models.User, appName string) bool {
	return CanEdit(user, appName, models.ScopeCommon)
}

// CanEditLanguage reports whether the user may mutate the translation
// fields of one language in the given app.
func CanEditLanguage(user *models.User, appName, langCode string) bool {
	return CanEdit(user, appName, models.Scope(langCode))
}

// ValidatePermissions checks a permission map at construction time:
// app names must be non-empty and every scope must be either the
// common sentinel or a supported language code.
func ValidatePermissions(pm models.PermissionMap) error {
	for appName, scopes := range pm {
		if appName == "" {
			return fmt.Errorf("permission map: empty app name")
		}
		for _, scope := range scopes {
			if scope == models.ScopeCommon {
				continue
			}
			if !models.IsSupportedLanguage(string(scope)) {
				return fmt.Errorf("permission map: unknown scope %q for app %q", scope, appName)
			}
		}
	}
	return nil
}

// EditableLanguages returns the language codes the user may translate
// into for the given app, in registry order.
func EditableLanguages(user *models.User, appName string) []string {
	var codes []string
	for _, l := range models.SupportedLanguages {
		if CanEditLanguage(user, appName, l.Code) {
			codes = append(codes, l.Code)
		}
	}
	return codes
}

package models

// UserRole distinguishes administrators from scoped editors.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
)

// Scope is a permission unit: a specific language code, or the common
// sentinel covering non-language metadata (script, part of speech, media).
type Scope string

// ScopeCommon grants edit access to non-language metadata fields.
const ScopeCommon Scope = "common"

// PermissionMap maps an app name to the set of scopes granted for it.
type PermissionMap map[string][]Scope

// Grants reports whether the map grants the scope for the app.
func (m PermissionMap) Grants(appName string, scope Scope) bool {
	for _, s := range m[appName] {
		if s == scope {
			return true
		}
	}
	return false
}

// User is an authenticated catalog user. Admins implicitly hold every
// scope; editors hold only what their permission map grants.
type User struct {
	ID          string        `json:"id"`
	Username    string        `json:"username"`
	Role        UserRole      `json:"role"`
	Permissions PermissionMap `json:"permissions"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package models

import "articlehub/encodedset"

// Role is a named privilege level. A user may hold several roles at
// once, encoded as one sorted semicolon-joined string.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
	RoleEditor    Role = "EDITOR"
	RoleWriter    Role = "WRITER"
	RoleDefault   Role = "DEFAULT"
	RoleBanned    Role = "BANNED"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleEditor, RoleWriter, RoleDefault, RoleBanned:
		return true
	default:
		return false
	}
}

// HasRole reports whether the encoded role set contains role.
func HasRole(roles string, role Role) bool {
	return encodedset.Contains(roles, string(role))
}

// HasAnyRole reports whether the encoded role set intersects the given roles.
func HasAnyRole(roles string, required ...Role) bool {
	candidates := make([]string, len(required))
	for i, r := range required {
		candidates[i] = string(r)
	}
	return encodedset.Intersects(roles, candidates...)
}

// IsBanned reports whether the role set contains BANNED. Banned takes
// precedence over every other role held.
func IsBanned(roles string) bool {
	return HasRole(roles, RoleBanned)
}

// Ban discards every role held and leaves only BANNED.
func Ban(roles string) string {
	return string(RoleBanned)
}

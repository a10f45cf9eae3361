package models

import (
	"articlehub/encodedset"

	"gorm.io/gorm"
)

// User holds credentials plus an encoded set of roles in a single
// text column, so a user can be e.g. WRITER and MODERATOR at once
// without a join table.
type User struct {
	gorm.Model
	Email    string `gorm:"unique;not null" json:"email"`
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Roles    string `gorm:"not null" json:"roles"`
}

// HasRole reports whether the encoded role set contains role.
func (u *User) HasRole(role Role) bool {
	return HasRole(u.Roles, role)
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u *User) HasAnyRole(roles ...Role) bool {
	return HasAnyRole(u.Roles, roles...)
}

// AddRole returns the user's role set with role added.
func (u *User) AddRole(role Role) string {
	return encodedset.Add(u.Roles, string(role))
}

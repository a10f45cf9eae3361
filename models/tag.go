package models

import "gorm.io/gorm"

// TagNameMinLen is the shortest accepted tag name.
const TagNameMinLen = 3

// Tag is attached to articles through the encoded tag-id set on Article.
type Tag struct {
	gorm.Model
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

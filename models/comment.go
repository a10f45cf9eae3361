package models

import "gorm.io/gorm"

// CommentStatus is PUBLISHED on creation; a moderator filter may hide
// DECLINED comments. Comments are never edited.
type CommentStatus string

const (
	CommentPublished CommentStatus = "PUBLISHED"
	CommentDeclined  CommentStatus = "DECLINED"
)

// Comment belongs to a non-draft article.
type Comment struct {
	gorm.Model
	ArticleID uint          `gorm:"index;not null" json:"article_id"`
	UserID    uint          `gorm:"index;not null" json:"user_id"`
	Text      string        `gorm:"type:text;not null" json:"text"`
	Status    CommentStatus `gorm:"not null" json:"status"`
}

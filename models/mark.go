package models

import "gorm.io/gorm"

// Mark is one user's 0..10 rating of one article. The composite
// unique index backs the one-mark-per-user rule under concurrency.
type Mark struct {
	gorm.Model
	ArticleID uint `gorm:"not null;uniqueIndex:idx_article_user" json:"article_id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_article_user" json:"user_id"`
	Value     int  `gorm:"not null" json:"value"`
}

// Mark values are inclusive bounds on Mark.Value.
const (
	MarkMin = 0
	MarkMax = 10
)

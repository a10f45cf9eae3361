package models

import (
	"articlehub/encodedset"
	"strconv"

	"gorm.io/gorm"
)

// ArticleStatus is an article's lifecycle state. PUBLISHED means
// submitted for review by its author; APPROVED and DECLINED are the
// moderator's verdicts.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "DRAFT"
	StatusPublished ArticleStatus = "PUBLISHED"
	StatusApproved  ArticleStatus = "APPROVED"
	StatusDeclined  ArticleStatus = "DECLINED"
)

func (s ArticleStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusApproved, StatusDeclined:
		return true
	default:
		return false
	}
}

// Article stores its author and tag memberships as encoded sets, so
// co-authorship and tagging need no join tables. UpdatedAt doubles as
// the last-modified date and orders listings.
type Article struct {
	gorm.Model
	Authors    string        `gorm:"not null" json:"authors"`
	Status     ArticleStatus `gorm:"not null;index" json:"status"`
	Header     string        `gorm:"not null" json:"header"`
	Body       string        `gorm:"type:text" json:"body"`
	Tags       string        `json:"tags"`
	VoteCount  uint          `gorm:"not null;default:0" json:"vote_count"`
	SumOfMarks int           `gorm:"not null;default:0" json:"sum_of_marks"`
}

// HasAuthor reports whether the user is one of the article's authors.
func (a *Article) HasAuthor(userID uint) bool {
	return encodedset.Contains(a.Authors, FormatID(userID))
}

// AddAuthor returns the authors set with the user added.
func (a *Article) AddAuthor(userID uint) string {
	return encodedset.Add(a.Authors, FormatID(userID))
}

// HasTag reports whether the tag is already attached to the article.
func (a *Article) HasTag(tagID uint) bool {
	return encodedset.Contains(a.Tags, FormatID(tagID))
}

// AddTag returns the tags set with the tag attached.
func (a *Article) AddTag(tagID uint) string {
	return encodedset.Add(a.Tags, FormatID(tagID))
}

// FormatID renders a numeric id as an encoded-set token.
func FormatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

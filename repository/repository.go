// Package repository hides durable storage behind a single interface
// with a MySQL-backed implementation for the app and an in-memory one
// for tests.
package repository

import (
	"context"

	"articlehub/models"
)

// MarkFilter compares an article's sum_of_marks against Value.
type MarkFilter struct {
	Op    string // ">", "<" or "=" for an exact match
	Value int
}

// ArticleFilters narrows a listing. Zero values mean "no filter"; the
// substring filters match against the raw encoded author/tag columns.
type ArticleFilters struct {
	Status *models.ArticleStatus
	Header string
	Body   string
	Author string
	Tag    string
	Marks  *MarkFilter
}

// Store is the persistence contract the services depend on. Every call
// is transactional on its own; CreateMark additionally applies the
// aggregate update on the article in the same transaction.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	UserByID(ctx context.Context, id uint) (*models.User, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error

	CreateArticle(ctx context.Context, article *models.Article) error
	ArticleByID(ctx context.Context, id uint) (*models.Article, error)
	ListArticles(ctx context.Context, filters ArticleFilters) ([]models.Article, error)
	UpdateArticle(ctx context.Context, article *models.Article) error
	DeleteArticle(ctx context.Context, id uint) error

	CreateComment(ctx context.Context, comment *models.Comment) error
	CommentsByArticle(ctx context.Context, articleID uint, publishedOnly bool) ([]models.Comment, error)

	HasMark(ctx context.Context, articleID, userID uint) (bool, error)
	CreateMark(ctx context.Context, mark *models.Mark) error

	CreateTag(ctx context.Context, tag *models.Tag) error
	TagByID(ctx context.Context, id uint) (*models.Tag, error)
}

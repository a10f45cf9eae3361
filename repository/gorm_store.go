package repository

import (
	"context"
	"errors"
	"fmt"

	"articlehub/apperrors"
	"articlehub/models"

	"gorm.io/gorm"
)

// GormStore backs Store with a gorm connection. The DB must be opened
// with TranslateError so duplicate-key violations surface as
// gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrConflict
	default:
		return err
	}
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s *GormStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) UpdateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Save(user).Error)
}

func (s *GormStore) CreateArticle(ctx context.Context, article *models.Article) error {
	return translate(s.db.WithContext(ctx).Create(article).Error)
}

func (s *GormStore) ArticleByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := s.db.WithContext(ctx).First(&article, id).Error; err != nil {
		return nil, translate(err)
	}
	return &article, nil
}

func (s *GormStore) ListArticles(ctx context.Context, filters ArticleFilters) ([]models.Article, error) {
	query := s.db.WithContext(ctx).Model(&models.Article{})
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Header != "" {
		query = query.Where("header LIKE ?", "%"+filters.Header+"%")
	}
	if filters.Body != "" {
		query = query.Where("body LIKE ?", "%"+filters.Body+"%")
	}
	if filters.Author != "" {
		query = query.Where("authors LIKE ?", "%"+filters.Author+"%")
	}
	if filters.Tag != "" {
		query = query.Where("tags LIKE ?", "%"+filters.Tag+"%")
	}
	if filters.Marks != nil {
		switch filters.Marks.Op {
		case ">":
			query = query.Where("sum_of_marks > ?", filters.Marks.Value)
		case "<":
			query = query.Where("sum_of_marks < ?", filters.Marks.Value)
		default:
			query = query.Where("sum_of_marks = ?", filters.Marks.Value)
		}
	}
	var articles []models.Article
	if err := query.Order("updated_at DESC").Find(&articles).Error; err != nil {
		return nil, translate(err)
	}
	return articles, nil
}

func (s *GormStore) UpdateArticle(ctx context.Context, article *models.Article) error {
	return translate(s.db.WithContext(ctx).Save(article).Error)
}

func (s *GormStore) DeleteArticle(ctx context.Context, id uint) error {
	return translate(s.db.WithContext(ctx).Delete(&models.Article{}, id).Error)
}

func (s *GormStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	return translate(s.db.WithContext(ctx).Create(comment).Error)
}

func (s *GormStore) CommentsByArticle(ctx context.Context, articleID uint, publishedOnly bool) ([]models.Comment, error) {
	query := s.db.WithContext(ctx).Where("article_id = ?", articleID)
	if publishedOnly {
		query = query.Where("status = ?", models.CommentPublished)
	}
	var comments []models.Comment
	if err := query.Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, translate(err)
	}
	return comments, nil
}

func (s *GormStore) HasMark(ctx context.Context, articleID, userID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Mark{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// CreateMark inserts the mark and bumps the article's aggregates in
// one transaction. The unique (article_id, user_id) index turns a
// concurrent double-mark into a Conflict instead of a torn update.
func (s *GormStore) CreateMark(ctx context.Context, mark *models.Mark) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mark).Error; err != nil {
			return err
		}
		return tx.Model(&models.Article{}).
			Where("id = ?", mark.ArticleID).
			Updates(map[string]interface{}{
				"vote_count":   gorm.Expr("vote_count + 1"),
				"sum_of_marks": gorm.Expr("sum_of_marks + ?", mark.Value),
			}).Error
	})
	if err != nil {
		return fmt.Errorf("create mark: %w", translate(err))
	}
	return nil
}

func (s *GormStore) CreateTag(ctx context.Context, tag *models.Tag) error {
	return translate(s.db.WithContext(ctx).Create(tag).Error)
}

func (s *GormStore) TagByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, translate(err)
	}
	return &tag, nil
}

package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"articlehub/apperrors"
	"articlehub/models"
)

// MemoryStore implements Store in memory for tests. It mirrors the
// database constraints the services rely on: unique username/email,
// unique tag names and one mark per (article, user).
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[uint]*models.User
	articles map[uint]*models.Article
	comments map[uint]*models.Comment
	marks    map[uint]*models.Mark
	tags     map[uint]*models.Tag
	nextID   uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uint]*models.User),
		articles: make(map[uint]*models.Article),
		comments: make(map[uint]*models.Comment),
		marks:    make(map[uint]*models.Mark),
		tags:     make(map[uint]*models.Tag),
	}
}

func (s *MemoryStore) allocate() uint {
	s.nextID++
	return s.nextID
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return apperrors.ErrConflict
		}
	}
	user.ID = s.allocate()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *MemoryStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryStore) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *MemoryStore) UpdateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return apperrors.ErrNotFound
	}
	user.UpdatedAt = time.Now().UTC()
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *MemoryStore) CreateArticle(ctx context.Context, article *models.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	article.ID = s.allocate()
	article.CreatedAt = time.Now().UTC()
	article.UpdatedAt = article.CreatedAt
	stored := *article
	s.articles[article.ID] = &stored
	return nil
}

func (s *MemoryStore) ArticleByID(ctx context.Context, id uint) (*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, ok := s.articles[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *article
	return &copied, nil
}

func matchesMarkFilter(article *models.Article, f *MarkFilter) bool {
	switch f.Op {
	case ">":
		return article.SumOfMarks > f.Value
	case "<":
		return article.SumOfMarks < f.Value
	default:
		return article.SumOfMarks == f.Value
	}
}

func (s *MemoryStore) ListArticles(ctx context.Context, filters ArticleFilters) ([]models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Article
	for _, article := range s.articles {
		if filters.Status != nil && article.Status != *filters.Status {
			continue
		}
		if filters.Header != "" && !strings.Contains(article.Header, filters.Header) {
			continue
		}
		if filters.Body != "" && !strings.Contains(article.Body, filters.Body) {
			continue
		}
		if filters.Author != "" && !strings.Contains(article.Authors, filters.Author) {
			continue
		}
		if filters.Tag != "" && !strings.Contains(article.Tags, filters.Tag) {
			continue
		}
		if filters.Marks != nil && !matchesMarkFilter(article, filters.Marks) {
			continue
		}
		result = append(result, *article)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (s *MemoryStore) UpdateArticle(ctx context.Context, article *models.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[article.ID]; !ok {
		return apperrors.ErrNotFound
	}
	article.UpdatedAt = time.Now().UTC()
	stored := *article
	s.articles[article.ID] = &stored
	return nil
}

func (s *MemoryStore) DeleteArticle(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.articles, id)
	return nil
}

func (s *MemoryStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment.ID = s.allocate()
	comment.CreatedAt = time.Now().UTC()
	comment.UpdatedAt = comment.CreatedAt
	stored := *comment
	s.comments[comment.ID] = &stored
	return nil
}

func (s *MemoryStore) CommentsByArticle(ctx context.Context, articleID uint, publishedOnly bool) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Comment
	for _, comment := range s.comments {
		if comment.ArticleID != articleID {
			continue
		}
		if publishedOnly && comment.Status != models.CommentPublished {
			continue
		}
		result = append(result, *comment)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (s *MemoryStore) HasMark(ctx context.Context, articleID, userID uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, mark := range s.marks {
		if mark.ArticleID == articleID && mark.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) CreateMark(ctx context.Context, mark *models.Mark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.marks {
		if m.ArticleID == mark.ArticleID && m.UserID == mark.UserID {
			return apperrors.ErrConflict
		}
	}
	article, ok := s.articles[mark.ArticleID]
	if !ok {
		return apperrors.ErrNotFound
	}

	mark.ID = s.allocate()
	mark.CreatedAt = time.Now().UTC()
	mark.UpdatedAt = mark.CreatedAt
	stored := *mark
	s.marks[mark.ID] = &stored

	article.VoteCount++
	article.SumOfMarks += mark.Value
	return nil
}

func (s *MemoryStore) CreateTag(ctx context.Context, tag *models.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tags {
		if t.Name == tag.Name {
			return apperrors.ErrConflict
		}
	}
	tag.ID = s.allocate()
	tag.CreatedAt = time.Now().UTC()
	tag.UpdatedAt = tag.CreatedAt
	stored := *tag
	s.tags[tag.ID] = &stored
	return nil
}

func (s *MemoryStore) TagByID(ctx context.Context, id uint) (*models.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tag, ok := s.tags[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *tag
	return &copied, nil
}

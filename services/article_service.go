package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"articlehub/apperrors"
	"articlehub/models"
	"articlehub/repository"
	"articlehub/workflow"
)

// ArticleService drives the article lifecycle: it authorizes every
// action against the workflow policy, applies the change through the
// injected store and reports one of the four error kinds on rejection.
type ArticleService struct {
	store repository.Store
}

func NewArticleService(store repository.Store) *ArticleService {
	return &ArticleService{store: store}
}

type ArticleInput struct {
	Header string `json:"header" binding:"required"`
	Body   string `json:"body"`
}

// SearchParams are the optional listing filters as they arrive from
// the query string.
type SearchParams struct {
	Status string
	Header string
	Body   string
	Author string
	Tag    string
	Marks  string
}

func (s *ArticleService) CreateArticle(ctx context.Context, actor Identity, input ArticleInput) (*models.Article, error) {
	if !workflow.CanCreate(actor.Roles) {
		return nil, fmt.Errorf("create article: %w", apperrors.ErrUnauthorized)
	}
	article := &models.Article{
		Status: models.StatusDraft,
		Header: input.Header,
		Body:   input.Body,
	}
	article.Authors = article.AddAuthor(actor.UserID)
	if err := s.store.CreateArticle(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) GetArticle(ctx context.Context, id uint) (*models.Article, error) {
	return s.store.ArticleByID(ctx, id)
}

// parseMarkFilter accepts "N", ">N" or "<N" against sum_of_marks.
func parseMarkFilter(raw string) (*repository.MarkFilter, error) {
	op := "="
	numeric := raw
	if strings.HasPrefix(raw, ">") || strings.HasPrefix(raw, "<") {
		op = raw[:1]
		numeric = raw[1:]
	}
	value, err := strconv.Atoi(strings.TrimSpace(numeric))
	if err != nil {
		return nil, fmt.Errorf("mark filter %q: %w", raw, apperrors.ErrValidation)
	}
	return &repository.MarkFilter{Op: op, Value: value}, nil
}

// ListArticles returns approved articles unless the caller holds a
// moderation role and asked for an explicit status.
func (s *ArticleService) ListArticles(ctx context.Context, actor Identity, params SearchParams) ([]models.Article, error) {
	filters := repository.ArticleFilters{
		Header: params.Header,
		Body:   params.Body,
		Author: params.Author,
		Tag:    params.Tag,
	}

	if params.Status != "" {
		if !workflow.CanFilterByStatus(actor.Roles) {
			return nil, fmt.Errorf("status filter: %w", apperrors.ErrUnauthorized)
		}
		status := models.ArticleStatus(params.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("status %q: %w", params.Status, apperrors.ErrValidation)
		}
		filters.Status = &status
	} else {
		approved := models.StatusApproved
		filters.Status = &approved
	}

	if params.Marks != "" {
		marks, err := parseMarkFilter(params.Marks)
		if err != nil {
			return nil, err
		}
		filters.Marks = marks
	}

	return s.store.ListArticles(ctx, filters)
}

// UpdateArticle replaces the content and records the actor as a
// co-author.
func (s *ArticleService) UpdateArticle(ctx context.Context, actor Identity, id uint, input ArticleInput) (*models.Article, error) {
	article, err := s.store.ArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !workflow.CanEdit(actor.Roles, article, actor.UserID) {
		return nil, fmt.Errorf("edit article %d: %w", id, apperrors.ErrUnauthorized)
	}
	article.Header = input.Header
	article.Body = input.Body
	article.Authors = article.AddAuthor(actor.UserID)
	if err := s.store.UpdateArticle(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) ChangeStatus(ctx context.Context, actor Identity, id uint, target models.ArticleStatus) (*models.Article, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("status %q: %w", target, apperrors.ErrValidation)
	}
	article, err := s.store.ArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !workflow.CanChangeStatus(actor.Roles, article, actor.UserID, target) {
		return nil, fmt.Errorf("status %s to %s: %w", article.Status, target, apperrors.ErrUnauthorized)
	}
	previous := article.Status
	article.Status = target
	if err := s.store.UpdateArticle(ctx, article); err != nil {
		return nil, err
	}
	publishStatusChange(StatusChangeEvent{
		ArticleID: article.ID,
		Previous:  previous,
		Next:      target,
		ActorID:   actor.UserID,
		At:        article.UpdatedAt,
	})
	return article, nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, actor Identity, id uint) error {
	article, err := s.store.ArticleByID(ctx, id)
	if err != nil {
		return err
	}
	if !workflow.CanDelete(actor.Roles, article, actor.UserID) {
		return fmt.Errorf("delete article %d: %w", id, apperrors.ErrUnauthorized)
	}
	return s.store.DeleteArticle(ctx, id)
}

func (s *ArticleService) LeaveComment(ctx context.Context, actor Identity, articleID uint, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty comment: %w", apperrors.ErrValidation)
	}
	article, err := s.store.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !workflow.CanInteract(actor.Roles, article) {
		return nil, fmt.Errorf("comment article %d: %w", articleID, apperrors.ErrUnauthorized)
	}
	comment := &models.Comment{
		ArticleID: articleID,
		UserID:    actor.UserID,
		Text:      text,
		Status:    models.CommentPublished,
	}
	if err := s.store.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetComments hides declined comments from everyone but moderation roles.
func (s *ArticleService) GetComments(ctx context.Context, actor Identity, articleID uint) ([]models.Comment, error) {
	if _, err := s.store.ArticleByID(ctx, articleID); err != nil {
		return nil, err
	}
	publishedOnly := !models.HasAnyRole(actor.Roles, models.RoleAdmin, models.RoleModerator)
	return s.store.CommentsByArticle(ctx, articleID, publishedOnly)
}

// LeaveMark records a 0..10 rating once per user and article. The
// aggregate update rides in the store's mark transaction; the Redis
// ranking is refreshed afterwards.
func (s *ArticleService) LeaveMark(ctx context.Context, actor Identity, articleID uint, value int) (*models.Article, error) {
	if value < models.MarkMin || value > models.MarkMax {
		return nil, fmt.Errorf("mark value %d: %w", value, apperrors.ErrValidation)
	}
	article, err := s.store.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !workflow.CanInteract(actor.Roles, article) {
		return nil, fmt.Errorf("mark article %d: %w", articleID, apperrors.ErrUnauthorized)
	}
	marked, err := s.store.HasMark(ctx, articleID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if marked {
		return nil, fmt.Errorf("already marked article %d: %w", articleID, apperrors.ErrConflict)
	}
	mark := &models.Mark{ArticleID: articleID, UserID: actor.UserID, Value: value}
	if err := s.store.CreateMark(ctx, mark); err != nil {
		return nil, err
	}
	cacheMark(articleID, value)
	return s.store.ArticleByID(ctx, articleID)
}

// AttachTag appends an existing tag to a non-draft article.
func (s *ArticleService) AttachTag(ctx context.Context, actor Identity, articleID, tagID uint) (*models.Article, error) {
	article, err := s.store.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !workflow.CanInteract(actor.Roles, article) {
		return nil, fmt.Errorf("tag article %d: %w", articleID, apperrors.ErrUnauthorized)
	}
	if _, err := s.store.TagByID(ctx, tagID); err != nil {
		return nil, fmt.Errorf("tag %d: %w", tagID, err)
	}
	if article.HasTag(tagID) {
		return nil, fmt.Errorf("tag %d already attached: %w", tagID, apperrors.ErrConflict)
	}
	article.Tags = article.AddTag(tagID)
	if err := s.store.UpdateArticle(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) CreateTag(ctx context.Context, actor Identity, name string) (*models.Tag, error) {
	if models.IsBanned(actor.Roles) {
		return nil, fmt.Errorf("create tag: %w", apperrors.ErrUnauthorized)
	}
	name = strings.TrimSpace(name)
	if len(name) < models.TagNameMinLen {
		return nil, fmt.Errorf("tag name %q: %w", name, apperrors.ErrValidation)
	}
	tag := &models.Tag{Name: name}
	if err := s.store.CreateTag(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

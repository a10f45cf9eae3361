package services

import (
	"context"
	"errors"
	"testing"

	"articlehub/apperrors"
	"articlehub/models"
	"articlehub/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin     = Identity{UserID: 1, Roles: "ADMIN"}
	moderator = Identity{UserID: 2, Roles: "MODERATOR"}
	writer    = Identity{UserID: 3, Roles: "WRITER"}
	rival     = Identity{UserID: 4, Roles: "WRITER"}
	reader    = Identity{UserID: 5, Roles: "DEFAULT"}
	banned    = Identity{UserID: 6, Roles: "BANNED;WRITER"}
)

func newTestService() (*ArticleService, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	return NewArticleService(store), store
}

func seedArticle(t *testing.T, store *repository.MemoryStore, article models.Article) *models.Article {
	t.Helper()
	require.NoError(t, store.CreateArticle(context.Background(), &article))
	return &article
}

func TestCreateArticle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	article, err := svc.CreateArticle(ctx, writer, ArticleInput{Header: "On Go", Body: "text"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, article.Status)
	assert.Equal(t, "3", article.Authors)
	assert.Equal(t, uint(0), article.VoteCount)
	assert.Equal(t, 0, article.SumOfMarks)
	assert.Empty(t, article.Tags)

	_, err = svc.CreateArticle(ctx, reader, ArticleInput{Header: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.CreateArticle(ctx, banned, ArticleInput{Header: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestDefaultRoleIsReadOnly(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	article := seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusPublished, Header: "h"})

	_, err := svc.UpdateArticle(ctx, reader, article.ID, ArticleInput{Header: "x"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.ChangeStatus(ctx, reader, article.ID, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestWriterPublishesOwnDraftOnly(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	own := seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusDraft, Header: "mine"})
	foreign := seedArticle(t, store, models.Article{Authors: "4", Status: models.StatusDraft, Header: "theirs"})

	article, err := svc.ChangeStatus(ctx, writer, own.ID, models.StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, article.Status)

	_, err = svc.ChangeStatus(ctx, writer, foreign.ID, models.StatusPublished)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	// and no further than publishing
	_, err = svc.ChangeStatus(ctx, writer, own.ID, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestModeratorNeverTouchesDrafts(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	draft := seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusDraft})
	published := seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusPublished})

	_, err := svc.ChangeStatus(ctx, moderator, draft.ID, models.StatusPublished)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.ChangeStatus(ctx, moderator, published.ID, models.StatusDraft)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	// but moves freely among the reviewed states, including reverting
	article, err := svc.ChangeStatus(ctx, moderator, published.ID, models.StatusApproved)
	require.NoError(t, err)
	article, err = svc.ChangeStatus(ctx, moderator, article.ID, models.StatusPublished)
	require.NoError(t, err)
	article, err = svc.ChangeStatus(ctx, moderator, article.ID, models.StatusDeclined)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, article.Status)
}

func TestBannedOverridesEverything(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	article := seedArticle(t, store, models.Article{Authors: "6", Status: models.StatusPublished})

	_, err := svc.CreateArticle(ctx, banned, ArticleInput{Header: "h"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	_, err = svc.UpdateArticle(ctx, banned, article.ID, ArticleInput{Header: "h"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	_, err = svc.ChangeStatus(ctx, banned, article.ID, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	_, err = svc.LeaveComment(ctx, banned, article.ID, "hi")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	_, err = svc.LeaveMark(ctx, banned, article.ID, 5)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	err = svc.DeleteArticle(ctx, banned, article.ID)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestEditAddsCoAuthor(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	article := seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusPublished, Header: "old"})

	updated, err := svc.UpdateArticle(ctx, rival, article.ID, ArticleInput{Header: "new", Body: "body"})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Header)
	assert.Equal(t, "3;4", updated.Authors)
}

func TestWriterCannotEditForeignDraft(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	foreignDraft := seedArticle(t, store, models.Article{Authors: "4", Status: models.StatusDraft})

	_, err := svc.UpdateArticle(ctx, writer, foreignDraft.ID, ArticleInput{Header: "x"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestApprovedArticleIsFrozen(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	approved := seedArticle(t, store, models.Article{Authors: "1", Status: models.StatusApproved})

	_, err := svc.UpdateArticle(ctx, admin, approved.ID, ArticleInput{Header: "x"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestDuplicateMark(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	article := seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusApproved})

	marked, err := svc.LeaveMark(ctx, reader, article.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, uint(1), marked.VoteCount)
	assert.Equal(t, 8, marked.SumOfMarks)

	_, err = svc.LeaveMark(ctx, reader, article.ID, 3)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// the rejected call left the aggregates untouched
	after, err := svc.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), after.VoteCount)
	assert.Equal(t, 8, after.SumOfMarks)
}

func TestMarkValidation(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	article := seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusApproved})
	draft := seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusDraft})

	_, err := svc.LeaveMark(ctx, reader, article.ID, 11)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.LeaveMark(ctx, reader, article.ID, -1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.LeaveMark(ctx, reader, draft.ID, 5)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestListingDefaultsToApproved(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusDraft, Header: "draft"})
	seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusDeclined, Header: "declined"})
	seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusApproved, Header: "approved"})

	// no filter shows approved only, even to an admin
	for _, actor := range []Identity{reader, writer, admin} {
		list, err := svc.ListArticles(ctx, actor, SearchParams{})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "approved", list[0].Header)
	}
}

func TestStatusFilterNeedsModerationRole(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusDraft, Header: "draft"})

	_, err := svc.ListArticles(ctx, writer, SearchParams{Status: "DRAFT"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	list, err := svc.ListArticles(ctx, moderator, SearchParams{Status: "DRAFT"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListArticles(ctx, admin, SearchParams{Status: "BOGUS"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSearchByMarkFilter(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusApproved, Header: "low", SumOfMarks: 5})
	seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusApproved, Header: "high", SumOfMarks: 9})

	list, err := svc.ListArticles(ctx, reader, SearchParams{Marks: ">7"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "high", list[0].Header)

	list, err = svc.ListArticles(ctx, reader, SearchParams{Marks: "5"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "low", list[0].Header)

	list, err = svc.ListArticles(ctx, reader, SearchParams{Marks: "<6"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "low", list[0].Header)

	_, err = svc.ListArticles(ctx, reader, SearchParams{Marks: ">seven"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSearchBySubstring(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusApproved, Header: "Go generics", Body: "type parameters"})
	seedArticle(t, store, models.Article{Authors: "4", Status: models.StatusApproved, Header: "Rust traits", Body: "borrow checker"})

	list, err := svc.ListArticles(ctx, reader, SearchParams{Header: "generics"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Go generics", list[0].Header)

	list, err = svc.ListArticles(ctx, reader, SearchParams{Body: "borrow"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Rust traits", list[0].Header)

	list, err = svc.ListArticles(ctx, reader, SearchParams{Author: "4"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Rust traits", list[0].Header)
}

func TestDeleteRules(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	draft := seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusDraft})
	approved := seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusApproved})

	require.NoError(t, svc.DeleteArticle(ctx, writer, draft.ID))
	_, err := svc.GetArticle(ctx, draft.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// the author cannot delete once the article left draft
	err = svc.DeleteArticle(ctx, writer, approved.ID)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	require.NoError(t, svc.DeleteArticle(ctx, admin, approved.ID))
}

func TestComments(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	draft := seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusDraft})
	published := seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusPublished})

	_, err := svc.LeaveComment(ctx, reader, draft.ID, "first")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.LeaveComment(ctx, reader, published.ID, "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	comment, err := svc.LeaveComment(ctx, reader, published.ID, "nice read")
	require.NoError(t, err)
	assert.Equal(t, models.CommentPublished, comment.Status)

	// a declined comment stays visible to moderation roles only
	require.NoError(t, store.CreateComment(ctx, &models.Comment{
		ArticleID: published.ID, UserID: 9, Text: "spam", Status: models.CommentDeclined,
	}))

	visible, err := svc.GetComments(ctx, reader, published.ID)
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	all, err := svc.GetComments(ctx, moderator, published.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTags(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	published := seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusPublished})
	draft := seedArticle(t, store, models.Article{Authors: "3", Status: models.StatusDraft})

	_, err := svc.CreateTag(ctx, writer, "go")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	tag, err := svc.CreateTag(ctx, writer, "golang")
	require.NoError(t, err)

	_, err = svc.CreateTag(ctx, writer, "golang")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = svc.AttachTag(ctx, reader, published.ID, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	article, err := svc.AttachTag(ctx, reader, published.ID, tag.ID)
	require.NoError(t, err)
	assert.True(t, article.HasTag(tag.ID))

	_, err = svc.AttachTag(ctx, reader, published.ID, tag.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = svc.AttachTag(ctx, reader, draft.ID, tag.ID)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestErrorKindsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(apperrors.ErrConflict, apperrors.ErrUnauthorized))
	assert.False(t, errors.Is(apperrors.ErrNotFound, apperrors.ErrValidation))
}

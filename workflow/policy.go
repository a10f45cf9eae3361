// Package workflow holds the article lifecycle policy: which roles may
// perform which transition in which state. Every rule lives here, so
// the handlers never re-derive role precedence themselves.
package workflow

import "articlehub/models"

// CanCreate reports whether the actor may create a new draft.
func CanCreate(roles string) bool {
	if models.IsBanned(roles) {
		return false
	}
	return models.HasAnyRole(roles, models.RoleAdmin, models.RoleWriter)
}

// CanEdit reports whether the actor may replace an article's content.
// Approved articles are frozen; a writer without further privileges
// may not touch another writer's draft.
func CanEdit(roles string, article *models.Article, userID uint) bool {
	if models.IsBanned(roles) || models.HasRole(roles, models.RoleDefault) {
		return false
	}
	if article.Status == models.StatusApproved {
		return false
	}
	writerOnly := models.HasRole(roles, models.RoleWriter) &&
		!models.HasAnyRole(roles, models.RoleAdmin, models.RoleModerator)
	if writerOnly && article.Status == models.StatusDraft && !article.HasAuthor(userID) {
		return false
	}
	return true
}

// CanChangeStatus evaluates the status-transition rules in precedence
// order; the first matching rule wins.
//
//  1. Banned or Default actors are rejected outright.
//  2. A plain Writer may only submit their own draft for review.
//  3. A Moderator never moves an article into or out of Draft.
//  4. Anyone left (Admin included) may perform any transition.
func CanChangeStatus(roles string, article *models.Article, userID uint, target models.ArticleStatus) bool {
	if models.IsBanned(roles) || models.HasRole(roles, models.RoleDefault) {
		return false
	}
	current := article.Status
	escalated := models.HasAnyRole(roles, models.RoleAdmin, models.RoleModerator)
	if models.HasRole(roles, models.RoleWriter) && !escalated {
		return current == models.StatusDraft && target == models.StatusPublished &&
			article.HasAuthor(userID)
	}
	if models.HasRole(roles, models.RoleModerator) && !models.HasRole(roles, models.RoleAdmin) {
		return current != models.StatusDraft && target != models.StatusDraft
	}
	return true
}

// CanDelete reports whether the actor may remove the article: its own
// author while it is still a draft, or an admin at any point.
func CanDelete(roles string, article *models.Article, userID uint) bool {
	if models.IsBanned(roles) {
		return false
	}
	if models.HasRole(roles, models.RoleAdmin) {
		return true
	}
	return article.Status == models.StatusDraft && article.HasAuthor(userID)
}

// CanInteract gates commenting, marking and tagging: any role short of
// a ban qualifies, but never on a draft.
func CanInteract(roles string, article *models.Article) bool {
	if models.IsBanned(roles) {
		return false
	}
	return article.Status != models.StatusDraft
}

// CanFilterByStatus reports whether the actor may request an explicit
// status filter when listing. Everyone else only ever sees approved
// articles.
func CanFilterByStatus(roles string) bool {
	if models.IsBanned(roles) {
		return false
	}
	return models.HasAnyRole(roles, models.RoleAdmin, models.RoleModerator)
}

package services

import (
	"context"
	"fmt"
	"time"

	"articlehub/apperrors"
	"articlehub/models"
	"articlehub/repository"
	"articlehub/utils"
)

// AuthService registers and authenticates users and manages role
// grants. Tokens embed id, username and the encoded role set.
type AuthService struct {
	store  repository.Store
	secret string
	ttl    time.Duration
}

func NewAuthService(store repository.Store, secret string, ttl time.Duration) *AuthService {
	return &AuthService{store: store, secret: secret, ttl: ttl}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register creates a user with the DEFAULT role and returns a token.
// A taken username or email surfaces as Conflict via the store's
// uniqueness constraints.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (string, error) {
	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return "", err
	}
	user := &models.User{
		Email:    input.Email,
		Username: input.Username,
		Password: hash,
		Roles:    string(models.RoleDefault),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return "", fmt.Errorf("register %q: %w", input.Username, err)
	}
	return utils.GenerateJWT(user.ID, user.Username, user.Roles, s.secret, s.ttl)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("login: %w", apperrors.ErrUnauthorized)
	}
	if !utils.CheckPassword(password, user.Password) {
		return "", fmt.Errorf("login: %w", apperrors.ErrUnauthorized)
	}
	return utils.GenerateJWT(user.ID, user.Username, user.Roles, s.secret, s.ttl)
}

func (s *AuthService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.store.UserByID(ctx, id)
}

// ChangeRole grants or replaces roles on a user. Admin only. Banning
// always discards every other role held, whatever the replace flag
// says.
func (s *AuthService) ChangeRole(ctx context.Context, actor Identity, userID uint, role models.Role, replace bool) (*models.User, error) {
	if models.IsBanned(actor.Roles) || !models.HasRole(actor.Roles, models.RoleAdmin) {
		return nil, fmt.Errorf("change role: %w", apperrors.ErrUnauthorized)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("role %q: %w", role, apperrors.ErrValidation)
	}
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	switch {
	case role == models.RoleBanned:
		user.Roles = models.Ban(user.Roles)
	case replace:
		user.Roles = string(role)
	default:
		user.Roles = user.AddRole(role)
	}
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

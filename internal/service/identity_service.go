package service

import (
	"context"
	"fmt"

	"article-cms/internal/domain"
	"article-cms/internal/repository"
)

// IdentityService resolves authenticated subjects against the users table.
// Authentication itself happens upstream; by the time a request reaches
// this service its subject id is trusted.
type IdentityService struct {
	users repository.UserRepository
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(users repository.UserRepository) *IdentityService {
	return &IdentityService{users: users}
}

// Resolve returns the user record for a subject id. A subject without a
// record resolves to ErrNotFound: records are provisioned out of band,
// never created on first write.
func (s *IdentityService) Resolve(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %s: %w", userID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("resolve user %s: %w", userID, domain.ErrNotFound)
	}
	return user, nil
}

package service

import (
	"context"
	"time"

	"github.com/litvinov-da/library/data"
)

type tokens interface {
	CreateAuthenticationToken(ctx context.Context, email string, password string) (*data.Token, error)
	DeleteAuthenticationToken(ctx context.Context, userID int64) error
}

// CreateAuthenticationToken service creates a new authentication token valid for 24 hours.
func (s *service) CreateAuthenticationToken(ctx context.Context, email string, password string) (*data.Token, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	token, err := s.repo.CreateNewToken(ctx, user.ID, 24*time.Hour, data.ScopeAuthentication)
	if err != nil {
		return nil, err
	}
	return token, nil
}

// DeleteAuthenticationToken deletes all authentication tokens for a user.
func (s *service) DeleteAuthenticationToken(ctx context.Context, userID int64) error {
	return s.repo.DeleteAllTokensForUser(ctx, data.ScopeAuthentication, userID)
}

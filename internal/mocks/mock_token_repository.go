package mocks

import (
	"context"

	"github.com/mautops/next-better-auth/domain"
)

// MockTokenRepository implements domain.TokenRepository interface for testing
type MockTokenRepository struct {
	CreateFunc            func(ctx context.Context, token *domain.Token) error
	FindByIDFunc          func(ctx context.Context, id string) (*domain.Token, error)
	FindByAccessTokenFunc func(ctx context.Context, accessToken string) (*domain.Token, error)
	ListFunc              func(ctx context.Context, page, pageSize int) (*domain.Page[*domain.Token], error)
	UpdateFunc            func(ctx context.Context, id string, update *domain.TokenUpdate) (*domain.Token, error)
	DeleteFunc            func(ctx context.Context, id string) error
}

// NewMockTokenRepository creates a new MockTokenRepository with default behaviors
func NewMockTokenRepository() *MockTokenRepository {
	return &MockTokenRepository{}
}

// Create creates a new token
func (m *MockTokenRepository) Create(ctx context.Context, token *domain.Token) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

// FindByID finds a token by ID
func (m *MockTokenRepository) FindByID(ctx context.Context, id string) (*domain.Token, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrTokenNotFound
}

// FindByAccessToken finds a token by its secret
func (m *MockTokenRepository) FindByAccessToken(ctx context.Context, accessToken string) (*domain.Token, error) {
	if m.FindByAccessTokenFunc != nil {
		return m.FindByAccessTokenFunc(ctx, accessToken)
	}
	return nil, domain.ErrTokenNotFound
}

// List returns a page of tokens
func (m *MockTokenRepository) List(ctx context.Context, page, pageSize int) (*domain.Page[*domain.Token], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return &domain.Page[*domain.Token]{Page: page, PageSize: pageSize}, nil
}

// Update applies the mutable fields to a token
func (m *MockTokenRepository) Update(ctx context.Context, id string, update *domain.TokenUpdate) (*domain.Token, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, domain.ErrTokenNotFound
}

// Delete removes a token
func (m *MockTokenRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return domain.ErrTokenNotFound
}

package mocks

import (
	"context"

	"github.com/mautops/next-better-auth/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	FindByPhoneFunc func(ctx context.Context, phone, excludeID string) (*domain.User, error)
	UpdateFunc      func(ctx context.Context, user *domain.User) error
	ListFunc        func(ctx context.Context, page, pageSize int, search string) (*domain.Page[*domain.User], error)
	CountFunc       func(ctx context.Context) (int64, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

// FindByPhone finds a user owning the phone number, excluding excludeID
func (m *MockUserRepository) FindByPhone(ctx context.Context, phone, excludeID string) (*domain.User, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone, excludeID)
	}
	return nil, domain.ErrUserNotFound
}

// Update updates an existing user
func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

// List returns a page of users
func (m *MockUserRepository) List(ctx context.Context, page, pageSize int, search string) (*domain.Page[*domain.User], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize, search)
	}
	return &domain.Page[*domain.User]{Page: page, PageSize: pageSize}, nil
}

// Count returns the total user count
func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

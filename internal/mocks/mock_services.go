package mocks

import (
	"context"

	"github.com/mautops/next-better-auth/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	SignUpFunc  func(ctx context.Context, name, email, password string) (*domain.User, error)
	SignInFunc  func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	SignOutFunc func(ctx context.Context, sessionID string) error
}

func (m *MockAuthService) SignUp(ctx context.Context, name, email, password string) (*domain.User, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, name, email, password)
	}
	return nil, domain.ErrEmailTaken
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) SignOut(ctx context.Context, sessionID string) error {
	if m.SignOutFunc != nil {
		return m.SignOutFunc(ctx, sessionID)
	}
	return nil
}

// MockProfileService implements domain.ProfileService interface for testing
type MockProfileService struct {
	GetFunc    func(ctx context.Context, userID string) (*domain.User, error)
	UpdateFunc func(ctx context.Context, userID string, update *domain.ProfileUpdate) (*domain.User, error)
}

func (m *MockProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockProfileService) Update(ctx context.Context, userID string, update *domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, update)
	}
	return nil, domain.ErrUserNotFound
}

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	ListFunc   func(ctx context.Context, page, pageSize int) (*domain.Page[*domain.Token], error)
	CreateFunc func(ctx context.Context, create *domain.TokenCreate) (*domain.Token, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Token, error)
	UpdateFunc func(ctx context.Context, id string, update *domain.TokenUpdate) (*domain.Token, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockTokenService) List(ctx context.Context, page, pageSize int) (*domain.Page[*domain.Token], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return &domain.Page[*domain.Token]{Page: page, PageSize: pageSize}, nil
}

func (m *MockTokenService) Create(ctx context.Context, create *domain.TokenCreate) (*domain.Token, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, create)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockTokenService) Get(ctx context.Context, id string) (*domain.Token, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrTokenNotFound
}

func (m *MockTokenService) Update(ctx context.Context, id string, update *domain.TokenUpdate) (*domain.Token, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, domain.ErrTokenNotFound
}

func (m *MockTokenService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return domain.ErrTokenNotFound
}

// MockProjectService implements domain.ProjectService interface for testing
type MockProjectService struct {
	ListFunc   func(ctx context.Context, page, pageSize int) (*domain.Page[*domain.Project], error)
	TreeFunc   func(ctx context.Context) ([]*domain.ProjectNode, error)
	CreateFunc func(ctx context.Context, create *domain.ProjectCreate) (*domain.Project, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Project, error)
	UpdateFunc func(ctx context.Context, id string, update *domain.ProjectUpdate) (*domain.Project, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockProjectService) List(ctx context.Context, page, pageSize int) (*domain.Page[*domain.Project], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return &domain.Page[*domain.Project]{Page: page, PageSize: pageSize}, nil
}

func (m *MockProjectService) Tree(ctx context.Context) ([]*domain.ProjectNode, error) {
	if m.TreeFunc != nil {
		return m.TreeFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectService) Create(ctx context.Context, create *domain.ProjectCreate) (*domain.Project, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, create)
	}
	return nil, domain.ErrProjectNotFound
}

func (m *MockProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrProjectNotFound
}

func (m *MockProjectService) Update(ctx context.Context, id string, update *domain.ProjectUpdate) (*domain.Project, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, domain.ErrProjectNotFound
}

func (m *MockProjectService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return domain.ErrProjectNotFound
}

// MockUserService implements domain.UserService interface for testing
type MockUserService struct {
	ListFunc func(ctx context.Context, page, pageSize int, search string) (*domain.Page[*domain.User], error)
}

func (m *MockUserService) List(ctx context.Context, page, pageSize int, search string) (*domain.Page[*domain.User], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize, search)
	}
	return &domain.Page[*domain.User]{Page: page, PageSize: pageSize}, nil
}

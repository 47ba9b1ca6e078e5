package mocks

import (
	"context"

	"github.com/mautops/next-better-auth/domain"
)

// MockProjectRepository implements domain.ProjectRepository interface for testing
type MockProjectRepository struct {
	CreateFunc   func(ctx context.Context, project *domain.Project) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.Project, error)
	ListFunc     func(ctx context.Context, page, pageSize int) (*domain.Page[*domain.Project], error)
	ListAllFunc  func(ctx context.Context) ([]*domain.Project, error)
	UpdateFunc   func(ctx context.Context, project *domain.Project) error
	DeleteFunc   func(ctx context.Context, id string) error
}

// NewMockProjectRepository creates a new MockProjectRepository with default behaviors
func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{}
}

// Create creates a new project
func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

// FindByID finds a project by ID
func (m *MockProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrProjectNotFound
}

// List returns a page of projects
func (m *MockProjectRepository) List(ctx context.Context, page, pageSize int) (*domain.Page[*domain.Project], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return &domain.Page[*domain.Project]{Page: page, PageSize: pageSize}, nil
}

// ListAll returns every project
func (m *MockProjectRepository) ListAll(ctx context.Context) ([]*domain.Project, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

// Update updates an existing project
func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

// Delete removes a project
func (m *MockProjectRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return domain.ErrProjectNotFound
}

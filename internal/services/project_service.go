package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mautops/next-better-auth/domain"
)

// ProjectServiceImpl implements domain.ProjectService
type ProjectServiceImpl struct {
	projectRepo domain.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo domain.ProjectRepository) domain.ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

// List implements domain.ProjectService
func (s *ProjectServiceImpl) List(ctx context.Context, page, pageSize int) (*domain.Page[*domain.Project], error) {
	return s.projectRepo.List(ctx, page, pageSize)
}

// Tree implements domain.ProjectService. The whole hierarchy is loaded and
// assembled in memory; projects whose parent row is gone surface as roots
// rather than disappearing.
func (s *ProjectServiceImpl) Tree(ctx context.Context) ([]*domain.ProjectNode, error) {
	projects, err := s.projectRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*domain.ProjectNode, len(projects))
	for _, p := range projects {
		nodes[p.ID] = &domain.ProjectNode{Project: *p}
	}

	var roots []*domain.ProjectNode
	for _, p := range projects {
		node := nodes[p.ID]
		if p.ParentID != nil {
			if parent, ok := nodes[*p.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	return roots, nil
}

// Create implements domain.ProjectService
func (s *ProjectServiceImpl) Create(ctx context.Context, create *domain.ProjectCreate) (*domain.Project, error) {
	if errs := validateProjectCreate(create); len(errs) > 0 {
		return nil, errs
	}

	depth := 0
	if create.ParentID != nil {
		parent, err := s.projectRepo.FindByID(ctx, *create.ParentID)
		if err != nil {
			if errors.Is(err, domain.ErrProjectNotFound) {
				return nil, domain.ErrParentProjectMissing
			}
			return nil, fmt.Errorf("failed to check parent project: %w", err)
		}
		depth = parent.Depth + 1
	}

	status := domain.StatusEnabled
	if create.Status != nil {
		status = *create.Status
	}

	project := &domain.Project{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(create.Name),
		Code:     strings.TrimSpace(create.Code),
		ParentID: create.ParentID,
		Depth:    depth,
		Status:   status,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Get implements domain.ProjectService
func (s *ProjectServiceImpl) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.projectRepo.FindByID(ctx, id)
}

// Update implements domain.ProjectService. A parent change is validated
// against the ancestor chain so the hierarchy stays a tree.
func (s *ProjectServiceImpl) Update(ctx context.Context, id string, update *domain.ProjectUpdate) (*domain.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, domain.ValidationErrors{{Field: "name", Message: "name is required"}}
		}
		project.Name = name
	}
	if update.Code != nil {
		code := strings.TrimSpace(*update.Code)
		if code == "" {
			return nil, domain.ValidationErrors{{Field: "code", Message: "code is required"}}
		}
		project.Code = code
	}
	if update.Status != nil {
		project.Status = *update.Status
	}

	switch {
	case update.ClearParent:
		project.ParentID = nil
		project.Depth = 0
	case update.ParentID != nil:
		if *update.ParentID == id {
			return nil, domain.ErrProjectCycle
		}
		parent, err := s.projectRepo.FindByID(ctx, *update.ParentID)
		if err != nil {
			if errors.Is(err, domain.ErrProjectNotFound) {
				return nil, domain.ErrParentProjectMissing
			}
			return nil, fmt.Errorf("failed to check parent project: %w", err)
		}
		if err := s.checkNoCycle(ctx, id, parent); err != nil {
			return nil, err
		}
		project.ParentID = update.ParentID
		project.Depth = parent.Depth + 1
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Delete implements domain.ProjectService
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}

// checkNoCycle walks the ancestor chain of the candidate parent and fails
// when the project itself appears in it.
func (s *ProjectServiceImpl) checkNoCycle(ctx context.Context, projectID string, parent *domain.Project) error {
	seen := map[string]bool{}
	current := parent
	for {
		if current.ID == projectID {
			return domain.ErrProjectCycle
		}
		if current.ParentID == nil {
			return nil
		}
		if seen[current.ID] {
			// Pre-existing corruption; refuse to extend it.
			return domain.ErrProjectCycle
		}
		seen[current.ID] = true

		next, err := s.projectRepo.FindByID(ctx, *current.ParentID)
		if err != nil {
			if errors.Is(err, domain.ErrProjectNotFound) {
				return nil
			}
			return fmt.Errorf("failed to walk project ancestors: %w", err)
		}
		current = next
	}
}

func validateProjectCreate(create *domain.ProjectCreate) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(create.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(create.Code) == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "code is required"})
	}
	return errs
}

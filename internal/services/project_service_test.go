package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mautops/next-better-auth/domain"
	"github.com/mautops/next-better-auth/internal/mocks"
)

// projectRepoWith returns a mock backed by the given projects, keyed by id.
func projectRepoWith(projects ...*domain.Project) *mocks.MockProjectRepository {
	byID := map[string]*domain.Project{}
	for _, p := range projects {
		byID[p.ID] = p
	}

	repo := mocks.NewMockProjectRepository()
	repo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Project, error) {
		if p, ok := byID[id]; ok {
			cp := *p
			return &cp, nil
		}
		return nil, domain.ErrProjectNotFound
	}
	repo.ListAllFunc = func(ctx context.Context) ([]*domain.Project, error) {
		out := make([]*domain.Project, 0, len(projects))
		out = append(out, projects...)
		return out, nil
	}
	return repo
}

func TestProjectService_Create(t *testing.T) {
	root := &domain.Project{ID: "p1", Name: "Root", Code: "root", Depth: 0}
	repo := projectRepoWith(root)
	svc := NewProjectService(repo)
	ctx := context.Background()

	t.Run("root project gets depth 0", func(t *testing.T) {
		p, err := svc.Create(ctx, &domain.ProjectCreate{Name: "Top", Code: "top"})
		require.NoError(t, err)
		assert.Equal(t, 0, p.Depth)
		assert.Nil(t, p.ParentID)
		assert.Equal(t, domain.StatusEnabled, p.Status)
		assert.NotEmpty(t, p.ID)
	})

	t.Run("child depth derives from parent", func(t *testing.T) {
		parentID := "p1"
		p, err := svc.Create(ctx, &domain.ProjectCreate{Name: "Child", Code: "child", ParentID: &parentID})
		require.NoError(t, err)
		assert.Equal(t, 1, p.Depth)
	})

	t.Run("missing parent rejected", func(t *testing.T) {
		parentID := "ghost"
		_, err := svc.Create(ctx, &domain.ProjectCreate{Name: "Child", Code: "c2", ParentID: &parentID})
		assert.ErrorIs(t, err, domain.ErrParentProjectMissing)
	})

	t.Run("name and code required", func(t *testing.T) {
		_, err := svc.Create(ctx, &domain.ProjectCreate{Name: " ", Code: ""})
		issues, ok := domain.AsValidationErrors(err)
		require.True(t, ok)
		assert.Len(t, issues, 2)
	})
}

func TestProjectService_Update_CycleRejected(t *testing.T) {
	p1 := &domain.Project{ID: "p1", Name: "A", Code: "a"}
	p2ParentID := "p1"
	p2 := &domain.Project{ID: "p2", Name: "B", Code: "b", ParentID: &p2ParentID, Depth: 1}
	p3ParentID := "p2"
	p3 := &domain.Project{ID: "p3", Name: "C", Code: "c", ParentID: &p3ParentID, Depth: 2}

	svc := NewProjectService(projectRepoWith(p1, p2, p3))
	ctx := context.Background()

	t.Run("self parent", func(t *testing.T) {
		id := "p1"
		_, err := svc.Update(ctx, "p1", &domain.ProjectUpdate{ParentID: &id})
		assert.ErrorIs(t, err, domain.ErrProjectCycle)
	})

	t.Run("direct cycle", func(t *testing.T) {
		id := "p2"
		_, err := svc.Update(ctx, "p1", &domain.ProjectUpdate{ParentID: &id})
		assert.ErrorIs(t, err, domain.ErrProjectCycle)
	})

	t.Run("transitive cycle", func(t *testing.T) {
		id := "p3"
		_, err := svc.Update(ctx, "p1", &domain.ProjectUpdate{ParentID: &id})
		assert.ErrorIs(t, err, domain.ErrProjectCycle)
	})

	t.Run("legal reparent updates depth", func(t *testing.T) {
		id := "p2"
		p, err := svc.Update(ctx, "p3", &domain.ProjectUpdate{ParentID: &id})
		require.NoError(t, err)
		assert.Equal(t, 2, p.Depth)
	})

	t.Run("detach resets depth", func(t *testing.T) {
		p, err := svc.Update(ctx, "p3", &domain.ProjectUpdate{ClearParent: true})
		require.NoError(t, err)
		assert.Nil(t, p.ParentID)
		assert.Equal(t, 0, p.Depth)
	})
}

func TestProjectService_Tree(t *testing.T) {
	p1 := &domain.Project{ID: "p1", Name: "Root", Code: "root"}
	childParent := "p1"
	p2 := &domain.Project{ID: "p2", Name: "Child", Code: "child", ParentID: &childParent, Depth: 1}
	ghostParent := "ghost"
	orphan := &domain.Project{ID: "p3", Name: "Orphan", Code: "orphan", ParentID: &ghostParent}

	svc := NewProjectService(projectRepoWith(p1, p2, orphan))

	roots, err := svc.Tree(context.Background())
	require.NoError(t, err)

	// The orphan surfaces as a root rather than disappearing.
	require.Len(t, roots, 2)
	assert.Equal(t, "p1", roots[0].ID)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "p2", roots[0].Children[0].ID)
	assert.Equal(t, "p3", roots[1].ID)
}

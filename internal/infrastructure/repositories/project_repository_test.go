package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/mautops/next-better-auth/domain"
)

func TestProjectRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	root := &domain.Project{ID: "p1", Name: "Platform", Code: "plat", Status: domain.StatusEnabled}
	if err := repo.Create(ctx, root); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	child := &domain.Project{ID: "p2", Name: "Gateway", Code: "gw", ParentID: strPtr("p1"), Depth: 1, Status: domain.StatusEnabled}
	if err := repo.Create(ctx, child); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(ctx, "p2")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.ParentID == nil || *found.ParentID != "p1" || found.Depth != 1 {
		t.Errorf("unexpected project: %+v", found)
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("FindByID(missing) error = %v, want ErrProjectNotFound", err)
	}
}

func TestProjectRepositoryImpl_DuplicateCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Project{ID: "p1", Name: "One", Code: "same"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	err := repo.Create(ctx, &domain.Project{ID: "p2", Name: "Two", Code: "same"})
	if !errors.Is(err, domain.ErrProjectCodeTaken) {
		t.Errorf("Create() duplicate code error = %v, want ErrProjectCodeTaken", err)
	}
}

func TestProjectRepositoryImpl_UpdateDetachesParent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Project{ID: "p1", Name: "Root", Code: "root"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	child := &domain.Project{ID: "p2", Name: "Child", Code: "child", ParentID: strPtr("p1"), Depth: 1}
	if err := repo.Create(ctx, child); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	child.ParentID = nil
	child.Depth = 0
	if err := repo.Update(ctx, child); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := repo.FindByID(ctx, "p2")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.ParentID != nil || found.Depth != 0 {
		t.Errorf("parent not detached: %+v", found)
	}
}

func TestProjectRepositoryImpl_ListAllAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	for _, p := range []*domain.Project{
		{ID: "p1", Name: "A", Code: "a"},
		{ID: "p2", Name: "B", Code: "b"},
	} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	all, err := repo.ListAll(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("ListAll() = %d projects, %v; want 2", len(all), err)
	}

	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, "p1"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("Delete(gone) error = %v, want ErrProjectNotFound", err)
	}

	page, err := repo.List(ctx, 1, 10)
	if err != nil || page.Total != 1 {
		t.Errorf("List() total = %d, %v; want 1", page.Total, err)
	}
}

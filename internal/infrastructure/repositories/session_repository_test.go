package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/mautops/next-better-auth/domain"
)

func setupSessionRepo(t *testing.T) (domain.SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionRepository(client, time.Hour), mr
}

func TestSessionRepositoryImpl_CreateAndFind(t *testing.T) {
	repo, _ := setupSessionRepo(t)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "s1",
		UserID:    "u1",
		Role:      domain.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(ctx, "s1")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.UserID != "u1" || found.Role != domain.RoleAdmin {
		t.Errorf("unexpected session: %+v", found)
	}
}

func TestSessionRepositoryImpl_FindMissing(t *testing.T) {
	repo, _ := setupSessionRepo(t)

	_, err := repo.FindByID(context.Background(), "nope")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("FindByID(missing) error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionRepositoryImpl_ExpiredSessionIsRemoved(t *testing.T) {
	repo, mr := setupSessionRepo(t)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "s1",
		UserID:    "u1",
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := repo.FindByID(ctx, "s1"); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("FindByID(expired) error = %v, want ErrSessionExpired", err)
	}

	// The stale record is cleaned up on read.
	if mr.Exists("console:session:s1") {
		t.Error("expired session key still present in redis")
	}
}

func TestSessionRepositoryImpl_Delete(t *testing.T) {
	repo, _ := setupSessionRepo(t)
	ctx := context.Background()

	session := &domain.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.FindByID(ctx, "s1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("deleted session still found: %v", err)
	}
}

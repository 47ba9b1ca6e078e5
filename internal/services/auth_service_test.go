package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mautops/next-better-auth/domain"
	"github.com/mautops/next-better-auth/internal/mocks"
)

func TestAuthService_SignUp_FirstAccountIsAdmin(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	count := int64(0)
	userRepo.CountFunc = func(ctx context.Context) (int64, error) { return count, nil }

	svc := NewAuthService(userRepo, mocks.NewMockSessionRepository(), mocks.NewMockPasswordService(), time.Hour)
	ctx := context.Background()

	first, err := svc.SignUp(ctx, "Alice", "Alice@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, first.Role)
	assert.Equal(t, "alice@example.com", first.Email, "email must be normalized")
	assert.NotEmpty(t, first.ID)

	count = 1
	second, err := svc.SignUp(ctx, "Bob", "bob@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, second.Role)
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: "u1", Email: email}, nil
	}

	svc := NewAuthService(userRepo, mocks.NewMockSessionRepository(), mocks.NewMockPasswordService(), time.Hour)

	_, err := svc.SignUp(context.Background(), "Alice", "alice@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_SignIn(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		if email == "alice@example.com" {
			return &domain.User{
				ID:           "u1",
				Email:        email,
				PasswordHash: "hashed:secret123",
				Role:         domain.RoleAdmin,
			}, nil
		}
		return nil, domain.ErrUserNotFound
	}

	sessionRepo := mocks.NewMockSessionRepository()
	var createdSession *domain.Session
	sessionRepo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
		createdSession = session
		return nil
	}

	svc := NewAuthService(userRepo, sessionRepo, mocks.NewMockPasswordService(), time.Hour)
	ctx := context.Background()

	t.Run("success issues a session carrying the role", func(t *testing.T) {
		result, err := svc.SignIn(ctx, "alice@example.com", "secret123")
		require.NoError(t, err)
		require.NotNil(t, createdSession)
		assert.Equal(t, "u1", createdSession.UserID)
		assert.Equal(t, domain.RoleAdmin, createdSession.Role)
		assert.Equal(t, createdSession.ID, result.SessionID)
		assert.True(t, result.ExpiresAt.After(time.Now()))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.SignIn(ctx, "alice@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.SignIn(ctx, "ghost@example.com", "secret123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_SignOut(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepository()
	deleted := ""
	sessionRepo.DeleteFunc = func(ctx context.Context, sessionID string) error {
		deleted = sessionID
		return nil
	}

	svc := NewAuthService(mocks.NewMockUserRepository(), sessionRepo, mocks.NewMockPasswordService(), time.Hour)

	require.NoError(t, svc.SignOut(context.Background(), "s1"))
	assert.Equal(t, "s1", deleted)
}

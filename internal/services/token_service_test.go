package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mautops/next-better-auth/domain"
	"github.com/mautops/next-better-auth/internal/mocks"
)

func userRepoWithOwner(id string) *mocks.MockUserRepository {
	repo := mocks.NewMockUserRepository()
	repo.FindByIDFunc = func(ctx context.Context, userID string) (*domain.User, error) {
		if userID == id {
			return &domain.User{ID: id}, nil
		}
		return nil, domain.ErrUserNotFound
	}
	return repo
}

func TestTokenService_Create_GeneratesAccessToken(t *testing.T) {
	tokenRepo := mocks.NewMockTokenRepository()
	svc := NewTokenService(tokenRepo, userRepoWithOwner("u1"))
	ctx := context.Background()

	first, err := svc.Create(ctx, &domain.TokenCreate{UserID: "u1"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &domain.TokenCreate{UserID: "u1"})
	require.NoError(t, err)

	// Generated secrets are well-formed UUIDs and distinct across calls.
	_, err = uuid.Parse(first.AccessToken)
	assert.NoError(t, err)
	_, err = uuid.Parse(second.AccessToken)
	assert.NoError(t, err)
	assert.NotEqual(t, first.AccessToken, second.AccessToken)

	// Defaults: enabled, no window.
	assert.Equal(t, domain.StatusEnabled, first.Status)
	assert.Nil(t, first.StartTime)
	assert.Nil(t, first.EndTime)
	assert.NotEmpty(t, first.ID)
}

func TestTokenService_Create_OwnerMustExist(t *testing.T) {
	tokenRepo := mocks.NewMockTokenRepository()
	created := false
	tokenRepo.CreateFunc = func(ctx context.Context, token *domain.Token) error {
		created = true
		return nil
	}

	svc := NewTokenService(tokenRepo, userRepoWithOwner("u1"))

	_, err := svc.Create(context.Background(), &domain.TokenCreate{UserID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.False(t, created, "an orphan token must never be written")
}

func TestTokenService_Create_MissingUserID(t *testing.T) {
	svc := NewTokenService(mocks.NewMockTokenRepository(), mocks.NewMockUserRepository())

	_, err := svc.Create(context.Background(), &domain.TokenCreate{})
	issues, ok := domain.AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, "userId", issues[0].Field)
}

func TestTokenService_Create_SuppliedSecretConflict(t *testing.T) {
	tokenRepo := mocks.NewMockTokenRepository()
	tokenRepo.FindByAccessTokenFunc = func(ctx context.Context, accessToken string) (*domain.Token, error) {
		return &domain.Token{ID: "other", AccessToken: accessToken}, nil
	}

	svc := NewTokenService(tokenRepo, userRepoWithOwner("u1"))

	_, err := svc.Create(context.Background(), &domain.TokenCreate{
		UserID:      "u1",
		AccessToken: "already-there",
	})
	assert.ErrorIs(t, err, domain.ErrAccessTokenTaken)
}

func TestTokenService_Create_ExplicitDisabledStatus(t *testing.T) {
	svc := NewTokenService(mocks.NewMockTokenRepository(), userRepoWithOwner("u1"))

	status := domain.StatusDisabled
	token, err := svc.Create(context.Background(), &domain.TokenCreate{
		UserID: "u1",
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDisabled, token.Status)
}

func TestTokenService_Update_Missing(t *testing.T) {
	svc := NewTokenService(mocks.NewMockTokenRepository(), mocks.NewMockUserRepository())

	remark := "x"
	_, err := svc.Update(context.Background(), "missing", &domain.TokenUpdate{Remark: &remark})
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestTokenService_Delete_Missing(t *testing.T) {
	svc := NewTokenService(mocks.NewMockTokenRepository(), mocks.NewMockUserRepository())

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mautops/next-better-auth/domain"
)

// TokenServiceImpl implements domain.TokenService
type TokenServiceImpl struct {
	tokenRepo domain.TokenRepository
	userRepo  domain.UserRepository
}

// NewTokenService creates a new token service
func NewTokenService(tokenRepo domain.TokenRepository, userRepo domain.UserRepository) domain.TokenService {
	return &TokenServiceImpl{
		tokenRepo: tokenRepo,
		userRepo:  userRepo,
	}
}

// List implements domain.TokenService
func (s *TokenServiceImpl) List(ctx context.Context, page, pageSize int) (*domain.Page[*domain.Token], error) {
	return s.tokenRepo.List(ctx, page, pageSize)
}

// Create implements domain.TokenService. The owning user must exist so a
// token can never be orphaned at birth. A blank access token is generated
// as a random UUID; the id likewise.
func (s *TokenServiceImpl) Create(ctx context.Context, create *domain.TokenCreate) (*domain.Token, error) {
	if strings.TrimSpace(create.UserID) == "" {
		return nil, domain.ValidationErrors{{Field: "userId", Message: "userId is required"}}
	}

	if _, err := s.userRepo.FindByID(ctx, create.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to check token owner: %w", err)
	}

	accessToken := strings.TrimSpace(create.AccessToken)
	if accessToken == "" {
		accessToken = uuid.NewString()
	} else {
		// Pre-check is advisory only; the unique index has the final word.
		if _, err := s.tokenRepo.FindByAccessToken(ctx, accessToken); err == nil {
			return nil, domain.ErrAccessTokenTaken
		} else if !errors.Is(err, domain.ErrTokenNotFound) {
			return nil, fmt.Errorf("failed to check access token: %w", err)
		}
	}

	id := strings.TrimSpace(create.ID)
	if id == "" {
		id = uuid.NewString()
	}

	status := domain.StatusEnabled
	if create.Status != nil {
		status = *create.Status
	}

	token := &domain.Token{
		ID:          id,
		UserID:      create.UserID,
		AccessToken: accessToken,
		StartTime:   create.StartTime,
		EndTime:     create.EndTime,
		Remark:      create.Remark,
		Status:      status,
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	return token, nil
}

// Get implements domain.TokenService
func (s *TokenServiceImpl) Get(ctx context.Context, id string) (*domain.Token, error) {
	return s.tokenRepo.FindByID(ctx, id)
}

// Update implements domain.TokenService. Only the fields present in the
// update are merged; the store layer refuses to touch id, access_token and
// user_id.
func (s *TokenServiceImpl) Update(ctx context.Context, id string, update *domain.TokenUpdate) (*domain.Token, error) {
	if _, err := s.tokenRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.tokenRepo.Update(ctx, id, update)
}

// Delete implements domain.TokenService
func (s *TokenServiceImpl) Delete(ctx context.Context, id string) error {
	return s.tokenRepo.Delete(ctx, id)
}

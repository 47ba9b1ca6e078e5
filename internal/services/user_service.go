package services

import (
	"context"

	"github.com/mautops/next-better-auth/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo domain.UserRepository) domain.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// List implements domain.UserService
func (s *UserServiceImpl) List(ctx context.Context, page, pageSize int, search string) (*domain.Page[*domain.User], error) {
	return s.userRepo.List(ctx, page, pageSize, search)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mautops/next-better-auth/domain"
)

var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// ProfileServiceImpl implements domain.ProfileService. Every operation is
// filtered by the session's user id supplied by the guard; an id in the
// request body is never consulted.
type ProfileServiceImpl struct {
	userRepo        domain.UserRepository
	notificationSvc domain.NotificationService
	logger          *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo domain.UserRepository, notificationSvc domain.NotificationService, logger *zap.Logger) domain.ProfileService {
	return &ProfileServiceImpl{
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// Get implements domain.ProfileService
func (s *ProfileServiceImpl) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// Update implements domain.ProfileService. Validation runs before any
// store call so a rejected payload never leaves a partial write. The phone
// pre-check is advisory; the unique index catches the race and the
// repository reports it as the same conflict.
func (s *ProfileServiceImpl) Update(ctx context.Context, userID string, update *domain.ProfileUpdate) (*domain.User, error) {
	if errs := validateProfileUpdate(update); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	phone := normalizeOptional(update.Phone)
	if phone != nil {
		if _, err := s.userRepo.FindByPhone(ctx, *phone, userID); err == nil {
			return nil, domain.ErrPhoneTaken
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check phone: %w", err)
		}
	}

	previousPhone := user.Phone

	user.Name = strings.TrimSpace(update.Name)
	user.CnName = derefOrEmpty(normalizeOptional(update.CnName))
	user.Alas = derefOrEmpty(normalizeOptional(update.Alas))
	user.Phone = phone
	if update.Extra != nil {
		user.Extra = update.Extra
	} else {
		user.Extra = map[string]any{}
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if phone != nil && (previousPhone == nil || *previousPhone != *phone) {
		// Best effort: the profile update already succeeded.
		if err := s.notificationSvc.SendSMS(*phone, "Your console account is now linked to this phone number."); err != nil {
			s.logger.Warn("phone change notification failed",
				zap.String("user_id", userID),
				zap.Error(err))
		}
	}

	return user, nil
}

func validateProfileUpdate(update *domain.ProfileUpdate) domain.ValidationErrors {
	var errs domain.ValidationErrors

	name := strings.TrimSpace(update.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "name is required"})
	} else if len([]rune(name)) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "name must be at most 100 characters"})
	}

	if update.CnName != nil && len([]rune(strings.TrimSpace(*update.CnName))) > 100 {
		errs = append(errs, domain.FieldError{Field: "cn_name", Message: "cn_name must be at most 100 characters"})
	}
	if update.Alas != nil && len([]rune(strings.TrimSpace(*update.Alas))) > 100 {
		errs = append(errs, domain.FieldError{Field: "alas", Message: "alas must be at most 100 characters"})
	}

	if update.Phone != nil {
		phone := strings.TrimSpace(*update.Phone)
		if phone != "" && !phonePattern.MatchString(phone) {
			errs = append(errs, domain.FieldError{Field: "phone", Message: "invalid phone number"})
		}
	}

	return errs
}

// normalizeOptional trims the value and treats blank as absent.
func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func derefOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mautops/next-better-auth/domain"
	"github.com/mautops/next-better-auth/internal/http/middleware"
)

// ProfileHandlers handles the caller's own profile. Ownership is implicit:
// the target row is always the session's user id, never an id from the
// request body.
type ProfileHandlers struct {
	profileSvc domain.ProfileService
}

// NewProfileHandlers creates new profile handlers
func NewProfileHandlers(profileSvc domain.ProfileService) *ProfileHandlers {
	return &ProfileHandlers{profileSvc: profileSvc}
}

// UpdateProfileRequest represents a profile PATCH body. Field names follow
// the persisted columns.
type UpdateProfileRequest struct {
	Name   string         `json:"name"`
	CnName *string        `json:"cn_name"`
	Alas   *string        `json:"alas"`
	Phone  *string        `json:"phone"`
	Extra  map[string]any `json:"extra"`
}

// profileJSON is the full own-row shape, extra attributes included.
func profileJSON(u *domain.User) gin.H {
	return gin.H{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"emailVerified": u.EmailVerified,
		"image":         u.Image,
		"cn_name":       u.CnName,
		"alas":          u.Alas,
		"phone":         u.Phone,
		"extra":         u.Extra,
		"createdAt":     u.CreatedAt.Format(time.RFC3339),
		"updatedAt":     u.UpdatedAt.Format(time.RFC3339),
	}
}

// Get returns the caller's own user row
func (h *ProfileHandlers) Get(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.profileSvc.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profileJSON(user)})
}

// Update applies a partial profile update to the caller's own row
func (h *ProfileHandlers) Update(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	update := &domain.ProfileUpdate{
		Name:   req.Name,
		CnName: req.CnName,
		Alas:   req.Alas,
		Phone:  req.Phone,
		Extra:  req.Extra,
	}

	user, err := h.profileSvc.Update(c.Request.Context(), userID, update)
	if err != nil {
		if issues, ok := domain.AsValidationErrors(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": issues})
			return
		}
		switch {
		case errors.Is(err, domain.ErrPhoneTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Phone number already in use by another account"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    profileJSON(user),
	})
}

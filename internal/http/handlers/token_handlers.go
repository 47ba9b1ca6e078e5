package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mautops/next-better-auth/domain"
)

// TokenHandlers handles access credential HTTP requests
type TokenHandlers struct {
	tokenSvc domain.TokenService
}

// NewTokenHandlers creates new token handlers
func NewTokenHandlers(tokenSvc domain.TokenService) *TokenHandlers {
	return &TokenHandlers{tokenSvc: tokenSvc}
}

// CreateTokenRequest represents a token creation request. Window bounds
// are RFC3339 strings.
type CreateTokenRequest struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId" binding:"required"`
	AccessToken string  `json:"accessToken"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	Remark      string  `json:"remark"`
	Status      *int    `json:"status"`
}

// UpdateTokenRequest represents a token update request. The owning user
// and the secret cannot be changed once created, so they are not part of
// this shape. An empty-string window bound clears it.
type UpdateTokenRequest struct {
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	LastLoginAt *string `json:"lastLoginAt"`
	Remark      *string `json:"remark"`
	Status      *int    `json:"status"`
}

// List returns all tokens in creation order with derived validity badges
func (h *TokenHandlers) List(c *gin.Context) {
	page, pageSize := pagination(c)

	result, err := h.tokenSvc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list tokens")
		return
	}

	items := make([]gin.H, 0, len(result.Items))
	for _, t := range result.Items {
		items = append(items, tokenJSON(t))
	}

	respondOK(c, pageEnvelope(result, items))
}

// Create handles token creation
func (h *TokenHandlers) Create(c *gin.Context) {
	var req CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	create := &domain.TokenCreate{
		ID:          req.ID,
		UserID:      req.UserID,
		AccessToken: req.AccessToken,
		Remark:      req.Remark,
		Status:      req.Status,
	}

	var issues domain.ValidationErrors
	start, _, fieldErr := parseTimeField(req.StartTime, "startTime")
	if fieldErr != nil {
		issues = append(issues, *fieldErr)
	}
	end, _, fieldErr := parseTimeField(req.EndTime, "endTime")
	if fieldErr != nil {
		issues = append(issues, *fieldErr)
	}
	if len(issues) > 0 {
		respondError(c, http.StatusBadRequest, issues.Error())
		return
	}
	create.StartTime = start
	create.EndTime = end

	token, err := h.tokenSvc.Create(c.Request.Context(), create)
	if err != nil {
		if verrs, ok := domain.AsValidationErrors(err); ok {
			respondError(c, http.StatusBadRequest, verrs.Error())
			return
		}
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "Owning user does not exist")
		case errors.Is(err, domain.ErrAccessTokenTaken):
			respondError(c, http.StatusConflict, "Access token already exists")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create token")
		}
		return
	}

	respondCreated(c, tokenJSON(token))
}

// Get returns a single token by id
func (h *TokenHandlers) Get(c *gin.Context) {
	token, err := h.tokenSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			respondError(c, http.StatusNotFound, "Token not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to get token")
		return
	}

	respondOK(c, tokenJSON(token))
}

// Update merges the supplied mutable fields into a token
func (h *TokenHandlers) Update(c *gin.Context) {
	var req UpdateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	update := &domain.TokenUpdate{
		Remark: req.Remark,
		Status: req.Status,
	}

	var issues domain.ValidationErrors
	start, clearStart, fieldErr := parseTimeField(req.StartTime, "startTime")
	if fieldErr != nil {
		issues = append(issues, *fieldErr)
	}
	end, clearEnd, fieldErr := parseTimeField(req.EndTime, "endTime")
	if fieldErr != nil {
		issues = append(issues, *fieldErr)
	}
	lastLogin, _, fieldErr := parseTimeField(req.LastLoginAt, "lastLoginAt")
	if fieldErr != nil {
		issues = append(issues, *fieldErr)
	}
	if len(issues) > 0 {
		respondError(c, http.StatusBadRequest, issues.Error())
		return
	}
	update.StartTime = start
	update.ClearStartTime = clearStart
	update.EndTime = end
	update.ClearEndTime = clearEnd
	update.LastLoginAt = lastLogin

	token, err := h.tokenSvc.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			respondError(c, http.StatusNotFound, "Token not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update token")
		return
	}

	respondOK(c, tokenJSON(token))
}

// Delete removes a token permanently
func (h *TokenHandlers) Delete(c *gin.Context) {
	err := h.tokenSvc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			respondError(c, http.StatusNotFound, "Token not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete token")
		return
	}

	respondOK(c, nil)
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mautops/next-better-auth/domain"
	"github.com/mautops/next-better-auth/internal/http/middleware"
)

// AuthHandlers handles sign-up/sign-in/sign-out HTTP requests
type AuthHandlers struct {
	authSvc      domain.AuthService
	cookieName   string
	cookieSecure bool
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, cookieName string, cookieSecure bool) *AuthHandlers {
	return &AuthHandlers{
		authSvc:      authSvc,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// SignUpRequest represents a registration request
type SignUpRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// SignInRequest represents a sign-in request
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignUp handles account registration
func (h *AuthHandlers) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// SignIn handles credential sign-in and session issuance
func (h *AuthHandlers) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-in failed"})
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	c.SetCookie(h.cookieName, result.SessionID, maxAge, "/", "", h.cookieSecure, true)

	c.JSON(http.StatusOK, gin.H{
		"session_token": result.SessionID,
		"expires_at":    result.ExpiresAt.Format(time.RFC3339),
		"user": gin.H{
			"id":    result.User.ID,
			"name":  result.User.Name,
			"email": result.User.Email,
			"role":  result.User.Role,
		},
	})
}

// SignOut handles session revocation (requires authentication)
func (h *AuthHandlers) SignOut(c *gin.Context) {
	sessionID := c.GetString(middleware.CtxSessionID)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID not found"})
		return
	}

	if err := h.authSvc.SignOut(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-out failed"})
		return
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}

// Session returns the authenticated caller's session identity (requires
// authentication)
func (h *AuthHandlers) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id":    c.GetString(middleware.CtxUserID),
		"role":       c.GetString(middleware.CtxUserRole),
		"session_id": c.GetString(middleware.CtxSessionID),
	})
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mautops/next-better-auth/domain"
)

// Context keys populated by the session guard.
const (
	CtxUserID    = "user_id"
	CtxUserRole  = "user_role"
	CtxSessionID = "session_id"
)

// SessionMW is the access-control guard: it resolves the caller's session
// from the request and rejects anything unauthenticated before a handler
// or store is reached.
type SessionMW struct {
	sessionRepo domain.SessionRepository
	cookieName  string
}

// NewSessionMW creates new session middleware
func NewSessionMW(sessionRepo domain.SessionRepository, cookieName string) *SessionMW {
	return &SessionMW{
		sessionRepo: sessionRepo,
		cookieName:  cookieName,
	}
}

// Require returns the guard middleware function
func (mw *SessionMW) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := mw.sessionID(c)
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		session, err := mw.sessionRepo.FindByID(c.Request.Context(), sessionID)
		if err != nil || session == nil || session.UserID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalid or expired"})
			c.Abort()
			return
		}

		c.Set(CtxUserID, session.UserID)
		c.Set(CtxUserRole, session.Role)
		c.Set(CtxSessionID, session.ID)

		c.Next()
	}
}

// sessionID extracts the session id from the cookie or, for non-browser
// clients, from a Bearer authorization header.
func (mw *SessionMW) sessionID(c *gin.Context) string {
	if cookie, err := c.Cookie(mw.cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

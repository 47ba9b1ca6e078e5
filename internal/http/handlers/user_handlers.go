package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mautops/next-better-auth/domain"
)

// UserHandlers handles the admin user listing
type UserHandlers struct {
	userSvc domain.UserService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService) *UserHandlers {
	return &UserHandlers{userSvc: userSvc}
}

// List returns a page of users filtered by the optional search term
func (h *UserHandlers) List(c *gin.Context) {
	page, pageSize := pagination(c)
	search := c.Query("search")

	result, err := h.userSvc.List(c.Request.Context(), page, pageSize, search)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list users")
		return
	}

	items := make([]gin.H, 0, len(result.Items))
	for _, u := range result.Items {
		items = append(items, adminUserJSON(u))
	}

	respondOK(c, pageEnvelope(result, items))
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mautops/next-better-auth/domain"
)

// The console's client data layer consumes a `{code, message, data}`
// envelope with `{total, page, pageSize, data}` for paginated payloads.
// Profile endpoints keep their own flatter shape (see profile_handlers.go).

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"code": status, "message": message})
}

func pageEnvelope[T any](page *domain.Page[T], items any) gin.H {
	return gin.H{
		"total":    page.Total,
		"page":     page.Page,
		"pageSize": page.PageSize,
		"data":     items,
	}
}

// pagination reads page/pageSize query params with the client's defaults.
func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}
	return page, pageSize
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// tokenJSON shapes a token for the wire, including the derived validity
// badge. The badge is response shaping only and never persisted.
func tokenJSON(t *domain.Token) gin.H {
	return gin.H{
		"id":          t.ID,
		"userId":      t.UserID,
		"accessToken": t.AccessToken,
		"startTime":   formatTime(t.StartTime),
		"endTime":     formatTime(t.EndTime),
		"lastLoginAt": formatTime(t.LastLoginAt),
		"remark":      t.Remark,
		"status":      t.Status,
		"created":     t.Created.Format(time.RFC3339),
		"modified":    t.Modified.Format(time.RFC3339),
		"validity":    domain.EvaluateValidity(t, time.Now()),
	}
}

func projectJSON(p *domain.Project) gin.H {
	return gin.H{
		"id":       p.ID,
		"name":     p.Name,
		"code":     p.Code,
		"parentId": p.ParentID,
		"depth":    p.Depth,
		"status":   p.Status,
		"created":  p.Created.Format(time.RFC3339),
		"modified": p.Modified.Format(time.RFC3339),
	}
}

func projectNodeJSON(n *domain.ProjectNode) gin.H {
	children := make([]gin.H, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, projectNodeJSON(child))
	}
	out := projectJSON(&n.Project)
	out["children"] = children
	return out
}

// adminUserJSON shapes a user for the admin listing. The password hash
// never leaves the service.
func adminUserJSON(u *domain.User) gin.H {
	return gin.H{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"emailVerified": u.EmailVerified,
		"image":         u.Image,
		"cnName":        u.CnName,
		"alas":          u.Alas,
		"phone":         u.Phone,
		"extra":         u.Extra,
		"createdAt":     u.CreatedAt.Format(time.RFC3339),
		"updatedAt":     u.UpdatedAt.Format(time.RFC3339),
	}
}

// parseTimeField parses an optional RFC3339 field. A nil pointer means the
// field was not supplied; an empty string clears the value.
func parseTimeField(value *string, field string) (parsed *time.Time, clear bool, fieldErr *domain.FieldError) {
	if value == nil {
		return nil, false, nil
	}
	if *value == "" {
		return nil, true, nil
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, false, &domain.FieldError{Field: field, Message: "must be an RFC3339 timestamp"}
	}
	return &t, false, nil
}

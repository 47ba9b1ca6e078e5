package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mautops/next-better-auth/domain"
)

// ProjectHandlers handles project HTTP requests
type ProjectHandlers struct {
	projectSvc domain.ProjectService
}

// NewProjectHandlers creates new project handlers
func NewProjectHandlers(projectSvc domain.ProjectService) *ProjectHandlers {
	return &ProjectHandlers{projectSvc: projectSvc}
}

// CreateProjectRequest represents a project creation request
type CreateProjectRequest struct {
	Name     string  `json:"name" binding:"required"`
	Code     string  `json:"code" binding:"required"`
	ParentID *string `json:"parentId"`
	Status   *int    `json:"status"`
}

// UpdateProjectRequest represents a project update request. An empty
// parentId detaches the project from its parent.
type UpdateProjectRequest struct {
	Name     *string `json:"name"`
	Code     *string `json:"code"`
	ParentID *string `json:"parentId"`
	Status   *int    `json:"status"`
}

// List returns a page of projects
func (h *ProjectHandlers) List(c *gin.Context) {
	page, pageSize := pagination(c)

	result, err := h.projectSvc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list projects")
		return
	}

	items := make([]gin.H, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, projectJSON(p))
	}

	respondOK(c, pageEnvelope(result, items))
}

// Tree returns the full project hierarchy
func (h *ProjectHandlers) Tree(c *gin.Context) {
	roots, err := h.projectSvc.Tree(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to build project tree")
		return
	}

	out := make([]gin.H, 0, len(roots))
	for _, node := range roots {
		out = append(out, projectNodeJSON(node))
	}

	respondOK(c, out)
}

// Create handles project creation
func (h *ProjectHandlers) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.projectSvc.Create(c.Request.Context(), &domain.ProjectCreate{
		Name:     req.Name,
		Code:     req.Code,
		ParentID: req.ParentID,
		Status:   req.Status,
	})
	if err != nil {
		if verrs, ok := domain.AsValidationErrors(err); ok {
			respondError(c, http.StatusBadRequest, verrs.Error())
			return
		}
		switch {
		case errors.Is(err, domain.ErrParentProjectMissing):
			respondError(c, http.StatusBadRequest, "Parent project does not exist")
		case errors.Is(err, domain.ErrProjectCodeTaken):
			respondError(c, http.StatusConflict, "Project code already exists")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create project")
		}
		return
	}

	respondCreated(c, projectJSON(project))
}

// Get returns a single project by id
func (h *ProjectHandlers) Get(c *gin.Context) {
	project, err := h.projectSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "Project not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to get project")
		return
	}

	respondOK(c, projectJSON(project))
}

// Update merges the supplied fields into a project
func (h *ProjectHandlers) Update(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	update := &domain.ProjectUpdate{
		Name:   req.Name,
		Code:   req.Code,
		Status: req.Status,
	}
	if req.ParentID != nil {
		if *req.ParentID == "" {
			update.ClearParent = true
		} else {
			update.ParentID = req.ParentID
		}
	}

	project, err := h.projectSvc.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		if verrs, ok := domain.AsValidationErrors(err); ok {
			respondError(c, http.StatusBadRequest, verrs.Error())
			return
		}
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			respondError(c, http.StatusNotFound, "Project not found")
		case errors.Is(err, domain.ErrParentProjectMissing):
			respondError(c, http.StatusBadRequest, "Parent project does not exist")
		case errors.Is(err, domain.ErrProjectCycle):
			respondError(c, http.StatusBadRequest, "Parent assignment would create a cycle")
		case errors.Is(err, domain.ErrProjectCodeTaken):
			respondError(c, http.StatusConflict, "Project code already exists")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update project")
		}
		return
	}

	respondOK(c, projectJSON(project))
}

// Delete removes a project
func (h *ProjectHandlers) Delete(c *gin.Context) {
	err := h.projectSvc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "Project not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	respondOK(c, nil)
}

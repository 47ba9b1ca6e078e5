package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mautops/next-better-auth/domain"
	"github.com/mautops/next-better-auth/internal/mocks"
)

func setupProjectRouter(projectSvc domain.ProjectService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewProjectHandlers(projectSvc)

	router.GET("/api/projects", h.List)
	router.GET("/api/projects/tree", h.Tree)
	router.POST("/api/projects", h.Create)
	router.GET("/api/projects/:id", h.Get)
	router.PUT("/api/projects/:id", h.Update)
	router.DELETE("/api/projects/:id", h.Delete)

	return router
}

func TestProjectHandlers_Tree(t *testing.T) {
	parentID := "p1"
	projectSvc := &mocks.MockProjectService{
		TreeFunc: func(ctx context.Context) ([]*domain.ProjectNode, error) {
			return []*domain.ProjectNode{
				{
					Project: domain.Project{ID: "p1", Name: "Root", Code: "root"},
					Children: []*domain.ProjectNode{
						{Project: domain.Project{ID: "p2", Name: "Child", Code: "child", ParentID: &parentID, Depth: 1}},
					},
				},
			}, nil
		},
	}
	router := setupProjectRouter(projectSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/tree", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	roots := body["data"].([]any)
	require.Len(t, roots, 1)
	root := roots[0].(map[string]any)
	assert.Equal(t, "p1", root["id"])

	children := root["children"].([]any)
	require.Len(t, children, 1)
	child := children[0].(map[string]any)
	assert.Equal(t, "p2", child["id"])
	assert.EqualValues(t, 1, child["depth"])
	// Leaves still carry an empty children list for the client tree widget.
	assert.NotNil(t, child["children"])
}

func TestProjectHandlers_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		projectSvc := &mocks.MockProjectService{
			CreateFunc: func(ctx context.Context, create *domain.ProjectCreate) (*domain.Project, error) {
				return &domain.Project{ID: "p1", Name: create.Name, Code: create.Code, Status: domain.StatusEnabled}, nil
			},
		}
		router := setupProjectRouter(projectSvc)

		w := postJSON(router, "/api/projects", `{"name":"Platform","code":"platform"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "platform", body["data"].(map[string]any)["code"])
	})

	t.Run("missing code fails binding", func(t *testing.T) {
		router := setupProjectRouter(&mocks.MockProjectService{})

		w := postJSON(router, "/api/projects", `{"name":"Platform"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing parent maps to 400", func(t *testing.T) {
		projectSvc := &mocks.MockProjectService{
			CreateFunc: func(ctx context.Context, create *domain.ProjectCreate) (*domain.Project, error) {
				return nil, domain.ErrParentProjectMissing
			},
		}
		router := setupProjectRouter(projectSvc)

		w := postJSON(router, "/api/projects", `{"name":"Platform","code":"platform","parentId":"ghost"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate code maps to 409", func(t *testing.T) {
		projectSvc := &mocks.MockProjectService{
			CreateFunc: func(ctx context.Context, create *domain.ProjectCreate) (*domain.Project, error) {
				return nil, domain.ErrProjectCodeTaken
			},
		}
		router := setupProjectRouter(projectSvc)

		w := postJSON(router, "/api/projects", `{"name":"Platform","code":"platform"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestProjectHandlers_Update(t *testing.T) {
	putJSON := func(router *gin.Engine, path, payload string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, path, bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("empty parentId detaches", func(t *testing.T) {
		var gotUpdate *domain.ProjectUpdate
		projectSvc := &mocks.MockProjectService{
			UpdateFunc: func(ctx context.Context, id string, update *domain.ProjectUpdate) (*domain.Project, error) {
				gotUpdate = update
				return &domain.Project{ID: id, Name: "Platform", Code: "platform"}, nil
			},
		}
		router := setupProjectRouter(projectSvc)

		w := putJSON(router, "/api/projects/p2", `{"parentId":""}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotUpdate)
		assert.True(t, gotUpdate.ClearParent)
		assert.Nil(t, gotUpdate.ParentID)
	})

	t.Run("cycle maps to 400", func(t *testing.T) {
		projectSvc := &mocks.MockProjectService{
			UpdateFunc: func(ctx context.Context, id string, update *domain.ProjectUpdate) (*domain.Project, error) {
				return nil, domain.ErrProjectCycle
			},
		}
		router := setupProjectRouter(projectSvc)

		w := putJSON(router, "/api/projects/p1", `{"parentId":"p2"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing project maps to 404", func(t *testing.T) {
		router := setupProjectRouter(&mocks.MockProjectService{})

		w := putJSON(router, "/api/projects/ghost", `{"name":"Renamed"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProjectHandlers_Delete(t *testing.T) {
	t.Run("missing project maps to 404", func(t *testing.T) {
		router := setupProjectRouter(&mocks.MockProjectService{})

		req := httptest.NewRequest(http.MethodDelete, "/api/projects/ghost", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

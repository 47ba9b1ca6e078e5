package httpx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mautops/next-better-auth/internal/http/handlers"
	"github.com/mautops/next-better-auth/internal/http/middleware"
)

// BuildRouter wires every route behind its guards: the session middleware
// authenticates anything privileged, casbin gates the admin surfaces.
func BuildRouter(
	ah *handlers.AuthHandlers,
	ph *handlers.ProfileHandlers,
	th *handlers.TokenHandlers,
	pjh *handlers.ProjectHandlers,
	uh *handlers.UserHandlers,
	sessionMW *middleware.SessionMW,
	casbinMW *middleware.CasbinMW,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/sign-up", ah.SignUp)
	auth.POST("/sign-in", ah.SignIn)

	authed := r.Group("/auth").Use(sessionMW.Require())
	authed.POST("/sign-out", ah.SignOut)
	authed.GET("/session", ah.Session)

	profile := r.Group("/api/user").Use(sessionMW.Require())
	profile.GET("/profile", ph.Get)
	profile.PATCH("/profile", ph.Update)

	admin := r.Group("/api").Use(sessionMW.Require(), casbinMW.Enforce())
	admin.GET("/tokens", th.List)
	admin.POST("/tokens", th.Create)
	admin.GET("/tokens/:id", th.Get)
	admin.POST("/tokens/:id", th.Update)
	admin.DELETE("/tokens/:id", th.Delete)

	admin.GET("/projects", pjh.List)
	admin.GET("/projects/tree", pjh.Tree)
	admin.POST("/projects", pjh.Create)
	admin.GET("/projects/:id", pjh.Get)
	admin.PUT("/projects/:id", pjh.Update)
	admin.DELETE("/projects/:id", pjh.Delete)

	admin.GET("/users", uh.List)

	return r
}

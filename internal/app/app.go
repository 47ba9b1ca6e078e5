package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mautops/next-better-auth/internal/config"
	httpx "github.com/mautops/next-better-auth/internal/http"
	"github.com/mautops/next-better-auth/internal/http/handlers"
	"github.com/mautops/next-better-auth/internal/http/middleware"
)

// Run wires the container into a router and serves until the listener
// fails.
func Run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	ah := handlers.NewAuthHandlers(c.AuthSvc, cfg.CookieName, cfg.CookieSecure)
	ph := handlers.NewProfileHandlers(c.ProfileSvc)
	th := handlers.NewTokenHandlers(c.TokenSvc)
	pjh := handlers.NewProjectHandlers(c.ProjectSvc)
	uh := handlers.NewUserHandlers(c.UserSvc)

	sessionMW := middleware.NewSessionMW(c.SessionRepo, cfg.CookieName)
	casbinMW := middleware.NewCasbinMW(c.Casbin.E)

	r := httpx.BuildRouter(ah, ph, th, pjh, uh, sessionMW, casbinMW, logger)

	seedPolicies(c, logger)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role policy on first boot: admins own
// the whole admin API, plain users only their own profile and session.
func seedPolicies(c *Container, logger *zap.Logger) {
	policies, _ := c.Casbin.E.GetPolicy()
	if len(policies) > 0 {
		return
	}

	c.Casbin.E.AddPolicy("role_admin", "/api/tokens", "(GET|POST)")
	c.Casbin.E.AddPolicy("role_admin", "/api/tokens/:id", "(GET|POST|DELETE)")
	c.Casbin.E.AddPolicy("role_admin", "/api/projects", "(GET|POST)")
	c.Casbin.E.AddPolicy("role_admin", "/api/projects/tree", "GET")
	c.Casbin.E.AddPolicy("role_admin", "/api/projects/:id", "(GET|PUT|DELETE)")
	c.Casbin.E.AddPolicy("role_admin", "/api/users", "GET")
	if err := c.Casbin.E.SavePolicy(); err != nil {
		logger.Warn("failed to persist seeded policies", zap.Error(err))
		return
	}
	logger.Info("casbin: seeded default policies")
}

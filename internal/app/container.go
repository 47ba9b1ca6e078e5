package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mautops/next-better-auth/domain"
	"github.com/mautops/next-better-auth/internal/config"
	"github.com/mautops/next-better-auth/internal/infrastructure/auth"
	"github.com/mautops/next-better-auth/internal/infrastructure/database"
	"github.com/mautops/next-better-auth/internal/infrastructure/notifications"
	"github.com/mautops/next-better-auth/internal/infrastructure/repositories"
	"github.com/mautops/next-better-auth/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	// Repositories
	UserRepo    domain.UserRepository
	TokenRepo   domain.TokenRepository
	ProjectRepo domain.ProjectRepository
	SessionRepo domain.SessionRepository

	// Services
	PasswordSvc     domain.PasswordService
	NotificationSvc domain.NotificationService
	AuthSvc         domain.AuthService
	ProfileSvc      domain.ProfileService
	TokenSvc        domain.TokenService
	ProjectSvc      domain.ProjectService
	UserSvc         domain.UserService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	if err := c.initRedis(); err != nil {
		return nil, err
	}

	c.initRepositories()
	c.initServices()

	return c, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}

	c.DB = db
	c.Casbin = cas
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.TokenRepo = repositories.NewTokenRepository(c.DB)
	c.ProjectRepo = repositories.NewProjectRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient, c.Config.SessionTTL)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.NotificationSvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
		c.Logger,
	)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.SessionRepo, c.PasswordSvc, c.Config.SessionTTL)
	c.ProfileSvc = services.NewProfileService(c.UserRepo, c.NotificationSvc, c.Logger)
	c.TokenSvc = services.NewTokenService(c.TokenRepo, c.UserRepo)
	c.ProjectSvc = services.NewProjectService(c.ProjectRepo)
	c.UserSvc = services.NewUserService(c.UserRepo)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}

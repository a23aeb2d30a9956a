package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Jong-Youl/LINK/domain"
	"github.com/Jong-Youl/LINK/internal/config"
	"github.com/Jong-Youl/LINK/internal/infrastructure/auth"
	"github.com/Jong-Youl/LINK/internal/infrastructure/career"
	"github.com/Jong-Youl/LINK/internal/infrastructure/database"
	"github.com/Jong-Youl/LINK/internal/infrastructure/notifications"
	"github.com/Jong-Youl/LINK/internal/infrastructure/repositories"
	"github.com/Jong-Youl/LINK/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger zerolog.Logger

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo      domain.UserRepository
	TokenRepo     domain.RefreshTokenRepository
	TeamSkillRepo domain.TeamSkillRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	MailSvc     domain.MailService
	CareerSvc   domain.CareerVerifier
	VerifySvc   domain.VerificationService
	AccountSvc  domain.AccountService
	PolicySvc   domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, logger zerolog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return nil, err
	}
	c.DB = gdb

	c.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client

	c.UserRepo = repositories.NewUserRepository(gdb)
	c.TokenRepo = repositories.NewRefreshTokenRepository(c.RedisClient, cfg.RefreshTTL)
	c.TeamSkillRepo = repositories.NewTeamSkillRepository(gdb)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL)

	c.MailSvc, err = notifications.NewMailService(logger)
	if err != nil {
		return nil, err
	}

	c.CareerSvc = career.NewClient(cfg.CareerBaseURL, cfg.CareerAPIKey, cfg.CareerTimeout)

	c.VerifySvc = services.NewVerificationService(c.MailSvc, c.RedisClient, services.VerificationConfig{
		Length:       cfg.VerificationLength,
		TTL:          cfg.VerificationTTL,
		ConfirmTTL:   cfg.VerificationConfirmTTL,
		MaxAttempts:  cfg.VerificationMaxAttempts,
		ResendWindow: cfg.VerificationResendWindow,
	})

	c.AccountSvc = services.NewAccountService(
		c.UserRepo,
		c.TokenRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.VerifySvc,
		c.CareerSvc,
		cfg.AccessTTL,
		cfg.RefreshTTL,
		logger,
	)

	return c, nil
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

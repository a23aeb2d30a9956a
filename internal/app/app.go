package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/Jong-Youl/LINK/internal/config"
	httpx "github.com/Jong-Youl/LINK/internal/http"
	"github.com/Jong-Youl/LINK/internal/http/handlers"
	"github.com/Jong-Youl/LINK/internal/http/middleware"
	"github.com/Jong-Youl/LINK/internal/infrastructure/auth"
	"github.com/Jong-Youl/LINK/internal/services"
)

func Run(cfg *config.Config, logger zerolog.Logger) error {
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

	cas, err := auth.NewCasbinService(c.DB, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	c.PolicySvc = services.NewPolicyService(cas.E)

	ah := handlers.NewAccountHandlers(c.AccountSvc, cfg.RefreshTTL, logger)
	th := handlers.NewTeamSkillHandlers(c.TeamSkillRepo)
	ph := handlers.NewPolicyHandlers(c.PolicySvc)

	jwtMW := middleware.NewAuthMW(c.TokenSvc)
	casbinMW := middleware.NewCasbinMW(cas.E)
	verifyLimiter := middleware.NewRateLimiter(rate.Limit(1), 3)

	r := httpx.BuildRouter(ah, th, ph, jwtMW, casbinMW, verifyLimiter)

	if len(c.PolicySvc.GetPolicies()) == 0 {
		seed := [][3]string{
			{"role_admin", "/admin/*", "(GET|POST|PUT|DELETE)"},
			{"role_admin", "/api/teams/*", "(GET|POST|DELETE)"},
			{"role_user", "/api/users/me", "GET"},
			{"role_user", "/api/teams/*", "(GET|POST|DELETE)"},
		}
		for _, p := range seed {
			if err := c.PolicySvc.AddPolicy(p[0], p[1], p[2]); err != nil {
				return err
			}
		}
		logger.Info().Msg("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, r)
}

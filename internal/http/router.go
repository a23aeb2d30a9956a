package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Jong-Youl/LINK/internal/http/handlers"
	"github.com/Jong-Youl/LINK/internal/http/middleware"
)

func BuildRouter(
	ah *handlers.AccountHandlers,
	th *handlers.TeamSkillHandlers,
	ph *handlers.PolicyHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
	verifyLimiter *middleware.RateLimiter,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	users := r.Group("/api/users")
	users.POST("/signup", ah.Signup)
	users.POST("/login", ah.Login)
	users.POST("/refresh", ah.Refresh)
	users.POST("/logout", ah.Logout)
	// GET with a JSON body is unusual but preserved for client compatibility
	users.GET("/email", ah.FindEmail)
	users.POST("/email/verification", verifyLimiter.Limit(), ah.SendVerification)
	users.POST("/password/verification", ah.CompareVerification)
	users.POST("/password", ah.ResetPassword)
	users.POST("/career", ah.Career)

	authed := r.Group("/").Use(jwtmw.WithJWT(), cb.Enforce())
	authed.GET("/api/users/me", ah.Me)

	teams := r.Group("/api/teams").Use(jwtmw.WithJWT(), cb.Enforce())
	teams.POST("/:team_id/skills", th.Link)
	teams.GET("/:team_id/skills", th.List)
	teams.DELETE("/:team_id/skills/:skill_id", th.Unlink)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}

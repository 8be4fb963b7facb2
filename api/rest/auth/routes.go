package auth

import (
	"github.com/adonai-ai/server/adonai/profiles"
	"github.com/adonai-ai/server/internal/auth"
	"github.com/adonai-ai/server/internal/config"
	"github.com/gin-gonic/gin"
)

// registers auth routes. The profile routes require a verified user; when
// Supabase is unconfigured the required middleware answers 503 before the
// handlers run, so a nil repository is never dereferenced.
func RegisterRoutes(router *gin.RouterGroup, verifier *auth.Verifier, cfg *config.Config, profileRepo *profiles.Repository) {
	router.GET("/auth/config", ConfigHandler(cfg))

	profile := router.Group("/auth/profile")
	profile.Use(auth.RequiredMiddleware(verifier))
	{
		profile.GET("", ProfileHandler(profileRepo))
		profile.PUT("", UpdateProfileHandler(profileRepo))
	}
}

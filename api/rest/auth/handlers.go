package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/adonai-ai/server/adonai/profiles"
	"github.com/adonai-ai/server/internal/auth"
	"github.com/adonai-ai/server/internal/config"
	restErrors "github.com/adonai-ai/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// returns the public Supabase configuration for the frontend
func ConfigHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.SupabaseConfigured() {
			c.JSON(http.StatusOK, ConfigResponse{
				Configured: false,
				Message:    "Authentication is not configured. Running in anonymous-only mode.",
			})
			return
		}

		c.JSON(http.StatusOK, ConfigResponse{
			Configured:      true,
			SupabaseURL:     cfg.SupabaseURL,
			SupabaseAnonKey: cfg.SupabaseAnonKey,
		})
	}
}

// returns the authenticated user's profile
func ProfileHandler(profileRepo *profiles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			restErrors.Unauthorized(c, "")
			return
		}

		profile, err := profileRepo.Get(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, profiles.ErrProfileNotFound) {
				restErrors.NotFound(c, "profile")
				return
			}

			restErrors.InternalError(c, "failed to fetch profile", err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// updates the authenticated user's display name
func UpdateProfileHandler(profileRepo *profiles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			restErrors.Unauthorized(c, "")
			return
		}

		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			restErrors.BadRequest(c, "display name is required", err)
			return
		}

		displayName := strings.TrimSpace(req.DisplayName)
		if displayName == "" {
			restErrors.BadRequest(c, "display name is required", nil)
			return
		}

		if err := profileRepo.UpdateDisplayName(c.Request.Context(), userID, displayName); err != nil {
			if errors.Is(err, profiles.ErrProfileNotFound) {
				restErrors.NotFound(c, "profile")
				return
			}

			restErrors.InternalError(c, "failed to update profile", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
	}
}

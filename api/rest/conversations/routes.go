package conversations

import (
	"github.com/adonai-ai/server/adonai/conversations"
	"github.com/adonai-ai/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers conversation management routes; all require a verified user
func RegisterRoutes(router *gin.RouterGroup, verifier *auth.Verifier, convRepo *conversations.Repository) {
	group := router.Group("/conversations")
	group.Use(auth.RequiredMiddleware(verifier))
	{
		group.GET("", ListHandler(convRepo))
		group.GET("/:id", GetHandler(convRepo))
		group.PUT("/:id", UpdateHandler(convRepo))
		group.DELETE("/:id", DeleteHandler(convRepo))
	}
}

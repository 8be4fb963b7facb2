package chat

import (
	"github.com/adonai-ai/server/internal/auth"
	"github.com/adonai-ai/server/internal/llm"
	"github.com/adonai-ai/server/internal/quota"
	"github.com/gin-gonic/gin"
)

// registers the chat route: optional auth, then quota, then the handler
func RegisterRoutes(router *gin.RouterGroup, verifier *auth.Verifier, generator llm.Generator, store ConversationStore, quotaSvc *quota.Service) {
	router.POST("/chat", auth.OptionalMiddleware(verifier), quota.Middleware(quotaSvc), Handler(generator, store, quotaSvc))
}

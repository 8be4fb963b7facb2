package main

import (
	restAuth "github.com/adonai-ai/server/api/rest/auth"
	"github.com/adonai-ai/server/api/rest/chat"
	restConversations "github.com/adonai-ai/server/api/rest/conversations"
	"github.com/adonai-ai/server/api/rest/health"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	api := router.Group("/api")
	api.Use(BurstLimitMiddleware())

	{
		api.GET("/ping", health.PingHandler)

		// a nil repository must stay a nil interface, otherwise the chat
		// handler would see a non-nil store and try to persist
		var store chat.ConversationStore
		if server.convRepo != nil {
			store = server.convRepo
		}

		chat.RegisterRoutes(api, server.verifier, server.generator, store, server.quotaSvc)
		restAuth.RegisterRoutes(api, server.verifier, server.config, server.profileRepo)
		restConversations.RegisterRoutes(api, server.verifier, server.convRepo)
	}
}

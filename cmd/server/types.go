package main

import (
	"github.com/adonai-ai/server/adonai/conversations"
	"github.com/adonai-ai/server/adonai/profiles"
	"github.com/adonai-ai/server/adonai/usage"
	"github.com/adonai-ai/server/internal/auth"
	"github.com/adonai-ai/server/internal/config"
	"github.com/adonai-ai/server/internal/llm"
	"github.com/adonai-ai/server/internal/quota"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server.
// db and the repositories are nil when Supabase is not configured;
// the server then runs in anonymous-only mode.
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	verifier    *auth.Verifier
	profileRepo *profiles.Repository
	usageRepo   *usage.Repository
	convRepo    *conversations.Repository
	quotaSvc    *quota.Service
	generator   llm.Generator
	router      *gin.Engine
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/adonai-ai/server/adonai/conversations"
	"github.com/adonai-ai/server/adonai/profiles"
	"github.com/adonai-ai/server/adonai/usage"
	"github.com/adonai-ai/server/internal/auth"
	"github.com/adonai-ai/server/internal/config"
	"github.com/adonai-ai/server/internal/llm"
	"github.com/adonai-ai/server/internal/logger"
	"github.com/adonai-ai/server/internal/quota"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies.
// A missing or unreachable Supabase configuration does not fail startup:
// the server degrades to anonymous-only mode without persistence or
// quota accounting.
func NewServer(cfg *config.Config) (*Server, error) {
	server := &Server{
		config:    cfg,
		verifier:  auth.NewVerifier(cfg.SupabaseJWTSecret),
		generator: llm.NewOpenAIGenerator(llm.OpenAIConfig{APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel}),
	}

	if cfg.SupabaseConfigured() {
		db, err := newPool(cfg.SupabaseConnString)
		if err != nil {
			return nil, err
		}

		server.db = db
		server.profileRepo = profiles.NewRepository(db)
		server.usageRepo = usage.NewRepository(db)
		server.convRepo = conversations.NewRepository(db)
		server.quotaSvc = quota.NewService(server.profileRepo, server.usageRepo, quota.DefaultPolicy())
	} else {
		logger.Warn("supabase not configured, running in anonymous-only mode: no auth, no history, no quota accounting")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server.router = gin.Default()
	RegisterRoutes(server.router, server)

	return server, nil
}

// creates a pgx pool sized for the supabase free tier pooler.
// PgBouncer in transaction mode doesn't support prepared statements,
// so queries go over the simple protocol.
func newPool(connString string) (*pgxpool.Pool, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

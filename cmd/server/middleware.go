package main

import (
	"time"

	"github.com/adonai-ai/server/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// the frontend is served from arbitrary origins (local files, static
// hosts), so CORS stays open; auth is carried in the Authorization header
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}

// per-IP burst guard in front of the API. This is not the daily question
// quota; it only absorbs rapid-fire clients and scripted abuse.
func BurstLimitMiddleware() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted("60-M")
	if err != nil {
		logger.Fatal("invalid burst limit rate", "error", err)
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}

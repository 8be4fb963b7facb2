package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/adonai-ai/server/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// mints a Supabase-compatible access token for a test user so the API can
// be exercised with curl or the TUI without going through the real auth flow
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	jwtSecret := os.Getenv("SUPABASE_JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("SUPABASE_JWT_SECRET not set")
	}

	dbConnString := os.Getenv("SUPABASE_CONNECTION_STRING")
	if dbConnString == "" {
		log.Fatal("SUPABASE_CONNECTION_STRING not set")
	}

	dbPool, err := pgxpool.New(context.Background(), dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	// create or find the test profile
	testEmail := "test@adonai.app"
	var userID string

	err = dbPool.QueryRow(ctx, "SELECT id FROM profiles WHERE email = $1", testEmail).Scan(&userID)
	if err != nil {
		userID = uuid.New().String()
		_, err = dbPool.Exec(ctx, `
			INSERT INTO profiles (id, email, display_name, tier, daily_question_count, created_at)
			VALUES ($1, $2, $3, 'free', 0, NOW())
		`, userID, testEmail, "Test User")

		if err != nil {
			log.Fatalf("Failed to create test profile: %v", err)
		}
		fmt.Printf("✅ Created test profile: %s (ID: %s)\n", testEmail, userID)
	} else {
		fmt.Printf("✅ Using existing test profile (ID: %s)\n", userID)
	}

	claims := auth.Claims{
		Email: testEmail,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Printf("\n🔑 Test Access Token:\n%s\n\n", token)
	fmt.Printf("Export this token for testing:\nexport ADONAI_ACCESS_TOKEN=\"%s\"\n", token)
}

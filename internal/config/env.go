package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	openaiModel := os.Getenv("OPENAI_MODEL")
	if openaiModel == "" {
		openaiModel = "gpt-4o"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	// Supabase settings are optional: without them the server still runs,
	// but auth, quota accounting and conversation history are disabled.
	return &Config{
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseConnString: os.Getenv("SUPABASE_CONNECTION_STRING"),
		SupabaseJWTSecret:  os.Getenv("SUPABASE_JWT_SECRET"),
		OpenAIKey:          openaiKey,
		OpenAIModel:        openaiModel,
		Port:               port,
		Environment:        environment,
	}, nil
}

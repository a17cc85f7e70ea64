package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string
	UploadMaxSize  int64

	// Dictation scoring
	FuzzyThreshold float64

	// Optional LLM intent resolver (Groq, OpenAI-compatible API)
	GroqAPIKey string
	LLMModel   string

	// Session tokens for the chat API
	SessionSecret string

	// Progress report emails (disabled when SESFromEmail is empty)
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	ReportEmail  string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	if os.Getenv("SESSION_SECRET") == "" {
		log.Println("Warning: SESSION_SECRET not set, using an insecure development default")
	}

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./vocaquiz.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		UploadMaxSize:  5 * 1024 * 1024, // 5MB
		FuzzyThreshold: getEnvFloat("FUZZY_THRESHOLD", 0.75),
		GroqAPIKey:     getEnv("GROQ_API_KEY", ""),
		LLMModel:       getEnv("LLM_MODEL", "llama-3.1-8b-instant"),
		SessionSecret:  getEnv("SESSION_SECRET", "dev-insecure-session-secret"),
		AWSRegion:      getEnv("AWS_REGION", "eu-west-1"),
		SESFromEmail:   getEnv("SES_FROM_EMAIL", ""),
		SESFromName:    getEnv("SES_FROM_NAME", "VocaQuiz"),
		ReportEmail:    getEnv("REPORT_EMAIL", ""),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat reads a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Warning: invalid value for %s: %q, using default", key, value)
		return defaultValue
	}
	return f
}

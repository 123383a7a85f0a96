package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds everything both services read from the environment.
// Loaded once in main and passed down; nothing else reads os.Getenv.
type Config struct {
	GeminiAPIKey string
	MongoURI     string
	JWTSecret    string
	TokenTTL     time.Duration

	ResumeAddr string
	AuthAddr   string
	UploadDir  string

	ResumeDB string
	AuthDB   string
}

func Load() Config {
	cfg := Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		MongoURI:     os.Getenv("MONGO_URI"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		TokenTTL:     24 * time.Hour,
		ResumeAddr:   getenv("RESUME_ADDR", ":5003"),
		AuthAddr:     getenv("AUTH_ADDR", ":5004"),
		UploadDir:    getenv("UPLOAD_DIR", "uploads"),
		ResumeDB:     getenv("RESUME_DB", "geminiquestions"),
		AuthDB:       getenv("AUTH_DB", "auth_db"),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "default_secret_key"
		log.Println("Warning: JWT_SECRET environment variable is not set. Using default key.")
	}

	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			cfg.TokenTTL = time.Duration(hours) * time.Hour
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

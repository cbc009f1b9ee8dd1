package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process-wide settings, read once at startup and passed by
// injection. JWTSecret and GeminiAPIKey are mandatory: the process must not
// come up without them.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `env:"ADDR" envDefault:":5000"`

	// DBPath is the sqlite database file location.
	DBPath string `env:"DB_PATH" envDefault:"./summarizer.db"`

	// JWTSecret signs and verifies session tokens.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// GeminiAPIKey authenticates calls to the generative language API.
	GeminiAPIKey string `env:"GEMINI_API_KEY,required,notEmpty"`

	// GeminiModel selects the remote model used for summarization.
	GeminiModel string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
}

// Load reads an optional .env file and parses the environment into a Config.
// A missing required variable is returned as an error so main can abort.
func Load() (Config, error) {
	_ = godotenv.Load() // .env is optional, real env vars win

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

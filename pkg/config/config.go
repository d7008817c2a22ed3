package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string

	// Service account JSON wins over the file path when both are set.
	FirebaseCredentialsJSON string
	FirebaseCredentialsPath string

	// Catalog credentials follow the Twitch developer console naming.
	TwitchClientID     string
	TwitchClientSecret string

	AnthropicAPIKey string
	AnthropicModel  string

	AIRateLimitPerMinute int

	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		Environment:             getEnv("ENVIRONMENT", "development"),
		FirebaseProject:         getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		FirebaseCredentialsPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
		TwitchClientID:          getEnv("TWITCH_CLIENT_ID", ""),
		TwitchClientSecret:      getEnv("TWITCH_CLIENT_SECRET", ""),
		AnthropicAPIKey:         getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:          getEnv("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
		AIRateLimitPerMinute:    getEnvAsInt("AI_RATE_LIMIT_PER_MINUTE", 10),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		LogFormat:               getEnv("LOG_FORMAT", "json"),
	}

	return config, nil
}

// FirebaseEnabled reports whether admin routes and the game cache can be wired.
func (c *Config) FirebaseEnabled() bool {
	return c.FirebaseProject != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer string // Issuer claim stamped into every token (default: foodreview-api)

	PrivateKeyBase64 string // Optional: base64-encoded PEM RSA private key
	PrivateKeyFile   string // Optional: path to a PEM RSA private key file

	AccessTokenTTL  time.Duration // Access token lifetime (default: 15m)
	RefreshTokenTTL time.Duration // Refresh token lifetime (default: 168h)

	DatabaseFile string // Path to the SQLite database file (default: ./foodreview.db)
	UploadDir    string // Directory uploaded media is written to (default: ./uploads)

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	LogFile   string // Optional: rotated log file mirrored alongside stdout

	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Revoked-token sweep interval (default: 1h)
}

// LoadConfig reads configuration from the environment, layering a .env file
// underneath when one exists in the working directory.
func LoadConfig() Config {
	// Best effort; a missing .env is the normal case in production.
	_ = godotenv.Load()

	cfg := Config{
		Issuer:               getEnvOrDefault("ISSUER", "foodreview-api"),
		PrivateKeyBase64:     os.Getenv("PRIVATE_KEY_BASE64"),
		PrivateKeyFile:       os.Getenv("PRIVATE_KEY_FILE"),
		AccessTokenTTL:       getEnvDurationOrDefault("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL:      getEnvDurationOrDefault("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		DatabaseFile:         getEnvOrDefault("DATABASE_FILE", "foodreview.db"),
		UploadDir:            getEnvOrDefault("UPLOAD_DIR", "uploads"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		LogFile:              os.Getenv("LOG_FILE"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accept "15m" style durations, or bare integers meaning minutes.
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

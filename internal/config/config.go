package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// devJWTSecret is only accepted when gin runs in debug or test mode.
const devJWTSecret = "dev-insecure-secret-change-me"

var (
	errAPIURLNotSet    = errors.New("environment variable API_URL must be set")
	errJWTSecretNotSet = errors.New("environment variable JWT_SECRET must be set in release mode")
)

// Config holds the runtime configuration of the backend.
type Config struct {
	Port    string
	APIURL  *url.URL // Base URL of the API, used to build links in responses
	GinMode string

	// Database. If DBHost is set, PostgreSQL is used, otherwise SQLite at SQLitePath.
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string
	TokenTTL  time.Duration

	CORSAllowOrigins []string
	EnablePprof      bool
	UploadMaxBytes   int64
}

// UsePostgres reports if the PostgreSQL driver is configured.
func (c Config) UsePostgres() bool {
	return c.DBHost != ""
}

// PostgresDSN returns the connection string for PostgreSQL.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first, without overriding variables that are
// already set.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "release"),
		SQLitePath: getEnv("SQLITE_PATH", "data/gorm.db"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "tesoreria"),
		JWTSecret:  os.Getenv("JWT_SECRET"),

		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      os.Getenv("ENABLE_PPROF") == "true",
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return Config{}, errAPIURLNotSet
	}

	u, err := url.Parse(strings.TrimSuffix(apiURL, "/"))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}
	cfg.APIURL = u

	if cfg.JWTSecret == "" {
		if cfg.GinMode == "release" {
			return Config{}, errJWTSecretNotSet
		}
		cfg.JWTSecret = devJWTSecret
	}

	cfg.TokenTTL, err = getEnvDuration("TOKEN_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}

	cfg.UploadMaxBytes, err = getEnvInt64("UPLOAD_MAX_BYTES", 5<<20)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}

	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return i, nil
}

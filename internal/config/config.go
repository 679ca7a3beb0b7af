package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the development-only signing secret used when
// JWT_SECRET is not set.
const DefaultJWTSecret = "change-me"

const (
	// StoreMySQL selects the GORM/MySQL repositories.
	StoreMySQL = "mysql"
	// StoreMongo selects the MongoDB repositories.
	StoreMongo = "mongo"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Environment           string
	ServerPort            string
	StoreDriver           string
	MySQLDSN              string
	MongoURI              string
	MongoDatabase         string
	RedisAddr             string
	RedisDB               int
	RedisPass             string
	JWTSecret             string
	TokenTTL              time.Duration
	BcryptCost            int
	LoginMaxAttempts      int
	LoginLockout          time.Duration
	RequireVerifiedBroker bool
	LogLevel              string
	SwaggerHost           string
	ResetDB               bool
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment:           getEnv("APP_ENV", "development"),
		ServerPort:            getEnv("SERVER_PORT", "2000"),
		StoreDriver:           strings.ToLower(getEnv("STORE_DRIVER", StoreMySQL)),
		MySQLDSN:              getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/itda?charset=utf8mb4&parseTime=True&loc=Local"),
		MongoURI:              getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:         getEnv("MONGODB_DATABASE", "itda"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:               getEnvInt("REDIS_DB", 0),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		JWTSecret:             getEnv("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:              getEnvDuration("TOKEN_TTL", 7*24*time.Hour),
		BcryptCost:            getEnvInt("BCRYPT_COST", 10),
		LoginMaxAttempts:      getEnvInt("LOGIN_MAX_ATTEMPTS", 5),
		LoginLockout:          getEnvDuration("LOGIN_LOCKOUT", 15*time.Minute),
		RequireVerifiedBroker: getEnvBool("REQUIRE_VERIFIED_BROKER", false),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		SwaggerHost:           os.Getenv("SWAGGER_HOST"),
		ResetDB:               getEnvBool("RESET_DB", false),
	}
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// IsDevelopment reports whether the service runs with APP_ENV=development.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// UsesFallbackSecret reports whether tokens are signed with the built-in secret.
func (c *Config) UsesFallbackSecret() bool {
	return c.JWTSecret == "" || c.JWTSecret == DefaultJWTSecret
}

// Validate checks the settings that must never be defaulted silently.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMySQL, StoreMongo:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	if c.IsProduction() && c.UsesFallbackSecret() {
		return errors.New("JWT_SECRET must be set explicitly in production")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}

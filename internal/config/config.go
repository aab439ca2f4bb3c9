package config

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	JWT      JWTConfig
	Security SecurityConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type JWTConfig struct {
	SessionTokenDuration time.Duration
	Secret               []byte
	Issuer               string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// SeedConfig controls the demo accounts created at startup. The four fixed
// accounts are always seeded; ExtraAccounts adds randomly generated ones.
type SeedConfig struct {
	ExtraAccounts int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		JWT: JWTConfig{
			SessionTokenDuration: getDurationEnv("JWT_SESSION_TOKEN_DURATION", 24*time.Hour),
			Issuer:               getEnv("JWT_ISSUER", "demobank"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Seed: SeedConfig{
			ExtraAccounts: getIntEnv("SEED_EXTRA_ACCOUNTS", 0),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()
	config.JWT.Secret = config.loadJWTSecret()

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadJWTSecret loads the HMAC secret used to sign session tokens
// Priority order:
// 1. If JWT_SECRET is set, use it (works in all environments)
// 2. If production and the env var is missing, fail (production requires an explicit secret)
// 3. If development/testing, generate a random secret (dev convenience; tokens
//    do not survive a restart, which is fine for a session-lifetime ledger)
func (c *Config) loadJWTSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}

	if c.IsProduction() {
		log.Fatal("JWT_SECRET environment variable must be set in production environments")
	}

	log.Println("Development environment: generating random session token secret (set JWT_SECRET to persist tokens across restarts)")
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatal("Failed to generate session token secret:", err)
	}
	return []byte(base64.StdEncoding.EncodeToString(secret))
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}

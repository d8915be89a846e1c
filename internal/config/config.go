// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Signing  SigningConfig
	Cache    CacheConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type DatabaseConfig struct {
	URI      string
	Database string
}

type SigningConfig struct {
	// SecretKey is the application master secret used as the signing key.
	SecretKey string
	// Salt namespaces the signing key for URL protection tokens.
	Salt string
	// TokenLength is the length of the per-process random salt.
	TokenLength int
	// AllowExternal grants token-less requests to everyone.
	AllowExternal bool
	// AllowExternalForRegistered grants token-less requests to any
	// authenticated user.
	AllowExternalForRegistered bool
}

type CacheConfig struct {
	// Backend selects the render cache: "memory", "mongo" or "none".
	Backend string
	// TTLSeconds is the render cache entry lifetime; negative keeps entries
	// forever, zero disables storing.
	TTLSeconds int
	// MemoryCapacity bounds the in-process LRU backend.
	MemoryCapacity int
}

type AuthConfig struct {
	// JWTSecret verifies Bearer tokens for the optional request identity.
	// Defaults to the master secret.
	JWTSecret string
}

func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
			Host: getEnvOrDefault("HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URI:      os.Getenv("MONGODB_URI"),
			Database: getEnvOrDefault("MONGODB_DATABASE", "qrcode"),
		},
		Signing: SigningConfig{
			SecretKey:                  os.Getenv("SECRET_KEY"),
			Salt:                       getEnvOrDefault("QR_CODE_SIGNING_SALT", "qr_code_url_protection_salt"),
			TokenLength:                getEnvAsInt("QR_CODE_TOKEN_LENGTH", 20),
			AllowExternal:              getEnvAsBool("QR_CODE_ALLOWS_EXTERNAL_REQUESTS", false),
			AllowExternalForRegistered: getEnvAsBool("QR_CODE_ALLOWS_EXTERNAL_REQUESTS_FOR_REGISTERED_USER", false),
		},
		Cache: CacheConfig{
			Backend:        getEnvOrDefault("QR_CODE_CACHE_BACKEND", "memory"),
			TTLSeconds:     getEnvAsInt("QR_CODE_CACHE_TTL", 3600),
			MemoryCapacity: getEnvAsInt("QR_CODE_CACHE_CAPACITY", 1024),
		},
		Auth: AuthConfig{
			JWTSecret: getEnvOrDefault("JWT_SECRET", os.Getenv("SECRET_KEY")),
		},
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Signing.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	switch c.Cache.Backend {
	case "memory", "none":
	case "mongo":
		if c.Database.URI == "" {
			return fmt.Errorf("MONGODB_URI is required for the mongo cache backend")
		}
	default:
		return fmt.Errorf("unknown cache backend: %s", c.Cache.Backend)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

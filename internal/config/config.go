package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

// DefaultJWTSecret signs admin tokens when JWT_SECRET is unset. Only meant for
// local development.
const DefaultJWTSecret = "digitalmenu-dev-secret"

type Config struct {
	Port           string
	GinMode        string
	JWTSecret      string
	AccessTokenTTL time.Duration
	MongoURI       string
	DBName         string
	CORSOrigins    []string
	PublicDir      string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		GinMode:        getEnvOrDefault("GIN_MODE", "debug"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", DefaultJWTSecret),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 120, time.Minute),
		MongoURI:       getEnvOrDefault("MONGO_URI", ""),
		DBName:         getEnvOrDefault("DB_NAME", "digitalmenu"),
		PublicDir:      getEnvOrDefault("PUBLIC_DIR", "./public"),
		CORSOrigins:    getListEnv("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
	}
	if AppEnv.UsesDefaultJWTSecret() {
		log.Println("JWT_SECRET not set, signing admin tokens with the development default")
	}
}

func (c Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// PublishingEnabled reports whether a Mongo connection is configured for
// published menu snapshots.
func (c Config) PublishingEnabled() bool {
	return c.MongoURI != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getListEnv(key string, defaultValue []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Database settings are required; the admin-auth
// block is optional — when AdminKeyHash or JWTSecret is empty the layout
// mutation endpoints stay open.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DBUser       string // database username
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name
	CORSOrigins  string // comma-separated allowed origins, "*" by default
	AdminKeyHash string // bcrypt hash of the admin key (optional)
	JWTSecret    string // secret used to sign admin access tokens (optional)
	AccessTTLMin int    // admin access token time-to-live in minutes
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),
		Port:         must("APP_PORT"),
		DBUser:       must("DB_USER"),
		DBPass:       os.Getenv("DB_PASS"), // empty allowed
		DBHost:       must("DB_HOST"),
		DBPort:       must("DB_PORT"),
		DBName:       must("DB_NAME"),
		CORSOrigins:  getenv("CORS_ORIGINS", "*"),
		AdminKeyHash: os.Getenv("ADMIN_KEY_HASH"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AccessTTLMin: envIntDefault("ACCESS_TOKEN_TTL_MIN", 30),
	}
}

// AdminAuthEnabled reports whether the optional admin guard is fully
// configured. Both the key hash and the signing secret must be present.
func (c Config) AdminAuthEnabled() bool {
	return c.AdminKeyHash != "" && c.JWTSecret != ""
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}

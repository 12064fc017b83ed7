// internal/config/config.go
//
// Environment-driven configuration. A .env file in the working directory is
// loaded first when present; real environment variables win over it.
//
// Variables:
//   PORT              HTTP listen port (5175)
//   LOG_LEVEL         zerolog level name (info)
//   DB_PATH           SQLite file (./data/aoc.db); set but empty selects the in-memory store
//   JWT_SECRET        HS256 signing key
//   JWT_EXPIRES_DAYS  token lifetime in days (14)
//   COOKIE_NAME       auth cookie name (aoc_token)
//   CLIENT_ORIGIN     allowed CORS origin (http://localhost:5173)
//   DIGEST_SALT       HMAC key for input digests
//   NODE_ENV          "production" enables secure cookies and strict validation

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const devSecret = "dev_secret_change_me"

type Config struct {
	Port         string
	LogLevel     string
	DBPath       string
	JWTSecret    string
	JWTExpiry    time.Duration
	CookieName   string
	ClientOrigin string
	DigestSalt   string
	Env          string
}

// Load reads .env (or the given files) and the process environment.
// A missing default .env is not an error; missing explicit files are.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return Config{}, fmt.Errorf("config: load env files: %w", err)
	}

	days, err := strconv.Atoi(getEnv("JWT_EXPIRES_DAYS", "14"))
	if err != nil {
		return Config{}, fmt.Errorf("config: JWT_EXPIRES_DAYS: %w", err)
	}

	dbPath, ok := os.LookupEnv("DB_PATH")
	if !ok {
		dbPath = "./data/aoc.db"
	}

	return Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DBPath:       dbPath,
		JWTSecret:    getEnv("JWT_SECRET", devSecret),
		JWTExpiry:    time.Duration(days) * 24 * time.Hour,
		CookieName:   getEnv("COOKIE_NAME", "aoc_token"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		DigestSalt:   getEnv("DIGEST_SALT", "local_dev_salt"),
		Env:          getEnv("NODE_ENV", "development"),
	}, nil
}

// Production reports whether NODE_ENV is "production".
func (c Config) Production() bool { return c.Env == "production" }

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.JWTExpiry <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRES_DAYS must be positive"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is empty"))
	}
	if c.Production() && (c.JWTSecret == "" || c.JWTSecret == devSecret) {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

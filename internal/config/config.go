package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultSecret = "supersecretkey"

type Config struct {
	Port         string
	DBDSN        string
	LogFile      string
	JWTSecret    string
	TokenTTL     time.Duration
	BcryptCost   int
	CORSOrigins  string
	LoginRateMax int
	TemplatesDir string
	StaticDir    string
}

func Load() Config {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[warn] could not read .env: %v", err)
	}

	cfg := Config{
		Port:         env("PORT", "4000"),
		DBDSN:        env("DB_DSN", "meno.db"), // sqlite file in project root
		LogFile:      os.Getenv("LOG_FILE"),
		JWTSecret:    env("JWT_SECRET", defaultSecret),
		TokenTTL:     envDuration("TOKEN_TTL", time.Hour),
		BcryptCost:   envInt("BCRYPT_COST", 10),
		CORSOrigins:  env("CORS_ORIGINS", "*"),
		LoginRateMax: envInt("LOGIN_RATE_MAX", 10),
		TemplatesDir: env("TEMPLATES_DIR", "./web/templates"),
		StaticDir:    env("STATIC_DIR", "./web/static"),
	}
	if cfg.JWTSecret == defaultSecret {
		log.Printf("[warn] JWT_SECRET not set, using the built-in development secret")
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s TOKEN_TTL=%s BCRYPT_COST=%d",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.TokenTTL, cfg.BcryptCost)
	return cfg
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		log.Printf("[warn] invalid int for %s: %q, using %d", key, s, def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		log.Printf("[warn] invalid duration for %s: %q, using %s", key, s, def)
		return def
	}
	return d
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/matching"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	App      AppConfig
	Eval     EvalConfig
}

type ServerConfig struct {
	Port string
	// RateLimit is the number of comparison requests accepted per second.
	RateLimit float64
}

// DatabaseConfig is optional; an empty Host disables the summary history.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

func (d DatabaseConfig) Enabled() bool { return d.Host != "" }

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	RunTTL   time.Duration
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

type EvalConfig struct {
	Strategy    string
	GED         bool
	GEDMaxNodes int
	GEDTimeout  time.Duration
	Workers     int
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "8080"),
			RateLimit: getEnvAsFloat("API_RATE_LIMIT", 5),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "modeleval"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			RunTTL:   getEnvAsDuration("RUN_TTL", 24*time.Hour),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Eval: EvalConfig{
			Strategy:    getEnv("EVAL_STRATEGY", matching.DefaultStrategy),
			GED:         getEnvAsBool("EVAL_GED", false),
			GEDMaxNodes: getEnvAsInt("EVAL_GED_MAX_NODES", 12),
			GEDTimeout:  getEnvAsDuration("EVAL_GED_TIMEOUT", 5*time.Second),
			Workers:     getEnvAsInt("EVAL_WORKERS", 4),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("API_RATE_LIMIT must be positive")
	}

	if _, err := matching.Lookup(c.Eval.Strategy); err != nil {
		return fmt.Errorf("EVAL_STRATEGY: %w", err)
	}

	if c.Eval.GEDMaxNodes <= 0 {
		return fmt.Errorf("EVAL_GED_MAX_NODES must be positive")
	}

	if c.Eval.GEDTimeout <= 0 {
		return fmt.Errorf("EVAL_GED_TIMEOUT must be positive")
	}

	if c.Eval.Workers <= 0 {
		return fmt.Errorf("EVAL_WORKERS must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

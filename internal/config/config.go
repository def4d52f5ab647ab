package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	// LogDir, when set, also writes a session log file there
	LogDir string

	// Storage
	StorageDriver     string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	StoreMaxRetries   int

	// Identity
	JWTSecret string

	// Garden rules
	ActionCooldown       time.Duration
	DevMode              bool
	AchievementCountMode string

	// Catalog
	CatalogCacheTTL        time.Duration
	CatalogCacheSize       int
	SeedCatalog            bool
	AchievementsPath       string
	ChallengesPath         string
	CatalogRefreshInterval time.Duration // 0 disables the periodic re-seed

	// Throttling of mutating routes, per account
	RateLimitRPS   float64
	RateLimitBurst int
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		ServiceName: getEnv("SERVICE_NAME", "greenhouse"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		LogDir:      getEnv("LOG_DIR", ""),

		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverPostgres)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "greenhouse"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 20),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
		StoreMaxRetries:   getEnvAsInt("STORE_MAX_RETRIES", 3),

		JWTSecret: getEnv("JWT_SECRET", ""),

		ActionCooldown:       getEnvAsDuration("ACTION_COOLDOWN", time.Hour),
		DevMode:              getEnvAsBool("DEV_MODE", false),
		AchievementCountMode: strings.ToLower(getEnv("ACHIEVEMENT_COUNT_MODE", CountModeProxy)),

		CatalogCacheTTL:        getEnvAsDuration("CATALOG_CACHE_TTL", time.Minute),
		CatalogCacheSize:       getEnvAsInt("CATALOG_CACHE_SIZE", 256),
		SeedCatalog:            getEnvAsBool("SEED_CATALOG", false),
		AchievementsPath:       getEnv("ACHIEVEMENTS_CONFIG", ConfigPathAchievements),
		ChallengesPath:         getEnv("CHALLENGES_CONFIG", ConfigPathChallenges),
		CatalogRefreshInterval: getEnvAsDuration("CATALOG_REFRESH_INTERVAL", 15*time.Minute),

		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 10),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set for security")
	}

	return cfg, nil
}

// Validate checks values that can be parsed but make no sense
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	switch c.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (expected %s or %s)", c.StorageDriver, StorageDriverPostgres, StorageDriverMemory)
	}
	switch c.AchievementCountMode {
	case CountModeProxy, CountModeCounter:
	default:
		return fmt.Errorf("unknown ACHIEVEMENT_COUNT_MODE %q (expected %s or %s)", c.AchievementCountMode, CountModeProxy, CountModeCounter)
	}
	if c.StoreMaxRetries < 1 {
		return fmt.Errorf("STORE_MAX_RETRIES must be at least 1, got %d", c.StoreMaxRetries)
	}
	if c.ActionCooldown < 0 {
		return fmt.Errorf("ACTION_COOLDOWN must not be negative, got %s", c.ActionCooldown)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.CatalogCacheSize < 1 {
		return fmt.Errorf("CATALOG_CACHE_SIZE must be at least 1, got %d", c.CatalogCacheSize)
	}
	if c.CatalogRefreshInterval < 0 {
		return fmt.Errorf("CATALOG_REFRESH_INTERVAL must not be negative, got %s", c.CatalogRefreshInterval)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma-separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

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
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// AssetsDir holds one sub-directory of item records per category
	AssetsDir      string
	AssetServerURL string
	ItemSchemaPath string
	CacheSize      int
	CacheTTL       time.Duration

	// DBHost empty disables persistence
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBMaxConns    int
	DBMaxConnIdle time.Duration
	DBMaxConnLife time.Duration

	APIKey string // API key for admin routes

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string

	// SyncInterval of zero disables the scheduled database sync
	SyncInterval time.Duration
	WorkerCount  int
}

// Load loads the server configuration from environment variables. API_KEY
// must be set.
func Load() (*Config, error) {
	cfg, err := LoadTool()
	if err != nil {
		return nil, err
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// LoadTool loads the configuration for command line tools, which do not
// serve admin routes and so need no API key.
func LoadTool() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		ReadTimeout:  getEnvAsDuration(EnvReadTimeout, mustDuration(DefaultReadTimeout)),
		WriteTimeout: getEnvAsDuration(EnvWriteTimeout, mustDuration(DefaultWriteTimeout)),

		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		AssetsDir:      getEnv(EnvAssetsDir, DefaultAssetsDir),
		AssetServerURL: getEnv(EnvAssetServerURL, ""),
		ItemSchemaPath: getEnv(EnvItemSchemaPath, DefaultItemSchemaPath),
		CacheSize:      getEnvAsInt(EnvCacheSize, DefaultCacheSize),
		CacheTTL:       getEnvAsDuration(EnvCacheTTL, mustDuration(DefaultCacheTTL)),

		DBUser:        getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:    getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:        getEnv(EnvDBHost, ""),
		DBPort:        getEnv(EnvDBPort, DefaultDBPort),
		DBName:        getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:    getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdle: getEnvAsDuration(EnvDBMaxConnIdle, mustDuration(DefaultDBMaxConnIdle)),
		DBMaxConnLife: getEnvAsDuration(EnvDBMaxConnLife, mustDuration(DefaultDBMaxConnLife)),

		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),

		SyncInterval: getEnvAsDuration(EnvSyncInterval, mustDuration(DefaultSyncInterval)),
		WorkerCount:  getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.CacheSize < 1 {
		return nil, fmt.Errorf("invalid CACHE_SIZE value: %d, must be positive", cfg.CacheSize)
	}

	return cfg, nil
}

// PersistenceEnabled reports whether a database is configured.
func (c *Config) PersistenceEnabled() bool {
	return c.DBHost != ""
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

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the integer value of key, or defaultValue when unset or unparsable
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration returns the duration value of key, or defaultValue when unset or unparsable
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma-separated variable, dropping blank entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return d
}

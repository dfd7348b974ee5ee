package config

// Defaults applied when the matching environment variable is unset
const (
	DefaultPort           = 8080
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultServiceName    = "itemforge"
	DefaultVersion        = "dev"
	DefaultAssetsDir      = "assets/items"
	DefaultItemSchemaPath = "configs/schemas/item.schema.json"
	DefaultCacheSize      = 16
	DefaultCacheTTL       = "5m"
	DefaultDBUser         = "postgres"
	DefaultDBPassword     = "postgres"
	DefaultDBPort         = "5432"
	DefaultDBName         = "itemforge"
	DefaultDBMaxConns     = 10
	DefaultDBMaxConnIdle  = "5m"
	DefaultDBMaxConnLife  = "1h"
	DefaultReadTimeout    = "10s"
	DefaultWriteTimeout   = "15s"
	DefaultSyncInterval   = "0s"
	DefaultWorkerCount    = 2
)

// Environment variable names
const (
	EnvPort           = "PORT"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvEnvironment    = "ENVIRONMENT"
	EnvServiceName    = "SERVICE_NAME"
	EnvVersion        = "VERSION"
	EnvAssetsDir      = "ASSETS_DIR"
	EnvAssetServerURL = "ASSET_SERVER_URL"
	EnvItemSchemaPath = "ITEM_SCHEMA_PATH"
	EnvCacheSize      = "CACHE_SIZE"
	EnvCacheTTL       = "CACHE_TTL"
	EnvDBUser         = "DB_USER"
	EnvDBPassword     = "DB_PASSWORD"
	EnvDBHost         = "DB_HOST"
	EnvDBPort         = "DB_PORT"
	EnvDBName         = "DB_NAME"
	EnvDBMaxConns     = "DB_MAX_CONNS"
	EnvDBMaxConnIdle  = "DB_MAX_CONN_IDLE"
	EnvDBMaxConnLife  = "DB_MAX_CONN_LIFETIME"
	EnvAPIKey         = "API_KEY"
	EnvSchemaVersion  = "ENV_SCHEMA_VERSION"
	EnvReadTimeout    = "HTTP_READ_TIMEOUT"
	EnvWriteTimeout   = "HTTP_WRITE_TIMEOUT"
	EnvTrustedProxies = "TRUSTED_PROXIES"
	EnvSyncInterval   = "SYNC_INTERVAL"
	EnvWorkerCount    = "WORKER_COUNT"
)

// Insecure example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

package config

import (
	"flag"
	"os"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Source    SourceConfig
	Cache     CacheConfig
	Export    ExportConfig
	Images    ImagesConfig
	Logging   LoggingConfig
	Artifacts ArtifactsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	HTTPAddr string
}

// SourceConfig selects where raw vehicle records are loaded from
type SourceConfig struct {
	// Kind is "file", "http", or "postgres"
	Kind string
	Path string
	URL  string
	DSN  string
	// Table is the postgres table holding raw JSON payloads
	Table string
}

// CacheConfig holds image cache configuration
type CacheConfig struct {
	Backend   string // "memory" or "redis"
	TTL       time.Duration
	RedisAddr string
}

// ExportConfig holds export generation settings
type ExportConfig struct {
	// Brand is the filename prefix on every export artifact
	Brand string
}

// ImagesConfig holds image resolver settings
type ImagesConfig struct {
	FetchTimeout time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// ArtifactsConfig selects where finished exports are persisted
type ArtifactsConfig struct {
	// Backend is "none", "local", or "s3"
	Backend    string
	LocalDir   string
	S3Region   string
	S3Bucket   string
	S3Prefix   string
	S3Endpoint string
}

// Load parses flags and environment variables to build configuration
func Load() *Config {
	cfg := &Config{}

	httpAddr := flag.String("http", ":8080", "HTTP server address")
	sourceKind := flag.String("source", "file", "Raw record source: file, http, or postgres")
	sourcePath := flag.String("source-path", "records.json", "Path to the raw records JSON file")
	sourceURL := flag.String("source-url", "", "URL of the raw records endpoint")
	sourceDSN := flag.String("source-dsn", "", "Postgres connection string for the raw records table")
	sourceTable := flag.String("source-table", "vehicle_records", "Postgres table holding raw record payloads")
	cacheBackend := flag.String("cache-backend", "memory", "Image cache backend: memory or redis")
	cacheTTL := flag.Duration("cache-ttl", 30*time.Minute, "Image cache TTL")
	redisAddr := flag.String("redis-addr", "localhost:6379", "Redis server address")
	brand := flag.String("brand", "VEICULOS", "Filename prefix for export artifacts")
	imageTimeout := flag.Duration("image-timeout", 30*time.Second, "Per-request image fetch timeout")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	artifactsBackend := flag.String("artifacts", "none", "Artifact store: none, local, or s3")
	artifactsDir := flag.String("artifacts-dir", "exports", "Directory for locally stored artifacts")

	flag.Parse()

	applyEnvOverrides(httpAddr, sourceKind, sourcePath, sourceURL, sourceDSN, sourceTable,
		cacheBackend, cacheTTL, redisAddr, brand, imageTimeout, logLevel, artifactsBackend, artifactsDir)

	cfg.Server = ServerConfig{HTTPAddr: *httpAddr}

	cfg.Source = SourceConfig{
		Kind:  *sourceKind,
		Path:  *sourcePath,
		URL:   *sourceURL,
		DSN:   *sourceDSN,
		Table: *sourceTable,
	}

	cfg.Cache = CacheConfig{
		Backend:   *cacheBackend,
		TTL:       *cacheTTL,
		RedisAddr: *redisAddr,
	}

	cfg.Export = ExportConfig{Brand: *brand}
	cfg.Images = ImagesConfig{FetchTimeout: *imageTimeout}
	cfg.Logging = LoggingConfig{Level: *logLevel}

	cfg.Artifacts = ArtifactsConfig{
		Backend:    *artifactsBackend,
		LocalDir:   *artifactsDir,
		S3Region:   getEnvOrDefault("ARTIFACTS_S3_REGION", "us-east-1"),
		S3Bucket:   os.Getenv("ARTIFACTS_S3_BUCKET"),
		S3Prefix:   getEnvOrDefault("ARTIFACTS_S3_PREFIX", "exports/"),
		S3Endpoint: os.Getenv("ARTIFACTS_S3_ENDPOINT"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func applyEnvOverrides(
	httpAddr *string,
	sourceKind *string,
	sourcePath *string,
	sourceURL *string,
	sourceDSN *string,
	sourceTable *string,
	cacheBackend *string,
	cacheTTL *time.Duration,
	redisAddr *string,
	brand *string,
	imageTimeout *time.Duration,
	logLevel *string,
	artifactsBackend *string,
	artifactsDir *string,
) {
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		*httpAddr = v
	}
	if v := os.Getenv("SOURCE_KIND"); v != "" {
		*sourceKind = v
	}
	if v := os.Getenv("SOURCE_PATH"); v != "" {
		*sourcePath = v
	}
	if v := os.Getenv("SOURCE_URL"); v != "" {
		*sourceURL = v
	}
	if v := os.Getenv("SOURCE_DSN"); v != "" {
		*sourceDSN = v
	}
	if v := os.Getenv("SOURCE_TABLE"); v != "" {
		*sourceTable = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		*cacheBackend = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*cacheTTL = d
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		*redisAddr = v
	}
	if v := os.Getenv("EXPORT_BRAND"); v != "" {
		*brand = v
	}
	if v := os.Getenv("IMAGE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*imageTimeout = d
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		*logLevel = v
	}
	if v := os.Getenv("ARTIFACTS_BACKEND"); v != "" {
		*artifactsBackend = v
	}
	if v := os.Getenv("ARTIFACTS_DIR"); v != "" {
		*artifactsDir = v
	}
}

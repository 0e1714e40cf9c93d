package config

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Session   SessionConfig   `yaml:"session"`
	Storage   StorageConfig   `yaml:"storage"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings. AllowedOriginPattern is an optional
// regular expression matched against the whole Origin header, in addition
// to the explicit list.
type CORSConfig struct {
	AllowedOrigins       string `yaml:"allowed_origins"        env:"CORS_ALLOWED_ORIGINS"        env-default:"http://localhost:5173,http://localhost:3000,https://dabia-frontend.vercel.app"`
	AllowedOriginPattern string `yaml:"allowed_origin_pattern" env:"CORS_ALLOWED_ORIGIN_PATTERN"`
	AllowedMethods       string `yaml:"allowed_methods"        env:"CORS_ALLOWED_METHODS"        env-default:"GET,POST,OPTIONS"`
	AllowedHeaders       string `yaml:"allowed_headers"        env:"CORS_ALLOWED_HEADERS"        env-default:"Content-Type,X-Request-Id"`
	AllowCredentials     bool   `yaml:"allow_credentials"      env:"CORS_ALLOW_CREDENTIALS"      env-default:"true"`
	MaxAge               int    `yaml:"max_age"                env:"CORS_MAX_AGE"                env-default:"86400"`

	// OriginPattern is compiled from AllowedOriginPattern during validation.
	OriginPattern *regexp.Regexp `yaml:"-" env:"-"`
}

// SessionConfig holds study session parameters.
type SessionConfig struct {
	DailyGoal     int    `yaml:"daily_goal"      env:"SESSION_DAILY_GOAL"      env-default:"50"`
	Timezone      string `yaml:"timezone"        env:"SESSION_TIMEZONE"        env-default:"UTC"`
	DefaultUserID string `yaml:"default_user_id" env:"SESSION_DEFAULT_USER_ID" env-default:"00000000-0000-0000-0000-000000000000"`

	// Location is loaded from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
	// DefaultUser is parsed from DefaultUserID during validation.
	DefaultUser uuid.UUID `yaml:"-" env:"-"`
}

// StorageConfig describes where card media files are served from.
type StorageConfig struct {
	MediaBaseURL string `yaml:"media_base_url" env:"STORAGE_MEDIA_BASE_URL" env-default:"https://storage.cloud.google.com"`
	Bucket       string `yaml:"bucket"         env:"STORAGE_BUCKET"         env-default:"dabia-assets"`
	MediaPath    string `yaml:"media_path"     env:"STORAGE_MEDIA_PATH"     env-default:"medias"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"120"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"20"`
	IdleTTL           time.Duration `yaml:"idle_ttl"            env:"RATE_LIMIT_IDLE_TTL"            env-default:"10m"`
}

package config

import (
	"time"

	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// Config is the root application configuration.
//
// The cycle zone, anchor and hours are deliberately absent: they are
// constants of package cycle so every host computes the same phases.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Cycle    CycleConfig    `yaml:"cycle"`
	Trigger  TriggerConfig  `yaml:"trigger"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds the Redis connection used for trigger tick claims.
type RedisConfig struct {
	URL         string        `yaml:"url"          env:"REDIS_URL"          env-default:"redis://localhost:6379/0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
}

// AuthConfig holds bearer token settings.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"promptcycle"`
	AccessTTL time.Duration `yaml:"access_ttl" env:"AUTH_ACCESS_TTL" env-default:"720h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CycleConfig holds runtime knobs of the daily cycle.
type CycleConfig struct {
	// PhaseOverrideRaw forces the reported phase on this host ("posting",
	// "viewing"); empty disables it. Manual testing only.
	PhaseOverrideRaw string `yaml:"phase_override" env:"CYCLE_PHASE_OVERRIDE"`

	// PhaseOverride is parsed from PhaseOverrideRaw during validation.
	PhaseOverride cycle.Phase `yaml:"-" env:"-"`
}

// TriggerConfig holds settings of the scheduled notification trigger.
type TriggerConfig struct {
	Token              string        `yaml:"token"               env:"TRIGGER_TOKEN"               env-required:"true"`
	ClaimTTL           time.Duration `yaml:"claim_ttl"           env:"TRIGGER_CLAIM_TTL"           env-default:"36h"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_min"  env:"TRIGGER_RATE_LIMIT_PER_MIN"  env-default:"30"`
	Timeout            time.Duration `yaml:"timeout"             env:"TRIGGER_TIMEOUT"             env-default:"2m"`
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Poller   PollerConfig
	Turvo    TurvoConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"HAULFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"HAULFRONT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"HAULFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HAULFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// UpstreamConfig points the facade at the TMS backend API.
type UpstreamConfig struct {
	BaseURL        string        `envconfig:"HAULFRONT_UPSTREAM_BASE_URL" default:"http://localhost:3001/api"`
	Token          string        `envconfig:"HAULFRONT_UPSTREAM_TOKEN" default:"demo-token-for-testing"`
	Timeout        time.Duration `envconfig:"HAULFRONT_UPSTREAM_TIMEOUT" default:"10s"`
	RetryAttempts  uint64        `envconfig:"HAULFRONT_UPSTREAM_RETRY_ATTEMPTS" default:"3"`
	RetryBaseDelay time.Duration `envconfig:"HAULFRONT_UPSTREAM_RETRY_BASE_DELAY" default:"200ms"`
}

type RedisConfig struct {
	URL          string        `envconfig:"HAULFRONT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"HAULFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"HAULFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"HAULFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HAULFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HAULFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HAULFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HAULFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HAULFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// AuthConfig covers the bearer credentials accepted on /api routes. The demo
// token mirrors the upstream's offline credential; the JWT settings allow a
// real identity provider to mint session tokens instead.
type AuthConfig struct {
	DemoToken string `envconfig:"HAULFRONT_AUTH_DEMO_TOKEN" default:"demo-token-for-testing"`
	JWTSecret string `envconfig:"HAULFRONT_AUTH_JWT_SECRET"`
	JWTIssuer string `envconfig:"HAULFRONT_AUTH_JWT_ISSUER" default:"haulfront"`
}

type PollerConfig struct {
	Interval    time.Duration `envconfig:"HAULFRONT_POLL_INTERVAL" default:"30s"`
	SnapshotTTL time.Duration `envconfig:"HAULFRONT_POLL_SNAPSHOT_TTL" default:"2m"`
}

type TurvoConfig struct {
	BaseURL string        `envconfig:"HAULFRONT_TURVO_BASE_URL" default:"https://publicapi.turvo.com/v1"`
	Timeout time.Duration `envconfig:"HAULFRONT_TURVO_TIMEOUT" default:"15s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"HAULFRONT_CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

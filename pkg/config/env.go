package config

// EnvPrefix is the envconfig prefix shared by every setting.
const EnvPrefix = "HAULFRONT"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Names of the required environment variables, kept as constants so the
// tests reference a single source of truth.
const (
	EnvAppEnv   = "HAULFRONT_APP_ENV"
	EnvPort     = "HAULFRONT_APP_PORT"
	EnvRedisURL = "HAULFRONT_REDIS_URL"
)

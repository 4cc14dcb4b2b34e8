package config

// EnvPrefix is passed to envconfig; individual fields override it with
// explicit TERRAMASTER_* names.
const EnvPrefix = "terramaster"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv     = "TERRAMASTER_APP_ENV"
	EnvPort       = "TERRAMASTER_APP_PORT"
	EnvDBDSN      = "TERRAMASTER_DB_DSN"
	EnvDBHost     = "TERRAMASTER_DB_HOST"
	EnvDBUser     = "TERRAMASTER_DB_USER"
	EnvDBName     = "TERRAMASTER_DB_NAME"
	EnvRedisURL   = "TERRAMASTER_REDIS_URL"
	EnvJWTSecret  = "TERRAMASTER_JWT_SECRET"
	EnvJWTIssuer  = "TERRAMASTER_JWT_ISSUER"
	EnvJWTExpMins = "TERRAMASTER_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

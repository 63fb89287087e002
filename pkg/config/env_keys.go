package config

// EnvPrefix is empty because every envconfig tag carries the full variable name.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv                 = "NATURETRAILS_APP_ENV"
	EnvPort                   = "NATURETRAILS_APP_PORT"
	EnvDBDSN                  = "NATURETRAILS_DB_DSN"
	EnvDBHost                 = "NATURETRAILS_DB_HOST"
	EnvDBUser                 = "NATURETRAILS_DB_USER"
	EnvDBName                 = "NATURETRAILS_DB_NAME"
	EnvRedisURL               = "NATURETRAILS_REDIS_URL"
	EnvJWTSecret              = "NATURETRAILS_JWT_SECRET"
	EnvJWTIssuer              = "NATURETRAILS_JWT_ISSUER"
	EnvJWTExpMins             = "NATURETRAILS_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "NATURETRAILS_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

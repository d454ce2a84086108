package config

const (
	// EnvPrefix is passed to envconfig; individual fields carry explicit
	// JESSBACK_* names so the prefix stays empty.
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "JESSBACK_APP_ENV"
	EnvPort   = "JESSBACK_APP_PORT"

	EnvDBDSN  = "JESSBACK_DB_DSN"
	EnvDBHost = "JESSBACK_DB_HOST"
	EnvDBUser = "JESSBACK_DB_USER"
	EnvDBName = "JESSBACK_DB_NAME"

	EnvRedisURL = "JESSBACK_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

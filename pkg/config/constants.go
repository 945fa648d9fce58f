package config

// EnvPrefix is empty because every field carries a fully qualified tag.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names shared with tests and deploy manifests.
const (
	EnvAppEnv         = "STRAWFIELDS_APP_ENV"
	EnvPort           = "STRAWFIELDS_APP_PORT"
	EnvLogLevel       = "STRAWFIELDS_LOG_LEVEL"
	EnvRedisURL       = "STRAWFIELDS_REDIS_URL"
	EnvWebhookURL     = "STRAWFIELDS_LEADS_WEBHOOK_URL"
	EnvWhatsAppNumber = "STRAWFIELDS_WHATSAPP_NUMBER"
)

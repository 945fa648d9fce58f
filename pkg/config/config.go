package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Cart     CartConfig
	Chat     ChatConfig
	Leads    LeadsConfig
	WhatsApp WhatsAppConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STRAWFIELDS_APP_ENV" required:"true"`
	Port         string `envconfig:"STRAWFIELDS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STRAWFIELDS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STRAWFIELDS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"STRAWFIELDS_REDIS_URL" required:"true"`
	Address      string        `envconfig:"STRAWFIELDS_REDIS_ADDR"`
	Password     string        `envconfig:"STRAWFIELDS_REDIS_PASSWORD"`
	DB           int           `envconfig:"STRAWFIELDS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STRAWFIELDS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STRAWFIELDS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STRAWFIELDS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STRAWFIELDS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STRAWFIELDS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CartConfig struct {
	SnapshotTTL time.Duration `envconfig:"STRAWFIELDS_CART_SNAPSHOT_TTL" default:"720h"`
	MinAddQty   int           `envconfig:"STRAWFIELDS_CART_MIN_ADD_QTY" default:"1000"`
	DefaultStep int           `envconfig:"STRAWFIELDS_CART_DEFAULT_STEP" default:"10000"`
}

type ChatConfig struct {
	StateTTL    time.Duration `envconfig:"STRAWFIELDS_CHAT_STATE_TTL" default:"72h"`
	FAQPageSize int           `envconfig:"STRAWFIELDS_CHAT_FAQ_PAGE_SIZE" default:"3"`
}

type LeadsConfig struct {
	WebhookURL       string        `envconfig:"STRAWFIELDS_LEADS_WEBHOOK_URL" required:"true"`
	WebhookTimeout   time.Duration `envconfig:"STRAWFIELDS_LEADS_WEBHOOK_TIMEOUT" default:"10s"`
	CSVBackupPath    string        `envconfig:"STRAWFIELDS_LEADS_CSV_BACKUP_PATH" default:"data/leads_backup.csv"`
	MaxAttempts      int           `envconfig:"STRAWFIELDS_LEADS_MAX_ATTEMPTS" default:"3"`
	RetryBaseDelay   time.Duration `envconfig:"STRAWFIELDS_LEADS_RETRY_BASE_DELAY" default:"500ms"`
	RateLimitWindow  time.Duration `envconfig:"STRAWFIELDS_LEADS_RATE_LIMIT_WINDOW" default:"1m"`
	RateLimitPerSess int           `envconfig:"STRAWFIELDS_LEADS_RATE_LIMIT_PER_SESSION" default:"5"`
}

type WhatsAppConfig struct {
	Number string `envconfig:"STRAWFIELDS_WHATSAPP_NUMBER" required:"true"`
}

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv    = "ORDERBUDDY_APP_ENV"
	EnvPort      = "ORDERBUDDY_APP_PORT"
	EnvDBDSN     = "ORDERBUDDY_DB_DSN"
	EnvRedisURL  = "ORDERBUDDY_REDIS_URL"
	EnvJWTSecret = "ORDERBUDDY_JWT_SECRET"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	CORS          CORSConfig
	OpenAI        OpenAIConfig
	Assistant     AssistantConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ORDERBUDDY_APP_ENV" required:"true"`
	Port         string `envconfig:"ORDERBUDDY_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ORDERBUDDY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ORDERBUDDY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"ORDERBUDDY_DB_DSN"`

	Host     string `envconfig:"ORDERBUDDY_DB_HOST"`
	Port     int    `envconfig:"ORDERBUDDY_DB_PORT" default:"5432"`
	User     string `envconfig:"ORDERBUDDY_DB_USER"`
	Password string `envconfig:"ORDERBUDDY_DB_PASSWORD"`
	Name     string `envconfig:"ORDERBUDDY_DB_NAME"`
	SSLMode  string `envconfig:"ORDERBUDDY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ORDERBUDDY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ORDERBUDDY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ORDERBUDDY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ORDERBUDDY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	if db.Host == "" {
		missing = append(missing, "ORDERBUDDY_DB_HOST")
	}
	if db.User == "" {
		missing = append(missing, "ORDERBUDDY_DB_USER")
	}
	if db.Name == "" {
		missing = append(missing, "ORDERBUDDY_DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("database config incomplete: set ORDERBUDDY_DB_DSN or %s", strings.Join(missing, ", "))
	}

	db.DSN = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(db.User),
		url.QueryEscape(db.Password),
		db.Host,
		db.Port,
		db.Name,
		db.SSLMode,
	)
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"ORDERBUDDY_REDIS_URL"`
	Address      string        `envconfig:"ORDERBUDDY_REDIS_ADDR"`
	Password     string        `envconfig:"ORDERBUDDY_REDIS_PASSWORD"`
	DB           int           `envconfig:"ORDERBUDDY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ORDERBUDDY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ORDERBUDDY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ORDERBUDDY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ORDERBUDDY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ORDERBUDDY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"ORDERBUDDY_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"ORDERBUDDY_JWT_ISSUER" default:"orderbuddy"`
	ExpirationMinutes int    `envconfig:"ORDERBUDDY_JWT_EXPIRATION_MINUTES" default:"1440"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"ORDERBUDDY_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"ORDERBUDDY_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"ORDERBUDDY_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"ORDERBUDDY_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"ORDERBUDDY_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"ORDERBUDDY_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"ORDERBUDDY_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"ORDERBUDDY_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"ORDERBUDDY_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"ORDERBUDDY_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"ORDERBUDDY_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ORDERBUDDY_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"ORDERBUDDY_CORS_ORIGINS" default:"http://localhost:3000"`
}

type OpenAIConfig struct {
	APIKey  string        `envconfig:"ORDERBUDDY_OPENAI_API_KEY"`
	BaseURL string        `envconfig:"ORDERBUDDY_OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	Model   string        `envconfig:"ORDERBUDDY_OPENAI_MODEL" default:"gpt-4o-mini"`
	Timeout time.Duration `envconfig:"ORDERBUDDY_OPENAI_TIMEOUT" default:"30s"`
}

type AssistantConfig struct {
	HistoryTTL   time.Duration `envconfig:"ORDERBUDDY_ASSISTANT_HISTORY_TTL" default:"24h"`
	HistoryDepth int           `envconfig:"ORDERBUDDY_ASSISTANT_HISTORY_DEPTH" default:"10"`
}

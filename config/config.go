package config

import (
	"fmt"
	"sync"

	"gomoto/shared/constant"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// PostgresEndpoint is one side of the read/write database split.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

type RedisEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		LogFile  struct {
			Path       string `envconfig:"PATH"`
			MaxSizeMB  int    `envconfig:"MAX_SIZE_MB"  default:"100"`
			MaxBackups int    `envconfig:"MAX_BACKUPS"  default:"5"`
			MaxAgeDays int    `envconfig:"MAX_AGE_DAYS" default:"28"`
			Compress   bool   `envconfig:"COMPRESS"`
		} `envconfig:"LOG_FILE"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey  string `envconfig:"API_KEY"`
		Swagger bool   `envconfig:"SWAGGER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary RedisEndpoint `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL      int `envconfig:"TTL"`
		StatsTTL int `envconfig:"STATS_TTL" default:"60"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int              `envconfig:"MAX_RETRY"`
			RetryWaitTime  int              `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string           `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool             `envconfig:"AUTO_MIGRATE"`
			Prefix         string           `envconfig:"PREFIX"`
			MaxOpenConns   int              `envconfig:"MAX_OPEN_CONNS"    default:"10"`
			MaxIdleConns   int              `envconfig:"MAX_IDLE_CONNS"    default:"10"`
			ConnMaxLifeMin int              `envconfig:"CONN_MAX_LIFE_MIN" default:"30"`
			Read           PostgresEndpoint `envconfig:"READ"`
			Write          PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		Topics        struct {
			Booking string `envconfig:"BOOKING" default:"gomoto.booking"`
		} `envconfig:"TOPICS"`
		SASL struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	Metrics struct {
		Enable bool   `envconfig:"ENABLE"`
		Port   string `envconfig:"PORT"   default:"2112"`
	} `envconfig:"METRICS"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
		} `envconfig:"S3"`
		Mail struct {
			Enable   bool   `envconfig:"ENABLE"`
			Host     string `envconfig:"HOST"`
			Port     int    `envconfig:"PORT"`
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
			From     string `envconfig:"FROM"`
			FromName string `envconfig:"FROM_NAME"`
		} `envconfig:"MAIL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
	initErr     error
)

// Init loads .env when present and then reads the environment into the process config.
// Variables already set in the environment win over the file.
func Init() error {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Warn().Err(err).Msg("no .env file loaded, using process environment")
		} else {
			log.Info().Msg("loaded .env file into environment")
		}

		if err := envconfig.Process("", &conf); err != nil {
			initErr = fmt.Errorf("processing environment variables: %w", err)

			return
		}

		initialized = true

		log.Info().Str("env", conf.Server.Env).Str("app", conf.App.Name).Msg("configuration initialized")
	})

	return initErr
}

// Get returns the process config, initializing it on first use. It exits the process when
// the environment cannot be parsed.
func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize configuration")
		}
	}

	return &conf
}

// IsProduction reports whether the service runs with SERVER_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Server.Env == constant.ServerEnvProduction
}

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Session       SessionConfig
	AuthRateLimit AuthRateLimitConfig
	Directory     DirectoryConfig
	Commission    CommissionConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"TERRAMASTER_APP_ENV" required:"true"`
	Port         string `envconfig:"TERRAMASTER_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"TERRAMASTER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TERRAMASTER_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"TERRAMASTER_DB_DSN"`
	Driver string `envconfig:"TERRAMASTER_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"TERRAMASTER_DB_HOST"`
	LegacyPort     int    `envconfig:"TERRAMASTER_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"TERRAMASTER_DB_USER"`
	LegacyPassword string `envconfig:"TERRAMASTER_DB_PASSWORD"`
	LegacyName     string `envconfig:"TERRAMASTER_DB_NAME"`
	LegacySSLMode  string `envconfig:"TERRAMASTER_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TERRAMASTER_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TERRAMASTER_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TERRAMASTER_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TERRAMASTER_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"TERRAMASTER_REDIS_URL" required:"true"`
	Address      string        `envconfig:"TERRAMASTER_REDIS_ADDR"`
	Password     string        `envconfig:"TERRAMASTER_REDIS_PASSWORD"`
	DB           int           `envconfig:"TERRAMASTER_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TERRAMASTER_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TERRAMASTER_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TERRAMASTER_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TERRAMASTER_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TERRAMASTER_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"TERRAMASTER_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"TERRAMASTER_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"TERRAMASTER_JWT_EXPIRATION_MINUTES" required:"true"`
}

// AccessTokenTTL returns the configured access token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"TERRAMASTER_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"TERRAMASTER_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"TERRAMASTER_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"TERRAMASTER_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"TERRAMASTER_ARGON_KEY_LEN" default:"32"`
}

// SessionConfig controls refresh-session lifetimes in Redis. RememberTTL is
// the stretched lifetime applied when a login asks to be remembered; the
// console advertises it as the 7-day window.
type SessionConfig struct {
	TTL         time.Duration `envconfig:"TERRAMASTER_SESSION_TTL" default:"12h"`
	RememberTTL time.Duration `envconfig:"TERRAMASTER_SESSION_REMEMBER_TTL" default:"168h"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"TERRAMASTER_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"TERRAMASTER_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"TERRAMASTER_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

// DirectoryConfig tunes the dashboard user listing. PageSize is the
// "load more" increment the console renders with.
type DirectoryConfig struct {
	PageSize int `envconfig:"TERRAMASTER_DIRECTORY_PAGE_SIZE" default:"6"`
}

// CommissionConfig carries the ledger commission rate as a decimal string,
// e.g. "0.03" for the standard 3% cut of a booking's down payment.
type CommissionConfig struct {
	Rate string `envconfig:"TERRAMASTER_COMMISSION_RATE" default:"0.03"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"TERRAMASTER_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

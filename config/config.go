package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// DefaultJWTSecret is the JWT_SECRET placeholder. It is refused when
// REQUIRE_SESSION is on.
const DefaultJWTSecret = "change-me"

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig keeps the variable names the service has always used.
// URL is a Mongo URI for the mongo driver and a DSN for the gorm drivers.
type DatabaseConfig struct {
	URL     string        `yaml:"url"     env:"MONGO_URL"          env-required:"true"`
	Name    string        `yaml:"name"    env:"DB_NAME"            env-required:"true"`
	Driver  string        `yaml:"driver"  env:"DB_DRIVER"          env-default:"mongo"`
	Timeout time.Duration `yaml:"timeout" env:"DB_CONNECT_TIMEOUT" env-default:"10s"`
}

type AuthConfig struct {
	Password       string        `yaml:"password"        env:"ACCESS_PASSWORD" env-default:"HPD0909"`
	JWTSecret      string        `yaml:"jwt_secret"      env:"JWT_SECRET"      env-default:"change-me"`
	SessionTTL     time.Duration `yaml:"session_ttl"     env:"SESSION_TTL"     env-default:"12h"`
	RequireSession bool          `yaml:"require_session" env:"REQUIRE_SESSION" env-default:"false"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"             env:"PORT"                    env-default:"8080"`
	GinMode         string        `yaml:"gin_mode"         env:"GIN_MODE"                env-default:"debug"`
	RateLimitRPS    float64       `yaml:"rate_limit_rps"   env:"RATE_LIMIT_RPS"          env-default:"0"`
	RateLimitBurst  int           `yaml:"rate_limit_burst" env:"RATE_LIMIT_BURST"        env-default:"20"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Load reads .env (if present), then CONFIG_PATH (if set) and the
// environment. Environment values win over the YAML file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Database.URL) == "" {
		errs = append(errs, errors.New("MONGO_URL is required"))
	}
	if strings.TrimSpace(c.Database.Name) == "" {
		errs = append(errs, errors.New("DB_NAME is required"))
	}
	switch c.Database.Driver {
	case DriverMongo, DriverMySQL, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown DB_DRIVER %q", c.Database.Driver))
	}
	if c.Auth.Password == "" {
		errs = append(errs, errors.New("ACCESS_PASSWORD must not be empty"))
	}
	if c.Auth.RequireSession {
		secret := strings.TrimSpace(c.Auth.JWTSecret)
		if secret == "" || secret == DefaultJWTSecret {
			errs = append(errs, errors.New("JWT_SECRET must be set to a private value when REQUIRE_SESSION is on"))
		}
	}
	if c.Auth.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	switch c.Server.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Errorf("unknown GIN_MODE %q", c.Server.GinMode))
	}
	if c.Server.RateLimitRPS < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must not be negative"))
	}

	return errors.Join(errs...)
}

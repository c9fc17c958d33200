package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "QUICKKART"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv        = "QUICKKART_APP_ENV"
	EnvPort          = "QUICKKART_APP_PORT"
	EnvLogLevel      = "QUICKKART_LOG_LEVEL"
	EnvJWTSecret     = "QUICKKART_JWT_SECRET"
	EnvJWTIssuer     = "QUICKKART_JWT_ISSUER"
	EnvJWTExpMins    = "QUICKKART_JWT_EXPIRATION_MINUTES"
	EnvAuthMockDelay = "QUICKKART_AUTH_MOCK_DELAY"
	EnvCORSOrigins   = "QUICKKART_CORS_ALLOWED_ORIGINS"
)

type Config struct {
	App  AppConfig
	JWT  JWTConfig
	Auth AuthConfig
	CORS CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"QUICKKART_APP_ENV" required:"true"`
	Port         string `envconfig:"QUICKKART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"QUICKKART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"QUICKKART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type JWTConfig struct {
	Secret            string `envconfig:"QUICKKART_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"QUICKKART_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"QUICKKART_JWT_EXPIRATION_MINUTES" required:"true"`
}

// AccessTokenTTL returns the access token lifetime configured in minutes.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type AuthConfig struct {
	// MockDelay is how long the stand-in identity provider sleeps before
	// resolving a login or signup.
	MockDelay time.Duration `envconfig:"QUICKKART_AUTH_MOCK_DELAY" default:"1s"`
}

type CORSConfig struct {
	// AllowedOrigins defaults to the local web and expo dev hosts.
	AllowedOrigins []string `envconfig:"QUICKKART_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:19006"`
}

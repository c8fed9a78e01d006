/**
* Name:        config.go
* Description: Runtime configuration for the API server
* Workflow:    defaults -> command-line flags -> .env / environment -> validation
 */
package config

import (
	"flag"
	"os"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	EnvProduction = "production"

	DefaultJWTSecret = "default_jwt_secret"
)

type Config struct {
	Port      string `env:"PORT" validate:"required,numeric"`
	AppEnv    string `env:"APP_ENV" validate:"oneof=development production test"`
	StaticDir string `env:"STATIC_DIR"`
	LogLevel  string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	JWTSecret  string        `env:"JWT_SECRET" validate:"required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" validate:"gt=0"`
	BcryptCost int           `env:"BCRYPT_COST" validate:"min=4,max=31"`

	// Empty path keeps users in process memory.
	DatabasePath string `env:"DATABASE_PATH"`

	RazorpayKeyID   string `env:"RAZORPAY_KEY_ID"`
	RazorpaySecret  string `env:"RAZORPAY_SECRET"`
	RazorpayBaseURL string `env:"RAZORPAY_BASE_URL" validate:"url"`

	// Empty key disables AI generation; the endpoint then answers 500.
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" validate:"url"`
	OpenAIModel   string `env:"OPENAI_MODEL" validate:"required"`

	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT" validate:"gt=0"`
	AuthRateBurst int     `env:"AUTH_RATE_BURST" validate:"gt=0"`

	// Empty trusts no proxy: X-Forwarded-For is ignored.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:"," validate:"dive,ip|cidr"`
}

// Addr returns the listen address for http.Server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// UsesDefaultSecret reports whether tokens are signed with the built-in key.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

type InitOption func(*initOptions)

type initOptions struct {
	disableFlagsParsing bool
	envFile             string
}

func WithDisableFlagsParsing(disableFlagsParsing bool) InitOption {
	return func(options *initOptions) {
		options.disableFlagsParsing = disableFlagsParsing
	}
}

// WithEnvFile overrides the dotenv file loaded before reading the environment.
func WithEnvFile(path string) InitOption {
	return func(options *initOptions) {
		options.envFile = path
	}
}

func defaults() Config {
	return Config{
		Port:            "5000",
		AppEnv:          "development",
		StaticDir:       "./frontend/build",
		LogLevel:        "info",
		JWTSecret:       DefaultJWTSecret,
		TokenTTL:        time.Hour,
		BcryptCost:      10,
		RazorpayBaseURL: "https://api.razorpay.com/v1",
		OpenAIBaseURL:   "https://api.openai.com/v1",
		OpenAIModel:     "gpt-3.5-turbo",
		AuthRateLimit:   5,
		AuthRateBurst:   20,
	}
}

// New builds the configuration. A missing .env file is not an error.
func New(optionsProto ...InitOption) (*Config, error) {
	options := &initOptions{
		envFile: ".env",
	}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	if err := godotenv.Load(options.envFile); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := defaults()
	if !options.disableFlagsParsing {
		flag.StringVar(&cfg.Port, "p", cfg.Port, "port to listen on")
		flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "logger level")
		flag.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "sqlite database file, empty for in-memory users")
		flag.Parse()
	}

	// Unset variables leave the current value untouched.
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

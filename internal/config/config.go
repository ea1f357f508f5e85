package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultAPIBaseURL is the production analysis service used when
// API_BASE_URL is not set. It is resolved once at startup and never
// mutated afterwards.
const DefaultAPIBaseURL = "https://cardiocare-api.easypanel.host"

type Config struct {
	Port                  string   `mapstructure:"PORT"`
	Env                   string   `mapstructure:"ENV"`
	APIBaseURL            string   `mapstructure:"API_BASE_URL"`
	APITimeoutSeconds     int      `mapstructure:"API_TIMEOUT_SECONDS"`
	DatabaseURL           string   `mapstructure:"DATABASE_URL"`
	DBMaxConns            int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns            int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins           []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS          float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst        int      `mapstructure:"RATE_LIMIT_BURST"`
	SessionTTLMinutes     int      `mapstructure:"SESSION_TTL_MINUTES"`
	RequestTimeoutSeconds int      `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	BodyLimit             string   `mapstructure:"BODY_LIMIT"`
	TLSEnabled            bool     `mapstructure:"TLS_ENABLED"`
	TLSCertFile           string   `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile            string   `mapstructure:"TLS_KEY_FILE"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("API_BASE_URL", DefaultAPIBaseURL)
	v.SetDefault("API_TIMEOUT_SECONDS", 30)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 50)
	v.SetDefault("RATE_LIMIT_BURST", 100)
	v.SetDefault("SESSION_TTL_MINUTES", 30)
	v.SetDefault("REQUEST_TIMEOUT_SECONDS", 60)
	v.SetDefault("BODY_LIMIT", "64K")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("API_BASE_URL")
	v.BindEnv("API_TIMEOUT_SECONDS")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("SESSION_TTL_MINUTES")
	v.BindEnv("REQUEST_TIMEOUT_SECONDS")
	v.BindEnv("BODY_LIMIT")
	v.BindEnv("TLS_ENABLED")
	v.BindEnv("TLS_CERT_FILE")
	v.BindEnv("TLS_KEY_FILE")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// APITimeout returns the per-attempt timeout for calls to the analysis
// service.
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.APITimeoutSeconds) * time.Second
}

// SessionTTL returns how long a session's analysis result survives.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// RequestTimeout returns the server-side deadline for inbound requests.
// It must exceed the upstream API timeout so submissions can complete.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Validate checks that the configuration is safe to run.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL must not be empty")
	}
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("API_BASE_URL must be an http(s) URL, got %q", c.APIBaseURL)
	}
	if c.APITimeoutSeconds <= 0 {
		return fmt.Errorf("API_TIMEOUT_SECONDS must be positive, got %d", c.APITimeoutSeconds)
	}
	if c.SessionTTLMinutes <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive, got %d", c.SessionTTLMinutes)
	}
	if c.RequestTimeoutSeconds <= c.APITimeoutSeconds {
		return fmt.Errorf("REQUEST_TIMEOUT_SECONDS (%d) must exceed API_TIMEOUT_SECONDS (%d)",
			c.RequestTimeoutSeconds, c.APITimeoutSeconds)
	}

	// TLS validation: when TLS is enabled, cert and key files must be specified.
	if c.TLSEnabled {
		if c.TLSCertFile == "" {
			return fmt.Errorf("TLS_CERT_FILE is required when TLS_ENABLED is true")
		}
		if c.TLSKeyFile == "" {
			return fmt.Errorf("TLS_KEY_FILE is required when TLS_ENABLED is true")
		}
	}

	return nil
}

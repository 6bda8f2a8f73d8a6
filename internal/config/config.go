package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. SUPPLIER_ADMIN_PASSWORD.
const EnvPrefix = "SUPPLIER_ADMIN_"

var ErrMissingPassword = errors.New("auth.password or auth.password_hash is required in production")

// LoadConfig builds the process configuration once at startup. The YAML file is
// optional; environment variables (and a local .env file) override it.
func LoadConfig(configPath string) (*Config, error) {
	// .env is a development convenience, absence is fine
	_ = godotenv.Load()

	var config Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnvironmentOverrides(&config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func applyEnvironmentOverrides(config *Config) error {
	return env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix})
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateAuthConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch strings.ToLower(c.Server.Environment) {
	case "":
		c.Server.Environment = DefaultServerConfig.Environment
	case EnvironmentDevelopment, "dev":
		c.Server.Environment = EnvironmentDevelopment
	case EnvironmentProduction, "prod":
		c.Server.Environment = EnvironmentProduction
	default:
		return fmt.Errorf("invalid server.environment: %s, options are development or production", c.Server.Environment)
	}

	if c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
		if c.Server.Debug.Port == c.Server.Port {
			return fmt.Errorf("server.debug.port must differ from server.port (both are %d)", c.Server.Port)
		}
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	switch c.Log.Format {
	case "":
		c.Log.Format = DefaultLogConfig.Format
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
	}

	switch c.Log.Level {
	case "":
		c.Log.Level = DefaultLogConfig.Level
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
	}

	return nil
}

func (c *Config) validateAuthConfig() error {
	if c.Auth.PasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(c.Auth.PasswordHash)); err != nil {
			return fmt.Errorf("auth.password_hash is not a valid bcrypt hash: %w", err)
		}
	} else if c.Auth.Password == "" {
		if c.IsProduction() {
			return ErrMissingPassword
		}
		c.Auth.Password = DefaultDevelopmentPassword
		c.Auth.UsingDefaultPassword = true
	}

	if c.Auth.Locale == "" {
		c.Auth.Locale = DefaultAuthConfig.Locale
	}

	if _, err := language.Parse(c.Auth.Locale); err != nil {
		return fmt.Errorf("invalid auth.locale %q: %w", c.Auth.Locale, err)
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.Lifetime == 0 {
		c.Sessions.Lifetime = DefaultSessionConfig.Lifetime
	} else if c.Sessions.Lifetime < 0 {
		return fmt.Errorf("sessions.lifetime must be positive, got %s", c.Sessions.Lifetime)
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	for _, origin := range c.CORS.AllowedOrigins {
		if origin == "*" {
			if c.CORS.AllowCredentials {
				return fmt.Errorf("cors.allow_credentials cannot be combined with a wildcard origin")
			}
			continue
		}
		if err := validateURL(origin, "cors.allowed_origins"); err != nil {
			return err
		}
	}

	return nil
}

package config

import (
	"time"
)

type Config struct {
	Server   ServerConfig  `yaml:"server"`
	Log      LogConfig     `yaml:"log" envPrefix:"LOG_"`
	Auth     AuthConfig    `yaml:"auth"`
	Sessions SessionConfig `yaml:"sessions" envPrefix:"SESSION_"`
	CORS     CORSConfig    `yaml:"cors" envPrefix:"CORS_"`
}

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

type ServerConfig struct {
	Port        int               `yaml:"port" env:"PORT"`
	Environment string            `yaml:"environment" env:"ENV"`
	Debug       ServerDebugConfig `yaml:"debug" envPrefix:"DEBUG_"`
}

var DefaultServerConfig = ServerConfig{
	Port:        8080,
	Environment: EnvironmentDevelopment,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled" env:"ENABLED"`
	Host    string `yaml:"host" env:"HOST"`
	Port    int    `yaml:"port" env:"PORT"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

type LogConfig struct {
	Level       string `yaml:"level" env:"LEVEL"`
	Format      string `yaml:"format" env:"FORMAT"`
	StackTraces bool   `yaml:"stack_traces" env:"STACK_TRACES"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

// AuthConfig holds the single shared admin secret. Exactly one of Password or
// PasswordHash (bcrypt) is used; PasswordHash wins when both are set.
type AuthConfig struct {
	Password     string `yaml:"password" env:"PASSWORD"`
	PasswordHash string `yaml:"password_hash" env:"PASSWORD_HASH"`
	Locale       string `yaml:"locale" env:"LOCALE"`

	// UsingDefaultPassword is set by validation when the development fallback
	// secret was applied.
	UsingDefaultPassword bool `yaml:"-"`
}

// DefaultDevelopmentPassword is only ever applied outside production.
const DefaultDevelopmentPassword = "movoit"

var DefaultAuthConfig = AuthConfig{
	Locale: "da",
}

type SessionConfig struct {
	Name     string        `yaml:"name" env:"NAME"`
	Lifetime time.Duration `yaml:"lifetime" env:"LIFETIME"`
}

var DefaultSessionConfig = SessionConfig{
	Name:     "supplier_admin_session",
	Lifetime: 7 * 24 * time.Hour,
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" envSeparator:","`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials" env:"ALLOW_CREDENTIALS"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:5173"},
	AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

// IsProduction reports whether cookies and headers should assume HTTPS.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvironmentProduction
}

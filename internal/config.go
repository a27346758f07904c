package internal

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"http_server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Security      SecurityConfig      `mapstructure:"security"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	AllowedOrigins    string        `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	// Source is the SQLite database path, relative or absolute.
	// ":memory:" gives an isolated in-memory store for tests.
	Source       string `mapstructure:"source"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type SecurityConfig struct {
	// AppPassword is the single shared secret guarding the ledger.
	AppPassword string `mapstructure:"app_password"`
	// SessionSecret signs session tokens.
	SessionSecret string `mapstructure:"session_secret"`
	// SessionDuration uses the compact "<int><s|m|h|d>" form, e.g. "12h".
	SessionDuration string `mapstructure:"session_duration"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultSessionDuration applies when session_duration is unset or does not
// match the "<int><s|m|h|d>" form. The silent fallback is intentional.
const DefaultSessionDuration = 24 * time.Hour

var sessionDurationPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// ParseSessionDuration converts the configured expiry string to a duration.
// Unrecognized input falls back to DefaultSessionDuration rather than
// failing, so a bad value degrades to the stock 24h session.
func ParseSessionDuration(s string) time.Duration {
	m := sessionDurationPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return DefaultSessionDuration
	}

	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return DefaultSessionDuration
	}

	switch m[2] {
	case "s":
		return time.Duration(n) * time.Second
	case "m":
		return time.Duration(n) * time.Minute
	case "h":
		return time.Duration(n) * time.Hour
	case "d":
		return time.Duration(n) * 24 * time.Hour
	}
	return DefaultSessionDuration
}

// SessionDurationValue returns the effective session lifetime.
func (c *SecurityConfig) SessionDurationValue() time.Duration {
	return ParseSessionDuration(c.SessionDuration)
}

// ----------------- ENV LOADING -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

// LoadConfigFromEnv builds a Config purely from environment variables,
// used for containerized deployments where no config.yml is mounted.
func LoadConfigFromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              getEnvAsInt("SERVER_PORT", 8080),
			BaseURL:           getEnv("SERVER_BASE_URL", ""),
			AllowedOrigins:    getEnv("SERVER_ALLOWED_ORIGINS", "*"),
			ReadHeaderTimeout: getEnvAsDuration("SERVER_READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			IdleTimeout:       getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			WriteTimeout:      getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Source:       getEnv("DATABASE_SOURCE", "vehicle-ledger.db"),
			MaxOpenConns: getEnvAsInt("DATABASE_MAX_OPEN_CONNS", 1),
			MaxIdleConns: getEnvAsInt("DATABASE_MAX_IDLE_CONNS", 1),
		},
		Security: SecurityConfig{
			AppPassword:     getEnv("SECURITY_APP_PASSWORD", ""),
			SessionSecret:   getEnv("SECURITY_SESSION_SECRET", ""),
			SessionDuration: getEnv("SECURITY_SESSION_DURATION", "24h"),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOGGING_LEVEL", "info"),
				Format: getEnv("LOGGING_FORMAT", "json"),
			},
		},
	}
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("server config: %v", err))
	}

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("database config: %v", err))
	}

	if err := c.Security.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("security config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.Source == "" {
		return errors.New("source is required")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return errors.New("max_idle_conns cannot be greater than max_open_conns")
	}
	return nil
}

func (c *SecurityConfig) Validate() error {
	if c.SessionSecret == "" {
		return errors.New("session secret is required")
	}
	// AppPassword is deliberately not validated here: a missing password is
	// surfaced as a configuration error at verification time so the gate can
	// distinguish misconfiguration from a wrong password.
	return nil
}

func (c *DatabaseConfig) GetDSN() string {
	return c.Source
}

package internal

import (
	"chat-gate/domain"
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	Host            string        `env:"HOST,default=0.0.0.0"`
	Port            int           `env:"PORT,required=true"`
	JWTSecret       string        `env:"JWT_SECRET,required=true"`
	JWTIssuer       string        `env:"JWT_ISSUER,default=chat-gate"`
	RateLimit       int           `env:"RATE_LIMIT,default=5"`
	RateWindow      time.Duration `env:"RATE_WINDOW,default=1m"`
	FromHour        int           `env:"FROM_HOUR,default=6"`
	ToHour          int           `env:"TO_HOUR,default=21"`
	TimeZone        string        `env:"TIME_ZONE,default=Local"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT,default=5s"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL,default=30s"`
	ClockIdle       time.Duration `env:"CLOCK_IDLE,default=10m"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=15s"`
	EventBufferSize int           `env:"EVENT_BUFFER_SIZE,default=256"`
	DebugPort       int           `env:"DEBUG_PORT,default=8081"`
	// Comma separated roles allowed to skip the participant check, empty by default.
	BypassRoles string `env:"BYPASS_ROLES"`
}

// LoadConfig reads an optional .env file then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.FromHour < 0 || c.ToHour > 23 || c.FromHour > c.ToHour {
		return fmt.Errorf("FROM_HOUR and TO_HOUR must satisfy 0 <= from <= to <= 23, got %d and %d", c.FromHour, c.ToHour)
	}
	if c.RateLimit < 1 || c.RateWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT and RATE_WINDOW must be positive, got %d per %s", c.RateLimit, c.RateWindow)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	_, err := c.BypassRoleList()
	return err
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("TIME_ZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c Config) BypassRoleList() ([]domain.Role, error) {
	var roles []domain.Role
	for _, raw := range strings.Split(c.BypassRoles, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		switch role := domain.Role(raw); role {
		case domain.RoleGuest, domain.RoleHost, domain.RoleAdmin:
			roles = append(roles, role)
		default:
			return nil, fmt.Errorf("BYPASS_ROLES: unknown role %q", raw)
		}
	}
	return roles, nil
}

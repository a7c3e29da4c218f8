package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

// Config points the scenarios at a running server. The tokens belong to
// users seeded beforehand with chatctl seed.
type Config struct {
	Addr       string `envconfig:"E2E_ADDR"`
	HostToken  string `envconfig:"E2E_HOST_TOKEN"`
	GuestToken string `envconfig:"E2E_GUEST_TOKEN"`
	GuestID    string `envconfig:"E2E_GUEST_ID"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

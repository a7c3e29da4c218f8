package internal

import (
	"chat-gate/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("BLUGE_FILEPATH", t.TempDir())
	t.Setenv("PORT", "50051")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	setRequired(t)

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal(5, config.RateLimit)
	req.Equal(time.Minute, config.RateWindow)
	req.Equal(6, config.FromHour)
	req.Equal(21, config.ToHour)
	req.Equal("chat-gate", config.JWTIssuer)
	req.Equal(10*time.Minute, config.ClockIdle)
	roles, err := config.BypassRoleList()
	req.NoError(err)
	req.Empty(roles)
}

func TestLoadConfig_Overrides(t *testing.T) {
	req := require.New(t)
	setRequired(t)
	t.Setenv("RATE_LIMIT", "10")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("TIME_ZONE", "Europe/Paris")
	t.Setenv("BYPASS_ROLES", "admin, host")

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal(10, config.RateLimit)
	req.Equal(30*time.Second, config.RateWindow)
	loc, err := config.Location()
	req.NoError(err)
	req.Equal("Europe/Paris", loc.String())
	roles, err := config.BypassRoleList()
	req.NoError(err)
	req.Equal([]domain.Role{domain.RoleAdmin, domain.RoleHost}, roles)
}

func TestLoadConfig_Rejects_Invalid_Values(t *testing.T) {
	cases := map[string][2]string{
		"inverted hours": {"FROM_HOUR", "22"},
		"hour overflow":  {"TO_HOUR", "24"},
		"zero limit":     {"RATE_LIMIT", "0"},
		"unknown zone":   {"TIME_ZONE", "Mars/Olympus"},
		"unknown role":   {"BYPASS_ROLES", "root"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(kv[0], kv[1])
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestLoadConfig_Requires_Secret(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig()
	require.Error(t, err)
}

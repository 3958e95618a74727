package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "inventory-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, "auth_token", cfg.Auth.CookieName)
	assert.Equal(t, "/login", cfg.Auth.LoginPath)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.StaffTokenTTL())
	assert.Equal(t, 24*time.Hour, cfg.Auth.CustomerTokenTTL())
}

func TestAuthConfigTTLFallbacks(t *testing.T) {
	auth := AuthConfig{StaffTokenTTLDays: 0, CustomerTokenTTLHours: 0}
	assert.Equal(t, 7*24*time.Hour, auth.StaffTokenTTL())
	assert.Equal(t, 24*time.Hour, auth.CustomerTokenTTL())

	auth = AuthConfig{StaffTokenTTLDays: 2, CustomerTokenTTLHours: 6}
	assert.Equal(t, 48*time.Hour, auth.StaffTokenTTL())
	assert.Equal(t, 6*time.Hour, auth.CustomerTokenTTL())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AUTH_STAFF_TOKEN_TTL_DAYS", "3")
	t.Setenv("AUTH_COOKIE_NAME", "session")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3*24*time.Hour, cfg.Auth.StaffTokenTTL())
	assert.Equal(t, "session", cfg.Auth.CookieName)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaultsDerivesDriver(t *testing.T) {
	tests := []struct {
		target string
		driver string
		want   string
	}{
		{"local", "auto", "sqlite"},
		{"local", "", "sqlite"},
		{"cloud-dev", "auto", "postgres"},
		{"cloud", "auto", "postgres"},
		{"local", "postgres", "postgres"},
	}
	for _, tt := range tests {
		c := &Config{BuildTarget: tt.target, DBDriver: tt.driver}
		require.NoError(t, c.ResolveDefaults(), tt.target)
		assert.Equal(t, tt.want, c.DBDriver, "%s/%s", tt.target, tt.driver)
	}
}

func TestResolveDefaultsRejectsUnknowns(t *testing.T) {
	c := &Config{BuildTarget: "on-prem"}
	assert.Error(t, c.ResolveDefaults())

	c = &Config{BuildTarget: "local", DBDriver: "oracle"}
	assert.Error(t, c.ResolveDefaults())
}

func TestEnvPrefixParsing(t *testing.T) {
	t.Setenv("MEMOIR_BACKEND_HTTP_PORT", "9191")
	t.Setenv("MEMOIR_BACKEND_BUILD_TARGET", "cloud-dev")
	t.Setenv("MEMOIR_BACKEND_ADMIN_EMAILS", "a@x.com,b@x.com")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, cfg.AdminEmails)
	assert.Equal(t, ":9191", cfg.GetHTTPAddr())
}

func TestNewForTesting(t *testing.T) {
	cfg := NewForTesting()
	assert.True(t, cfg.IsTesting())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "sqlite", cfg.DBDriver)
}

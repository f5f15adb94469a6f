package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
env:
  log:
    level: debug
http:
  port: 9090
  timeouts:
    read: 5s
pay:
  currency: EUR
  defaultPayPerCommission: 10
  strict: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.Read)
	assert.Equal(t, "EUR", cfg.Pay.Currency)
	assert.Equal(t, 10.0, cfg.Pay.DefaultPayPerCommission)
	assert.True(t, cfg.Pay.Strict)

	// Keys absent from the file keep their defaults
	assert.Equal(t, "json", cfg.Env.Log.Format)
	assert.Equal(t, 15*time.Second, cfg.HTTP.Timeouts.Write)
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodyBytes)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
http:
  port: 9090
  allowedOrigins: [http://a.example]
pay:
  defaultPayPerCommission: 100
`)
	t.Setenv("PAYROLL_HTTP_PORT", "7070")
	t.Setenv("PAYROLL_PAY_DEFAULTPAYPERCOMMISSION", "25")
	t.Setenv("PAYROLL_HTTP_ALLOWEDORIGINS", "http://b.example,http://c.example")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.HTTP.Port)
	assert.Equal(t, 25.0, cfg.Pay.DefaultPayPerCommission)
	assert.Equal(t, []string{"http://b.example", "http://c.example"}, cfg.HTTP.AllowedOrigins)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"port":     "http:\n  port: 70000\n",
		"level":    "env:\n  log:\n    level: loud\n",
		"currency": "pay:\n  currency: dollars\n",
		"rate":     "pay:\n  defaultPayPerCommission: -1\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_BundledConfig(t *testing.T) {
	// The package directory ships config.yaml, found by the search path
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "console", cfg.Env.Log.Format)
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"pay": map[string]any{"defaultPayPerCommission": 100},
		"env": map[string]any{"log": map[string]any{"level": "info"}},
	}

	assert.Equal(t, "pay.defaultPayPerCommission", canonicalizeEnvKey("PAY_DEFAULTPAYPERCOMMISSION", existing))
	assert.Equal(t, "env.log.level", canonicalizeEnvKey("ENV_LOG_LEVEL", existing))
	assert.Equal(t, "http.port", canonicalizeEnvKey("HTTP_PORT", existing))
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVICENOW_BASE_URL", "https://instance.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "change-adapter", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())

	// Trailing slash trimmed so the table URL does not double up.
	assert.Equal(t, "https://instance.example.com", cfg.ServiceNow.BaseURL)
	assert.Equal(t, "https://instance.example.com/api/now/table/change_request", cfg.ServiceNow.TableURL())
	assert.Equal(t, 15*time.Second, cfg.ServiceNow.Timeout())

	assert.Equal(t, 30*time.Second, cfg.Cache.TTL())
	assert.Equal(t, 60*time.Second, cfg.Probe.Interval())
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_RequiresBaseURL(t *testing.T) {
	t.Setenv("SERVICENOW_BASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVICENOW_BASE_URL")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVICENOW_BASE_URL", "https://other.example.com")
	t.Setenv("SERVICENOW_TABLE", "change_task")
	t.Setenv("ADAPTER_ID", "adapter-west-1")
	t.Setenv("PROBE_INTERVAL_SECONDS", "0")
	t.Setenv("RECORD_CACHE_TTL_SECONDS", "120")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://other.example.com/api/now/table/change_task", cfg.ServiceNow.TableURL())
	assert.Equal(t, "adapter-west-1", cfg.App.AdapterID)
	assert.Equal(t, time.Duration(0), cfg.Probe.Interval())
	assert.Equal(t, 120*time.Second, cfg.Cache.TTL())
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("SERVICENOW_BASE_URL", "https://instance.example.com")
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

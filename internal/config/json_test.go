package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	body := `{
		"app": {"password_hash_cost": 12, "log_level": "info", "version": "1.0.0"},
		"storage": {"db": {"driver": "sqlite", "dsn": "file:courses.db", "max_open_conns": 2}},
		"server": {
			"http_address": ":8080",
			"read_timeout": "5s",
			"write_timeout": "6s",
			"shutdown_timeout": "7s"
		},
		"adapter": {
			"http_address": "http://localhost:8080",
			"request_timeout": "30s",
			"email": "joe@smith.com",
			"password": "joepassword"
		}
	}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:courses.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 6*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 7*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "joe@smith.com", cfg.Adapter.Email)
	assert.Equal(t, "joepassword", cfg.Adapter.Password)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := Duration(2 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"2s"`, string(out))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 12*time.Second, c.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, `{"server_endpoint_addr":"json:1","request_timeout":"3s"}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "json:1", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)

	t.Setenv(EnvPrefix+"ADDR", "env:2")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env:2", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_PartialJSONKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeTempJSON(t, `{"request_timeout":"1s"}`))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "read config")

	_, err = LoadConfig(writeTempJSON(t, `{`))
	assert.ErrorContains(t, err, "parse config")

	t.Setenv(EnvPrefix+"REQUEST_TIMEOUT", "soon")
	_, err = LoadConfig("")
	assert.ErrorContains(t, err, "environment")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_ENV", "missing-"+t.Name())
	t.Setenv("PORT", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, 10000, cfg.Port)
	assert.Equal(t, "./public", cfg.StaticPath)
	assert.Equal(t, int64(65536), cfg.ReadLimit)
	assert.Equal(t, 54*time.Second, cfg.PingPeriod)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
	assert.Equal(t, []string{"stun:stun.l.google.com:19302"}, cfg.ICEServers)
	assert.False(t, cfg.TLSEnabled())
}

func TestLoad_PortFromEnvAndFlag(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "8443")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 8443, cfg.Port)

	cfg, err = Load([]string{"--port", "9000", "--mode", "debug"})
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.Mode)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "relay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 7000
static_path: /srv/web
ping_period: 20s
tls_cert: cert.pem
tls_key: key.pem
ice_servers:
  - stun:stun.example.org:3478
`), 0o600))

	cfg, err := Load([]string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "/srv/web", cfg.StaticPath)
	assert.Equal(t, 20*time.Second, cfg.PingPeriod)
	assert.True(t, cfg.TLSEnabled())
	assert.Equal(t, []string{"stun:stun.example.org:3478"}, cfg.ICEServers)
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	t.Run("explicit file missing", func(t *testing.T) {
		_, err := Load([]string{"--config", filepath.Join(dir, "nope.yaml")})
		assert.Error(t, err)
	})

	t.Run("half TLS", func(t *testing.T) {
		path := filepath.Join(dir, "tls.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tls_cert: cert.pem\n"), 0o600))
		_, err := Load([]string{"--config", path})
		assert.ErrorContains(t, err, "invalid config")
	})

	t.Run("bad mode", func(t *testing.T) {
		_, err := Load([]string{"--mode", "verbose"})
		assert.ErrorContains(t, err, "invalid config")
	})

	t.Run("limit without interval", func(t *testing.T) {
		path := filepath.Join(dir, "limit.yaml")
		require.NoError(t, os.WriteFile(path, []byte("conn_limit: 5\nconn_interval: 0s\n"), 0o600))
		_, err := Load([]string{"--config", path})
		assert.ErrorContains(t, err, "ConnInterval")
	})

	t.Run("limiter disabled needs no interval", func(t *testing.T) {
		path := filepath.Join(dir, "nolimit.yaml")
		require.NoError(t, os.WriteFile(path, []byte("conn_limit: 0\nconn_interval: 0s\n"), 0o600))
		cfg, err := Load([]string{"--config", path})
		require.NoError(t, err)
		assert.Zero(t, cfg.ConnLimit)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := Load([]string{"--nope"})
		assert.Error(t, err)
	})
}

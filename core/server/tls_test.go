package server_test

import (
	"crypto/tls"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rwserver/core/server"
)

func TestDefaultTLSConfig(t *testing.T) {
	cfg := server.DefaultTLSConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)
	assert.Contains(t, cfg.CipherSuites, uint16(tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256))
	assert.Contains(t, cfg.CipherSuites, uint16(tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256))
	assert.Contains(t, cfg.CurvePreferences, tls.X25519)
}

func TestModernTLSConfig(t *testing.T) {
	cfg := server.ModernTLSConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, uint16(tls.VersionTLS13), cfg.MinVersion)
	assert.Empty(t, cfg.CipherSuites) // TLS 1.3 auto-selects cipher suites
}

func TestLoadTLSConfig(t *testing.T) {
	t.Run("empty paths", func(t *testing.T) {
		cfg, err := server.LoadTLSConfig("", "key.pem")
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, server.ErrEmptyCertPath)
	})

	t.Run("missing files", func(t *testing.T) {
		cfg, err := server.LoadTLSConfig("/nonexistent/cert.pem", "/nonexistent/key.pem")
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, server.ErrFailedLoadCert)
	})
}

func TestNewFailsWithInvalidTLSFiles(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.Port = 0
	cfg.TLSCertFile = "/nonexistent/cert.pem"
	cfg.TLSKeyFile = "/nonexistent/key.pem"

	srv, err := server.New(cfg, nil, nil)
	assert.Nil(t, srv)
	assert.ErrorIs(t, err, server.ErrFailedLoadCert)
}

package config

import (
	"encoding/base64"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears a variable for the test while keeping t.Setenv's restore.
func unsetenv(t *testing.T, key string) {
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_PATH", "UPLOAD_DIR", "BRAND_NAME", "WHATSAPP_NUMBER", "CSRF_KEY", "SESSION_KEY", "COOKIE_SECURE"} {
		unsetenv(t, key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8585", cfg.Port)
	assert.Equal(t, "./boutique.db", cfg.DataPath)
	assert.Equal(t, "./static/uploads", cfg.UploadDir)
	assert.Equal(t, "Aurelia Couture", cfg.BrandName)
	assert.False(t, cfg.CookieSecure)
	assert.Len(t, cfg.CSRFKey, 32, "missing key gets a random 32-byte replacement")
	assert.Len(t, cfg.SessionKey, 32)
}

func TestLoadConfigInvalidPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8585", cfg.Port)
}

func TestLoadConfigDecodesKeys(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	t.Setenv("SESSION_KEY", base64.StdEncoding.EncodeToString(key))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, key, cfg.SessionKey)
}

func TestLoadConfigRejectsShortKeys(t *testing.T) {
	t.Setenv("CSRF_KEY", base64.StdEncoding.EncodeToString([]byte("short")))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Len(t, cfg.CSRFKey, 32)
	assert.NotEqual(t, []byte("short"), cfg.CSRFKey)
}

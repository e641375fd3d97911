package config

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DataPath       string
	UploadDir      string
	CSRFKey        []byte
	SessionKey     []byte
	CookieDomain   string
	CookieSecure   bool
	BrandName      string
	WhatsAppNumber string
}

func LoadConfig() (*Config, error) {
	// A local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8585"),
		DataPath:       getEnv("DATA_PATH", "./boutique.db"),
		UploadDir:      getEnv("UPLOAD_DIR", "./static/uploads"),
		CookieDomain:   getEnv("COOKIE_DOMAIN", ""),
		CookieSecure:   getEnv("COOKIE_SECURE", "false") == "true",
		BrandName:      getEnv("BRAND_NAME", "Aurelia Couture"),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", ""),
	}

	cfg.CSRFKey = keyFromEnv("CSRF_KEY")
	cfg.SessionKey = keyFromEnv("SESSION_KEY")

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid PORT environment variable. Falling back to default.", "PORT", os.Getenv("PORT"))
		cfg.Port = "8585"
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// keyFromEnv decodes a base64 key from the environment. Missing or
// undersized keys get a random replacement so development still works, at
// the cost of sessions/tokens not surviving a restart.
func keyFromEnv(name string) []byte {
	raw := os.Getenv(name)
	if raw == "" {
		slog.Warn("Key not set, generating a random one. Set it in production!", "env", name)
		return randomBytes(32)
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil || len(decoded) < 32 {
		slog.Warn("Key is invalid or shorter than 32 bytes, generating a random one. Set a secure key in production!", "env", name)
		return randomBytes(32)
	}
	return decoded
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively unrecoverable for key material
		slog.Error("Failed to read random bytes", "error", err)
		os.Exit(1)
	}
	return b
}

package config

import (
	"os"
	"strings"
)

// Config is the process configuration, read once at startup from the
// environment.
type Config struct {
	Mode     string // dev|prod
	HTTPAddr string

	DBDriver string // sqlite|postgres
	DBDSN    string

	BlobBasePath string // root directory for generated artifacts
	InboxDir     string // optional drop directory watched for documents

	AuthSecret      string // HMAC secret for access tokens
	AdminUser       string
	AdminPassHash   string // bcrypt hash of the admin password
	EnableGuestAuth bool

	CORSAllowedOrigins []string
	CORSAllowedHeaders []string
}

func FromEnv() Config {
	return Config{
		Mode:     envOr("MODE", "dev"),
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),

		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    os.Getenv("DB_DSN"),

		BlobBasePath: envOr("BLOB_BASE_PATH", "./data/blobs"),
		InboxDir:     os.Getenv("INBOX_DIR"),

		AuthSecret:      envOr("AUTH_HMAC_SECRET", "dev-secret-change-me"),
		AdminUser:       envOr("ADMIN_USER", "admin"),
		AdminPassHash:   os.Getenv("ADMIN_PASS_HASH"),
		EnableGuestAuth: envBool("ENABLE_GUEST_AUTH", true),

		CORSAllowedOrigins: csvOr("CORS_ORIGINS", []string{"*"}),
		CORSAllowedHeaders: csvOr("CORS_HEADERS", []string{"Accept", "Authorization", "Content-Type"}),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := strings.ToLower(os.Getenv(key))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func csvOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string

	// Optional organizational SSO (OIDC). SSO endpoints answer 503 when unset.
	OIDC_ISSUER        string
	OIDC_CLIENT_ID     string
	OIDC_CLIENT_SECRET string
	OIDC_REDIRECT_URL  string

	// Where the portal frontend lives; the SSO callback redirects here with the token.
	PORTAL_URL string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	OIDC_ISSUER = getEnv("OIDC_ISSUER", "")
	OIDC_CLIENT_ID = getEnv("OIDC_CLIENT_ID", "")
	OIDC_CLIENT_SECRET = getEnv("OIDC_CLIENT_SECRET", "")
	OIDC_REDIRECT_URL = getEnv("OIDC_REDIRECT_URL", "")

	PORTAL_URL = getEnv("PORTAL_URL", "http://localhost:3000/portal")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

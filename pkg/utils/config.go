package utils

import (
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

func LoadAuthConfig() AuthConfig {
	secret := GetEnv("CATALOGOHUB_JWT_SECRET", "dev-secret-change-me")
	issuer := GetEnv("CATALOGOHUB_JWT_ISSUER", "catalogohub")

	// token lifetime in hours, default 2h
	dur := 2 * time.Hour
	if ttl := os.Getenv("CATALOGOHUB_JWT_TTL_HOURS"); ttl != "" {
		if n, err := strconv.Atoi(ttl); err == nil && n > 0 {
			dur = time.Duration(n) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: dur,
	}
}

type ServerConfig struct {
	Addr string
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Addr: GetEnv("CATALOGOHUB_HTTP_ADDR", ":8080"),
	}
}

type UpstreamConfig struct {
	RawgBaseURL  string
	RawgAPIKey   string
	JikanBaseURL string
}

func LoadUpstreamConfig() UpstreamConfig {
	return UpstreamConfig{
		RawgBaseURL:  GetEnv("CATALOGOHUB_RAWG_BASE_URL", "https://api.rawg.io/api"),
		RawgAPIKey:   GetEnv("CATALOGOHUB_RAWG_API_KEY", ""),
		JikanBaseURL: GetEnv("CATALOGOHUB_JIKAN_BASE_URL", "https://api.jikan.moe/v4"),
	}
}

// GetEnv returns the environment value for key, or defaultValue when unset
// or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the environment-driven settings. Every field has a working
// default so the server runs with no .env at all.
type Config struct {
	Port      string
	JWTSecret string
	DevMode   bool

	RateLimitPerMinute int

	// NewUserSecurityView grants the security screen to freshly created
	// employee accounts.
	NewUserSecurityView bool

	// NoticeRecipient receives shortage and attendance emails.
	NoticeRecipient string

	AllowedOrigins []string
}

func Load() Config {
	return Config{
		Port:                envOr("PORT", "8080"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		DevMode:             envBool("DEV_MODE", false),
		RateLimitPerMinute:  envInt("RATE_LIMIT_PER_MINUTE", 100),
		NewUserSecurityView: envBool("NEW_USER_SECURITY_VIEW", true),
		NoticeRecipient:     envOr("NOTICE_RECIPIENT", "manager@bt.local"),
		AllowedOrigins:      envList("ALLOWED_ORIGINS", []string{"*"}),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

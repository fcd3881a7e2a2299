package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads environment variables from .env files.
// Files are loaded in order; earlier files take precedence over later ones.
// Missing files are silently ignored.
func LoadEnvFiles(files ...string) {
	if len(files) == 0 {
		files = []string{".env.local", ".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}
}

// lookupEnv resolves a variable case-insensitively: the exact name first,
// then upper-case, then lower-case.
func lookupEnv(name string) (string, bool) {
	if v, ok := os.LookupEnv(name); ok {
		return v, true
	}
	if v, ok := os.LookupEnv(strings.ToUpper(name)); ok {
		return v, true
	}
	if v, ok := os.LookupEnv(strings.ToLower(name)); ok {
		return v, true
	}
	return "", false
}

func getString(name, fallback string) string {
	if v, ok := lookupEnv(name); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(name string, fallback int) int {
	if v, ok := lookupEnv(name); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getFloat(name string, fallback float64) float64 {
	if v, ok := lookupEnv(name); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getBool(name string, fallback bool) bool {
	if v, ok := lookupEnv(name); ok && v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return fallback
}

package config

import (
	"os"
	"strconv"
	"time"
)

type GlobalConfig struct {
	SessionTTL    time.Duration // lifetime of a regular session
	RememberMeTTL time.Duration // lifetime of a remember-me session
	ServerPort    string
	LogLevel      string
}

func LoadGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		SessionTTL:    time.Duration(GetEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		RememberMeTTL: time.Duration(GetEnvInt("REMEMBER_ME_TTL_HOURS", 720)) * time.Hour,
		ServerPort:    GetEnvOrDefault("SERVER_PORT", "8080"),
		LogLevel:      GetEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// GetEnv retrieves the value of the environment variable named by the key.
func GetEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	panic("critical config missing: " + key)
}

// GetEnvOrDefault retrieves the value or returns default if not set.
func GetEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt parses an integer variable, falling back to defaultValue when unset or malformed.
func GetEnvInt(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"seungpyo.lee/SocialFeed/pkg/config"
)

// SocialConfig extends GlobalConfig with social-service specific configurations.
type SocialConfig struct {
	config.GlobalConfig
	DBDriver       string // postgres or mysql
	DBDSN          string
	DBMaxOpenConns int
	DBMaxIdleConns int
	AllowedOrigin  string // single origin allowed to make credentialed calls
}

func LoadSocialConfig() *SocialConfig {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}
	if path := os.Getenv("SOCIAL_CONFIG_FILE"); path != "" {
		if err := ApplyFileDefaults(path); err != nil {
			panic(err)
		}
	}
	return &SocialConfig{
		GlobalConfig:   *config.LoadGlobalConfig(),
		DBDriver:       strings.ToLower(config.GetEnvOrDefault("DB_DRIVER", "postgres")),
		DBDSN:          config.GetEnv("DB_DSN"),
		DBMaxOpenConns: config.GetEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: config.GetEnvInt("DB_MAX_IDLE_CONNS", 10),
		AllowedOrigin:  config.GetEnvOrDefault("ALLOWED_ORIGIN", "http://localhost:5173"),
	}
}

// ApplyFileDefaults reads a flat YAML map of ENV_KEY: value pairs and exports every key that is
// not already present in the environment. Real environment variables always win.
func ApplyFileDefaults(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	for key, value := range values {
		key = strings.ToUpper(key)
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		if err := os.Setenv(key, fmt.Sprint(value)); err != nil {
			return fmt.Errorf("failed to export %s: %w", key, err)
		}
	}
	return nil
}

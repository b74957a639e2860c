package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Club struct {
		Name           string `yaml:"name" env:"CLUB_NAME"`
		WhatsAppNumber string `yaml:"whatsapp_number" env:"CLUB_WHATSAPP_NUMBER"`
		ContactEmail   string `yaml:"contact_email" env:"CLUB_CONTACT_EMAIL"`
		JoinMessage    string `yaml:"join_message" env:"CLUB_JOIN_MESSAGE"`
		AvatarBaseURL  string `yaml:"avatar_base_url" env:"CLUB_AVATAR_BASE_URL"`
	} `yaml:"club"`

	Listing struct {
		UpcomingPreview int `yaml:"upcoming_preview" env:"LISTING_UPCOMING_PREVIEW"`
		DefaultPageSize int `yaml:"default_page_size" env:"LISTING_DEFAULT_PAGE_SIZE"`
		MaxPageSize     int `yaml:"max_page_size" env:"LISTING_MAX_PAGE_SIZE"`
	} `yaml:"listing"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		// Read file
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse YAML into Config structure
		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	err := loadFromEnv(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Club defaults
	config.Club.Name = "ECHO"
	config.Club.WhatsAppNumber = "919110687983"
	config.Club.ContactEmail = "prajwalganiga06@gmail.com"
	config.Club.JoinMessage = "Hi! I would like to join the ECHO club."
	config.Club.AvatarBaseURL = "https://ui-avatars.com/api/"

	// Listing defaults
	config.Listing.UpcomingPreview = 3
	config.Listing.DefaultPageSize = 20
	config.Listing.MaxPageSize = 100

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	// Recursively process the config structure and look for env tags
	err := processStructFields(config)
	if err != nil {
		return err
	}

	return nil
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	// Ensure required fields are set
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Club.WhatsAppNumber == "" {
		return fmt.Errorf("club whatsapp number is required")
	}

	if config.Club.ContactEmail == "" {
		return fmt.Errorf("club contact email is required")
	}

	if config.Listing.UpcomingPreview < 0 {
		return fmt.Errorf("upcoming preview count cannot be negative")
	}

	if config.Listing.DefaultPageSize <= 0 || config.Listing.MaxPageSize <= 0 {
		return fmt.Errorf("page sizes must be positive")
	}

	if config.Listing.DefaultPageSize > config.Listing.MaxPageSize {
		return fmt.Errorf("default page size cannot exceed max page size")
	}

	return nil
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	// Convert string to lowercase for checking
	valueLower := strings.ToLower(valueStr)
	if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
		return true
	}
	if valueLower == "false" || valueLower == "0" || valueLower == "no" {
		return false
	}

	return defaultValue
}

// GetEnvAsDuration gets an environment variable as a duration or returns a default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

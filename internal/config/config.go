package config

import (
	"fmt"

	"maternal-care-backend/internal/schedule"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Schedule template configuration
	TemplateDir string `mapstructure:"TEMPLATE_DIR"`

	// National health registry (backend of record) configuration. Sync is
	// disabled when the base URL is empty.
	RegistryBaseURL string `mapstructure:"REGISTRY_BASE_URL"`
	RegistryToken   string `mapstructure:"REGISTRY_TOKEN"`

	// Grace windows for timeline status evaluation
	VaccinationGraceDays int `mapstructure:"VACCINATION_GRACE_DAYS"`
	CheckupEarlyWeeks    int `mapstructure:"CHECKUP_EARLY_WEEKS"`
	CheckupLateWeeks     int `mapstructure:"CHECKUP_LATE_WEEKS"`
	MilestoneEarlyWeeks  int `mapstructure:"MILESTONE_EARLY_WEEKS"`
	MilestoneLateWeeks   int `mapstructure:"MILESTONE_LATE_WEEKS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "maternal_care")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Schedule template defaults
	viper.SetDefault("TEMPLATE_DIR", "./config/templates")

	// Registry defaults: no registry configured, records stay pending locally
	viper.SetDefault("REGISTRY_BASE_URL", "")
	viper.SetDefault("REGISTRY_TOKEN", "")

	// Grace window defaults: vaccinations stay due for two weeks past the
	// due date; checkups open one week early and close one week late;
	// pregnancy landmarks open one week early and close at the exact week.
	viper.SetDefault("VACCINATION_GRACE_DAYS", 14)
	viper.SetDefault("CHECKUP_EARLY_WEEKS", 1)
	viper.SetDefault("CHECKUP_LATE_WEEKS", 1)
	viper.SetDefault("MILESTONE_EARLY_WEEKS", 1)
	viper.SetDefault("MILESTONE_LATE_WEEKS", 0)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.TemplateDir == "" {
		return fmt.Errorf("template directory is required")
	}

	if config.VaccinationGraceDays < 0 {
		return fmt.Errorf("VACCINATION_GRACE_DAYS must not be negative")
	}
	for key, value := range map[string]int{
		"CHECKUP_EARLY_WEEKS":   config.CheckupEarlyWeeks,
		"CHECKUP_LATE_WEEKS":    config.CheckupLateWeeks,
		"MILESTONE_EARLY_WEEKS": config.MilestoneEarlyWeeks,
		"MILESTONE_LATE_WEEKS":  config.MilestoneLateWeeks,
	} {
		if value < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
	}

	return nil
}

// GracePolicy maps the configured grace windows into the evaluator's policy
func (c *Config) GracePolicy() schedule.GracePolicy {
	return schedule.GracePolicy{
		VaccinationGraceDays: c.VaccinationGraceDays,
		CheckupEarlyWeeks:    c.CheckupEarlyWeeks,
		CheckupLateWeeks:     c.CheckupLateWeeks,
		MilestoneEarlyWeeks:  c.MilestoneEarlyWeeks,
		MilestoneLateWeeks:   c.MilestoneLateWeeks,
	}
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App          AppConfig          `mapstructure:"app"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Cache        CacheConfig        `mapstructure:"cache"`
	Payment      PaymentConfig      `mapstructure:"payment"`
	Registration RegistrationConfig `mapstructure:"registration"`
	Log          LogConfig          `mapstructure:"log"`
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
	ReadTimeout    int    `mapstructure:"read_timeout"`
	WriteTimeout   int    `mapstructure:"write_timeout"`
	MaxHeaderBytes int    `mapstructure:"max_header_bytes"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// CacheConfig holds cache configuration
type CacheConfig struct {
	Type     string `mapstructure:"type"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// PaymentConfig holds payment gateway configuration. KeyID and
// KeySecret have no defaults; the server refuses to start without them.
type PaymentConfig struct {
	Gateway   string `mapstructure:"gateway"`
	KeyID     string `mapstructure:"key_id"`
	KeySecret string `mapstructure:"key_secret"`
	BaseURL   string `mapstructure:"base_url"`
	Currency  string `mapstructure:"currency"`
	Merchant  string `mapstructure:"merchant"`
}

// RegistrationConfig holds the fest calendar dates (YYYY-MM-DD).
type RegistrationConfig struct {
	EventDate        string `mapstructure:"event_date"`
	EndDate          string `mapstructure:"end_date"`
	EarlyBirdEndDate string `mapstructure:"early_bird_end_date"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

var config *Config

// Init initializes the configuration
func Init() {
	config = &Config{}

	// Set default values
	setDefaults()

	// Unmarshal configuration from viper
	if err := viper.Unmarshal(config); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}
}

// Get returns the global configuration
func Get() *Config {
	if config == nil {
		Init()
	}
	return config
}

// Validate checks the settings the persistence-backed server cannot
// run without. Called at server startup; a failure is fatal there.
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.Name == "" {
		return fmt.Errorf("database host and name must be configured")
	}
	if c.Payment.KeyID == "" {
		return fmt.Errorf("payment.key_id is not set (PAYMENT_KEY_ID)")
	}
	if c.Payment.KeySecret == "" {
		return fmt.Errorf("payment.key_secret is not set (PAYMENT_KEY_SECRET)")
	}
	if _, err := c.Registration.EarlyBirdEnd(); err != nil {
		return err
	}
	if _, err := c.Registration.End(); err != nil {
		return err
	}
	return nil
}

// EarlyBirdEnd parses the configured early-bird end date.
func (r RegistrationConfig) EarlyBirdEnd() (time.Time, error) {
	t, err := time.Parse("2006-01-02", r.EarlyBirdEndDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid registration.early_bird_end_date: %w", err)
	}
	return t, nil
}

// End parses the configured registration end date.
func (r RegistrationConfig) End() (time.Time, error) {
	t, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid registration.end_date: %w", err)
	}
	return t, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// App defaults
	viper.SetDefault("app.name", "TECHNOPEDIA 14")
	viper.SetDefault("app.version", "14.0.0")
	viper.SetDefault("app.environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 15)
	// Game registration requests stay open while the hosted checkout is
	// pending, so responses cannot have a write deadline.
	viper.SetDefault("server.write_timeout", 0)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "technopedia")
	viper.SetDefault("database.ssl_mode", "disable")

	// Cache defaults
	viper.SetDefault("cache.type", "redis")
	viper.SetDefault("cache.host", "localhost")
	viper.SetDefault("cache.port", 6379)
	viper.SetDefault("cache.password", "")
	viper.SetDefault("cache.db", 0)

	// Payment defaults; key_id/key_secret intentionally have none
	viper.SetDefault("payment.gateway", "razorpay")
	viper.SetDefault("payment.base_url", "https://api.razorpay.com/v1")
	viper.SetDefault("payment.currency", "INR")
	viper.SetDefault("payment.merchant", "TECHNOPEDIA 14")

	// Fest calendar defaults
	viper.SetDefault("registration.event_date", "2025-09-17")
	viper.SetDefault("registration.end_date", "2025-09-19")
	viper.SetDefault("registration.early_bird_end_date", "2025-09-10")

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file_path", "")
}

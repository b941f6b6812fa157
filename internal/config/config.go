package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env           string    `mapstructure:"env"`      // current application environment (local, dev, prod etc)
	TelegramToken string    `mapstructure:"-"`        // Telegram API token loaded from environment
	OwnerID       int64     `mapstructure:"-"`        // Telegram ID of the bot owner, loaded from environment
	DB            DB        `mapstructure:"database"` // database configuration section
	Providers     Providers `mapstructure:"providers"`
	Cache         Cache     `mapstructure:"cache"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Providers contains remote content source endpoints and the shared request timeout.
type Providers struct {
	QuranBaseURL  string        `mapstructure:"quran_base_url"`
	HadithBaseURL string        `mapstructure:"hadith_base_url"`
	AthkarBaseURL string        `mapstructure:"athkar_base_url"`
	PrayerBaseURL string        `mapstructure:"prayer_base_url"`
	HadithAPIKey  string        `mapstructure:"-"` // loaded from environment
	Timeout       time.Duration `mapstructure:"timeout"`
}

// Cache controls the in-memory content page cache.
type Cache struct {
	Size int           `mapstructure:"size"` // maximum number of cached pages
	TTL  time.Duration `mapstructure:"ttl"`  // page expiry
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Pull in a local .env file if present.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("providers.quran_base_url", "https://api.alquran.cloud/v1")
	v.SetDefault("providers.hadith_base_url", "https://api.hadithapi.com/api/v1")
	v.SetDefault("providers.athkar_base_url", "https://ahegazy.github.io/muslimKit/json")
	v.SetDefault("providers.prayer_base_url", "https://api.aladhan.com/v1")
	v.SetDefault("providers.timeout", "15s")
	v.SetDefault("cache.size", 128)
	v.SetDefault("cache.ttl", "10m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("owner_id", "OWNER_ID")
	_ = v.BindEnv("hadith_api_key", "HADITH_API_KEY")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramToken = v.GetString("telegram_api_token")
	if cfg.TelegramToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.OwnerID = v.GetInt64("owner_id")
	if cfg.OwnerID == 0 {
		return nil, ErrMissingEnvironmentVariables
	}

	// The hadith provider requires a key; the other providers are open.
	cfg.Providers.HadithAPIKey = v.GetString("hadith_api_key")

	return &cfg, nil
}

// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Storage  StorageConfig  `mapstructure:"storage" validate:"required"`
	Study    StudyConfig    `mapstructure:"study"`
	Database DatabaseConfig `mapstructure:"database"`
}

// StorageConfig selects where review logs and the streak record live.
type StorageConfig struct {
	Mode        string `mapstructure:"mode" validate:"oneof=yaml mysql"`
	ReviewsFile string `mapstructure:"reviews_file"`
	StreakFile  string `mapstructure:"streak_file"`
}

// StudyConfig holds the study constants the engine takes as parameters.
type StudyConfig struct {
	// GoodRecallThreshold is the minimum score counted as a perfect recall.
	GoodRecallThreshold int `mapstructure:"good_recall_threshold" validate:"gte=0,lte=100"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port" validate:"gte=0,lte=65535"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	TLS             bool   `mapstructure:"tls"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // seconds
}

// ConfigLoader reads, unmarshals and validates a Config.
type ConfigLoader struct {
	viper *viper.Viper
}

// NewConfigLoader creates a loader. With an empty configFile it falls back
// to config.yml in the working directory or $HOME/.config/kioku.
func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/kioku")
	}

	v.SetDefault("storage.mode", "yaml")
	v.SetDefault("storage.reviews_file", filepath.Join("data", "reviews.yml"))
	v.SetDefault("storage.streak_file", filepath.Join("data", "streak.yml"))
	v.SetDefault("study.good_recall_threshold", 80)
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)

	// Bind database credentials to environment variables only (not from config file)
	if err := v.BindEnv("database.username", "KIOKU_DB_USERNAME"); err != nil {
		return nil, fmt.Errorf("failed to bind KIOKU_DB_USERNAME environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "KIOKU_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind KIOKU_DB_PASSWORD environment variable: %w", err)
	}

	return &ConfigLoader{viper: v}, nil
}

// Load reads the configuration file and validates the result.
func (l *ConfigLoader) Load() (*Config, error) {
	if err := l.viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := l.viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	Logger      LoggerConfig
	Storage     StorageConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig describes where the wardrobe snapshot lives on disk.
type StorageConfig struct {
	// Dir is the data directory holding both the SQLite database and the
	// plain-file fallback store.
	Dir string
	// Database is the SQLite file name inside Dir.
	Database string
	// WriteInterval paces background snapshot writes.
	WriteInterval time.Duration
	// CacheSize and CacheTTL size the read-through cache in front of the
	// key-value stores.
	CacheSize int
	CacheTTL  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/wardrobe/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/wardrobe/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Storage.Dir = viper.GetString("storage.dir")
	cfg.Storage.Database = viper.GetString("storage.database")
	cfg.Storage.WriteInterval = viper.GetDuration("storage.write_interval")
	cfg.Storage.CacheSize = viper.GetInt("storage.cache_size")
	cfg.Storage.CacheTTL = viper.GetDuration("storage.cache_ttl")
	if dir := viper.GetString("wardrobe_data_dir"); dir != "" {
		cfg.Storage.Dir = dir
	}

	if cfg.Storage.Dir == "" {
		return nil, fmt.Errorf("storage.dir must not be empty")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.dir", "./data")
	viper.SetDefault("storage.database", "wardrobe.db")
	viper.SetDefault("storage.write_interval", "200ms")
	viper.SetDefault("storage.cache_size", 64)
	viper.SetDefault("storage.cache_ttl", "5m")
}

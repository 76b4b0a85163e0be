// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the analyzer service.
type Config struct {
	YouTube   YouTubeConfig
	Cache     CacheConfig
	Logging   LoggingConfig
	Database  DatabaseConfig
	Server    ServerConfig
	Retention RetentionConfig
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

// DatabaseConfig contains database connection configuration.
type DatabaseConfig struct {
	Host           string
	Name           string
	User           string
	Password       string
	Port           int
	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
	MaxLifetime    time.Duration
}

// YouTubeConfig contains YouTube Data API configuration.
type YouTubeConfig struct {
	APIKey         string
	RegionCode     string
	DailyQuota     int
	QuotaThreshold int
}

// CacheConfig contains the redis cache and task queue configuration. An empty
// URL disables caching and makes snapshot persistence synchronous.
type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

// RetentionConfig controls cleanup of stored analysis snapshots. A zero
// MaxAge disables the sweeps.
type RetentionConfig struct {
	MaxAge        time.Duration
	SweepInterval time.Duration
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string
	File  string
}

// Load loads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	// Server
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.shutdowntimeout", 30*time.Second)

	// Database
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "channel_analyzer")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.maxconnections", 10)
	viper.SetDefault("database.minconnections", 5)
	viper.SetDefault("database.maxidletime", 10*time.Minute)
	viper.SetDefault("database.maxlifetime", 1*time.Hour)

	// YouTube
	viper.SetDefault("youtube.apikey", "")
	viper.SetDefault("youtube.regioncode", "US")
	viper.SetDefault("youtube.dailyquota", 10000)
	viper.SetDefault("youtube.quotathreshold", 90)

	// Cache
	viper.SetDefault("cache.redisurl", "")
	viper.SetDefault("cache.ttl", 15*time.Minute)

	// Retention
	viper.SetDefault("retention.maxage", 90*24*time.Hour)
	viper.SetDefault("retention.sweepinterval", 12*time.Hour)

	// Logging
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")
}

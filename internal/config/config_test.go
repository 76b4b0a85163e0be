package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		cleanup func()
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name: "load with defaults (no config file)",
			setup: func() {
				viper.Reset()
			},
			cleanup: func() {},
			wantErr: false,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Server.Port != 8080 {
					t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
				}
				if cfg.Database.Host != "localhost" {
					t.Errorf("Database.Host = %s, want localhost", cfg.Database.Host)
				}
				if cfg.Database.Name != "channel_analyzer" {
					t.Errorf("Database.Name = %s, want channel_analyzer", cfg.Database.Name)
				}
				if cfg.YouTube.RegionCode != "US" {
					t.Errorf("YouTube.RegionCode = %s, want US", cfg.YouTube.RegionCode)
				}
				if cfg.YouTube.DailyQuota != 10000 {
					t.Errorf("YouTube.DailyQuota = %d, want 10000", cfg.YouTube.DailyQuota)
				}
				if cfg.Cache.TTL != 15*time.Minute {
					t.Errorf("Cache.TTL = %v, want 15m", cfg.Cache.TTL)
				}
				if cfg.Logging.Level != "info" {
					t.Errorf("Logging.Level = %s, want info", cfg.Logging.Level)
				}
			},
		},
		{
			name: "load with environment variables",
			setup: func() {
				viper.Reset()
				viper.SetEnvPrefix("APP")
				viper.AutomaticEnv()
				os.Setenv("APP_SERVER_PORT", "9090")
				os.Setenv("APP_YOUTUBE_APIKEY", "test-key")
				os.Setenv("APP_CACHE_REDISURL", "redis://localhost:6379/1")
				// Manually bind env vars since AutomaticEnv doesn't work with nested keys
				viper.BindEnv("server.port", "APP_SERVER_PORT")
				viper.BindEnv("youtube.apikey", "APP_YOUTUBE_APIKEY")
				viper.BindEnv("cache.redisurl", "APP_CACHE_REDISURL")
			},
			cleanup: func() {
				os.Unsetenv("APP_SERVER_PORT")
				os.Unsetenv("APP_YOUTUBE_APIKEY")
				os.Unsetenv("APP_CACHE_REDISURL")
			},
			wantErr: false,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Server.Port != 9090 {
					t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
				}
				if cfg.YouTube.APIKey != "test-key" {
					t.Errorf("YouTube.APIKey = %s, want test-key", cfg.YouTube.APIKey)
				}
				if cfg.Cache.RedisURL != "redis://localhost:6379/1" {
					t.Errorf("Cache.RedisURL = %s, want redis://localhost:6379/1", cfg.Cache.RedisURL)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.cleanup()

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

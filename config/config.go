package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Hosted backend
	Backend BackendConfig

	// Realtime change notifications
	Realtime RealtimeConfig

	// Session / identity
	Session SessionConfig

	// Export
	Export ExportConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points at the hosted backend service (tables, RPC, storage,
// auth) and carries the fixed per-mutation timeout.
type BackendConfig struct {
	URL            string
	AnonKey        string
	ServiceKey     string
	StorageBucket  string
	TimeoutSeconds int
}

// RealtimeConfig secures the change-notification webhook endpoint.
type RealtimeConfig struct {
	Enabled         bool
	WebhookSecret   string
	AllowedIPs      []string
	RateLimitPerMin int
}

// SessionConfig controls tier caching and the polling fallback.
type SessionConfig struct {
	PollIntervalSeconds int
	TierCachePath       string
}

// ExportConfig controls share URL construction and the PDF render path.
type ExportConfig struct {
	ShareBaseURL string
	ChromeBin    string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Hosted backend
	cfg.Backend.URL = viper.GetString("backend.url")
	cfg.Backend.AnonKey = viper.GetString("backend.anon_key")
	cfg.Backend.ServiceKey = viper.GetString("backend.service_key")
	cfg.Backend.StorageBucket = viper.GetString("backend.storage_bucket")
	cfg.Backend.TimeoutSeconds = viper.GetInt("backend.timeout_seconds")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.URL = backendURL
	}
	if anonKey := viper.GetString("backend_anon_key"); anonKey != "" {
		cfg.Backend.AnonKey = anonKey
	}

	// Realtime webhook
	cfg.Realtime.Enabled = viper.GetBool("realtime.enabled")
	cfg.Realtime.WebhookSecret = viper.GetString("realtime.webhook_secret")
	cfg.Realtime.AllowedIPs = viper.GetStringSlice("realtime.allowed_ips")
	cfg.Realtime.RateLimitPerMin = viper.GetInt("realtime.rate_limit_per_min")
	if secret := viper.GetString("realtime_webhook_secret"); secret != "" {
		cfg.Realtime.WebhookSecret = secret
	}

	// Session
	cfg.Session.PollIntervalSeconds = viper.GetInt("session.poll_interval_seconds")
	cfg.Session.TierCachePath = viper.GetString("session.tier_cache_path")

	// Export
	cfg.Export.ShareBaseURL = viper.GetString("export.share_base_url")
	cfg.Export.ChromeBin = viper.GetString("export.chrome_bin")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	if c.HTTPServer.Port == 0 {
		return fmt.Errorf("http_server.port is required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("backend.timeout_seconds", 15)
	viper.SetDefault("backend.storage_bucket", "avatars")
	viper.SetDefault("realtime.enabled", true)
	viper.SetDefault("realtime.rate_limit_per_min", 120)
	viper.SetDefault("session.poll_interval_seconds", 60)
	viper.SetDefault("session.tier_cache_path", ".listkeeper-tier-cache.json")
	viper.SetDefault("export.share_base_url", "https://listkeeper.app/shared")
}

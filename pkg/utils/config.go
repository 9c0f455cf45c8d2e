package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Console ConsoleConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type BackendConfig struct {
	// BaseURL of the upstream Foodgram REST API
	BaseURL string
	// AdminPath is the admin API root under BaseURL
	AdminPath string
	// Timeout is the deadline applied to every outbound call
	Timeout time.Duration
}

type ConsoleConfig struct {
	SessionFile       string
	SettingsFile      string
	BadgePollInterval time.Duration
	DefaultPageSize   int
	MaxPageSize       int
	CORSOrigins       []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("ADMIN_API_PATH", "/api/admin")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 15)
	viper.SetDefault("SESSION_FILE", ".foodgram-admin/session.json")
	viper.SetDefault("SETTINGS_FILE", ".foodgram-admin/settings.json")
	viper.SetDefault("BADGE_POLL_SECONDS", 60)
	viper.SetDefault("DEFAULT_PAGE_SIZE", 20)
	viper.SetDefault("MAX_PAGE_SIZE", 100)
	viper.SetDefault("CORS_ORIGINS", "*")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Backend: BackendConfig{
			BaseURL:   viper.GetString("BACKEND_BASE_URL"),
			AdminPath: viper.GetString("ADMIN_API_PATH"),
			Timeout:   time.Duration(viper.GetInt("BACKEND_TIMEOUT_SECONDS")) * time.Second,
		},
		Console: ConsoleConfig{
			SessionFile:       viper.GetString("SESSION_FILE"),
			SettingsFile:      viper.GetString("SETTINGS_FILE"),
			BadgePollInterval: time.Duration(viper.GetInt("BADGE_POLL_SECONDS")) * time.Second,
			DefaultPageSize:   viper.GetInt("DEFAULT_PAGE_SIZE"),
			MaxPageSize:       viper.GetInt("MAX_PAGE_SIZE"),
			CORSOrigins:       viper.GetStringSlice("CORS_ORIGINS"),
		},
	}

	return config, nil
}

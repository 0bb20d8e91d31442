package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the local development backend.
const DefaultAPIURL = "http://localhost:8000"

// Config holds the application's configuration.
type Config struct {
	API struct {
		URL         string `yaml:"url"`
		AccessToken string `yaml:"access_token"`
	} `yaml:"api"`
	Prefs struct {
		Path string `yaml:"path"`
	} `yaml:"prefs"`
	Reminder struct {
		Enabled          bool   `yaml:"enabled"`
		TelegramBotToken string `yaml:"telegram_bot_token"`
		TelegramChatID   int64  `yaml:"telegram_chat_id"`
	} `yaml:"reminder"`
}

// LoadConfig reads configuration from the specified YAML file. A missing
// file yields the defaults so the client works out of the box against a
// local backend.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyFallbacks(config)
			return config, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	applyFallbacks(config)
	return config, nil
}

// applyFallbacks fills unset fields from the environment, then from
// built-in defaults. HARULOG_API_URL selects the backend origin.
func applyFallbacks(c *Config) {
	if env := os.Getenv("HARULOG_API_URL"); env != "" {
		c.API.URL = env
	}
	if c.API.URL == "" {
		c.API.URL = DefaultAPIURL
	}
	if env := os.Getenv("HARULOG_ACCESS_TOKEN"); env != "" {
		c.API.AccessToken = env
	}
	if env := os.Getenv("HARULOG_PREFS_PATH"); env != "" {
		c.Prefs.Path = env
	}
	if c.Prefs.Path == "" {
		c.Prefs.Path = defaultPrefsPath()
	}
}

func defaultPrefsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "harulog.db"
	}
	return filepath.Join(home, ".harulog", "prefs.db")
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"leakjar-cli/internal/api"

	"github.com/spf13/viper"
)

const (
	APIKey    = "api_key"
	BaseURL   = "base_url"
	Timeout   = "timeout"
	PageDelay = "page_delay"
	LogLevel  = "log_level"
	LogPretty = "log_pretty"

	envPrefix      = "LEAKJAR"
	configName     = ".leakjar"
	configFileName = ".leakjar.yaml"
)

// Settings is the resolved configuration for one CLI invocation.
type Settings struct {
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	PageDelay time.Duration
	LogLevel  string
	LogPretty bool
}

// ClientConfig converts the settings into the api client's configuration.
func (s Settings) ClientConfig() api.Config {
	cfg := api.DefaultConfig(s.APIKey)
	if s.BaseURL != "" {
		cfg.BaseURL = s.BaseURL
	}
	if s.Timeout > 0 {
		cfg.Timeout = s.Timeout
	}
	cfg.PageDelay = s.PageDelay
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(BaseURL, api.DefaultBaseURL)
	v.SetDefault(Timeout, api.DefaultTimeout)
	v.SetDefault(PageDelay, api.DefaultPageDelay)
	v.SetDefault(LogLevel, "warn")
	v.SetDefault(LogPretty, false)
}

// InitConfig loads ~/.leakjar.yaml (or cfgFile when set) and LEAKJAR_* environment
// variables into the global viper instance. A missing config file is not an error.
func InitConfig(cfgFile string) error {
	return initViper(viper.GetViper(), cfgFile)
}

func initViper(v *viper.Viper, cfgFile string) error {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(configName)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load returns the current settings from the global viper instance.
func Load() Settings {
	return load(viper.GetViper())
}

func load(v *viper.Viper) Settings {
	return Settings{
		APIKey:    v.GetString(APIKey),
		BaseURL:   v.GetString(BaseURL),
		Timeout:   v.GetDuration(Timeout),
		PageDelay: v.GetDuration(PageDelay),
		LogLevel:  v.GetString(LogLevel),
		LogPretty: v.GetBool(LogPretty),
	}
}

// SetAPIKey sets the API key in the configuration file
func SetAPIKey(key string) error {
	return set(viper.GetViper(), APIKey, key)
}

// SetBaseURL sets the API base URL in the configuration file
func SetBaseURL(url string) error {
	return set(viper.GetViper(), BaseURL, url)
}

// GetAPIKey returns the API key from the configuration
func GetAPIKey() string {
	return viper.GetString(APIKey)
}

// set stores key in the config file. Only values already in the file are
// written back with it; defaults, flags and environment values are not.
func set(v *viper.Viper, key, value string) error {
	path, err := configPath(v)
	if err != nil {
		return err
	}

	file := viper.New()
	file.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		file.SetConfigType("yaml")
	}
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		return err
	}

	v.Set(key, value)
	return nil
}

// configPath is the file in use, or ~/.leakjar.yaml when none was read.
func configPath(v *viper.Viper) (string, error) {
	if used := v.ConfigFileUsed(); used != "" {
		return used, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, configFileName), nil
}

// MaskKey hides all but the first and last four characters of key.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return "********"
	}
	return key[:4] + "********" + key[len(key)-4:]
}

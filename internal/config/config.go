package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/faize-ai/pomo/internal/timer"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the pomo configuration.
type Config struct {
	Durations     Durations     `mapstructure:"durations" yaml:"durations"`
	Prompt        bool          `mapstructure:"prompt" yaml:"prompt"`
	AutoStart     bool          `mapstructure:"auto_start" yaml:"auto_start"`
	Notifications Notifications `mapstructure:"notifications" yaml:"notifications"`
	History       History       `mapstructure:"history" yaml:"history"`
	Log           Log           `mapstructure:"log" yaml:"log"`
}

// Durations holds interval lengths in minutes.
type Durations struct {
	Work       int `mapstructure:"work" yaml:"work"`
	ShortBreak int `mapstructure:"short_break" yaml:"short_break"`
	LongBreak  int `mapstructure:"long_break" yaml:"long_break"`
}

// Timer converts the durations to a timer configuration. Out-of-range values
// fall back to the defaults.
func (d Durations) Timer() timer.Config {
	return timer.NewConfig(d.Work, d.ShortBreak, d.LongBreak)
}

// Notifications controls desktop notifications.
type Notifications struct {
	Enabled *bool  `mapstructure:"enabled" yaml:"enabled"`
	AppName string `mapstructure:"app_name" yaml:"app_name"`
}

// ShouldNotify returns whether desktop notifications are enabled.
// Defaults to true when not explicitly set.
func (n *Notifications) ShouldNotify() bool {
	if n.Enabled == nil {
		return true
	}
	return *n.Enabled
}

// History controls the session history log.
type History struct {
	Enabled *bool `mapstructure:"enabled" yaml:"enabled"`
}

// ShouldRecord returns whether session history is recorded.
// Defaults to true when not explicitly set.
func (h *History) ShouldRecord() bool {
	if h.Enabled == nil {
		return true
	}
	return *h.Enabled
}

// Log configures the log file.
type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Load loads the configuration from ~/.pomo/config.yaml or returns defaults.
// A config file set explicitly with viper.SetConfigFile takes precedence.
func Load() (*Config, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	// Set up viper; SetConfigName would discard an explicit --config file
	if viper.ConfigFileUsed() == "" {
		viper.SetConfigName("config")
		viper.AddConfigPath(configDir)
	}
	viper.SetConfigType("yaml")

	// Set defaults
	setDefaults()

	// Try to read config file, but don't fail if it doesn't exist
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error occurred
			return nil, err
		}
		// Config file not found, use defaults
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Normalize durations so the file and the timer agree
	normalized := cfg.Durations.Timer()
	cfg.Durations = Durations{
		Work:       normalized.WorkSeconds / 60,
		ShortBreak: normalized.ShortBreakSeconds / 60,
		LongBreak:  normalized.LongBreakSeconds / 60,
	}

	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(configDir, "pomo.log")
	} else if expanded, err := homedir.Expand(cfg.Log.File); err == nil {
		cfg.Log.File = expanded
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	enabled := true
	return &Config{
		Durations: Durations{
			Work:       timer.DefaultWorkMinutes,
			ShortBreak: timer.DefaultShortBreakMinutes,
			LongBreak:  timer.DefaultLongBreakMinutes,
		},
		Prompt:    true,
		AutoStart: true,
		Notifications: Notifications{
			Enabled: &enabled,
			AppName: "Pomodoro",
		},
		History: History{Enabled: &enabled},
		Log:     Log{Level: "info"},
	}
}

// setDefaults sets default configuration values.
func setDefaults() {
	def := Default()

	// Durations (minutes)
	viper.SetDefault("durations.work", def.Durations.Work)
	viper.SetDefault("durations.short_break", def.Durations.ShortBreak)
	viper.SetDefault("durations.long_break", def.Durations.LongBreak)

	// Startup behaviour
	viper.SetDefault("prompt", def.Prompt)
	viper.SetDefault("auto_start", def.AutoStart)

	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.app_name", def.Notifications.AppName)
	viper.SetDefault("history.enabled", true)

	viper.SetDefault("log.level", def.Log.Level)
	viper.SetDefault("log.file", "")
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Write saves cfg to path as YAML, creating the parent directory.
func Write(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ConfigDir returns the pomo configuration directory path.
func ConfigDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pomo"), nil
}

// ConfigFile returns the default config file path.
func ConfigFile() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	configDir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(configDir, 0755)
}

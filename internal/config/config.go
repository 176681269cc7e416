// Package config builds the immutable startup configuration from flags,
// environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jorbush/rusty-pomo/internal/core"
	"github.com/jorbush/rusty-pomo/internal/notify"
	"github.com/jorbush/rusty-pomo/internal/theme"
)

// Keys double as flag names, config file keys and (upper-cased, with
// underscores) environment variable suffixes.
const (
	KeyFocus               = "focus"
	KeyShort               = "short"
	KeyLong                = "long"
	KeyLongEvery           = "long-every"
	KeyTheme               = "theme"
	KeyNotifications       = "notifications"
	KeyNotificationSound   = "notification-sound"
	KeyNotificationSeconds = "notification-seconds"
	KeyMacOSBundleID       = "macos-bundle-id"
)

const (
	AppName   = "Rusty Pomo"
	EnvPrefix = "RUSTY_POMO"
	dirName   = "rusty-pomo"
)

var ErrInvalid = errors.New("invalid configuration")

// Largest values that still fit in a time.Duration.
const (
	maxMinutes = int64(math.MaxInt64 / time.Minute)
	maxSeconds = int64(math.MaxInt64 / time.Second)
)

// Config is built once at startup and never mutated afterwards.
type Config struct {
	FocusMinutes int `mapstructure:"focus"`
	ShortMinutes int `mapstructure:"short"`
	LongMinutes  int `mapstructure:"long"`
	LongEvery    int `mapstructure:"long-every"`

	Theme theme.Theme `mapstructure:"-"`

	Notifications       bool   `mapstructure:"notifications"`
	NotificationSound   string `mapstructure:"notification-sound"`
	NotificationSeconds int    `mapstructure:"notification-seconds"`
	MacOSBundleID       string `mapstructure:"macos-bundle-id"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		FocusMinutes:        25,
		ShortMinutes:        5,
		LongMinutes:         15,
		LongEvery:           4,
		Theme:               theme.Default,
		Notifications:       true,
		NotificationSeconds: 10,
	}
}

// RegisterFlags adds the timer flags to fs with their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.IntP(KeyFocus, "f", d.FocusMinutes, "Focus minutes")
	fs.IntP(KeyShort, "s", d.ShortMinutes, "Short break minutes")
	fs.IntP(KeyLong, "l", d.LongMinutes, "Long break minutes")
	fs.IntP(KeyLongEvery, "n", d.LongEvery, "Number of focus sessions before a long break")
	fs.String(KeyTheme, string(d.Theme), "Theme ("+strings.Join(theme.Names(), "|")+")")
	fs.Bool(KeyNotifications, d.Notifications, "Enable desktop notifications (use --notifications=false to disable)")
	fs.String(KeyNotificationSound, "", "Notification sound name (platform-dependent, e.g. Ping on macOS, message-new-instant on Linux)")
	fs.Int(KeyNotificationSeconds, d.NotificationSeconds, "Notification duration in seconds (if supported by the OS; macOS ignores it)")
	fs.String(KeyMacOSBundleID, "", "macOS only: bundle identifier notifications are attributed to (controls the icon; requires terminal-notifier on PATH)")
}

// Load resolves the configuration. Precedence (highest to lowest):
// 1. Flags that were set explicitly
// 2. Environment variables (RUSTY_POMO_FOCUS, RUSTY_POMO_LONG_EVERY, ...)
// 3. Config file (configPath, or <user config dir>/rusty-pomo/config.yaml)
// 4. Built-in defaults
func Load(fs *pflag.FlagSet, configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(UserConfigDir())
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading user config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling config: %w", ErrInvalid, err)
	}

	t, err := theme.Parse(v.GetString(KeyTheme))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	cfg.Theme = t
	cfg.NotificationSound = strings.TrimSpace(cfg.NotificationSound)
	cfg.MacOSBundleID = strings.TrimSpace(cfg.MacOSBundleID)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the timer cannot run with. NotificationSeconds only
// has to be non-negative; platforms that manage their own duration ignore it.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value int
		limit int64
	}{
		{KeyFocus, c.FocusMinutes, maxMinutes},
		{KeyShort, c.ShortMinutes, maxMinutes},
		{KeyLong, c.LongMinutes, maxMinutes},
		{KeyLongEvery, c.LongEvery, math.MaxInt64},
	}
	for _, ch := range checks {
		if ch.value < 1 {
			return fmt.Errorf("%w: --%s must be a positive integer, got %d", ErrInvalid, ch.name, ch.value)
		}
		if int64(ch.value) > ch.limit {
			return fmt.Errorf("%w: --%s must be at most %d, got %d", ErrInvalid, ch.name, ch.limit, ch.value)
		}
	}
	if c.NotificationSeconds < 0 || int64(c.NotificationSeconds) > maxSeconds {
		return fmt.Errorf("%w: --%s must be between 0 and %d, got %d", ErrInvalid, KeyNotificationSeconds, maxSeconds, c.NotificationSeconds)
	}
	if _, err := theme.Parse(string(c.Theme)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Timer().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Timer returns the state machine configuration.
func (c *Config) Timer() core.Config {
	return core.Config{
		Focus:     time.Duration(c.FocusMinutes) * time.Minute,
		ShortBrk:  time.Duration(c.ShortMinutes) * time.Minute,
		LongBrk:   time.Duration(c.LongMinutes) * time.Minute,
		LongEvery: c.LongEvery,
	}
}

// Notify returns the notification settings.
func (c *Config) Notify() notify.Settings {
	return notify.Settings{
		AppName:  AppName,
		Enabled:  c.Notifications,
		Sound:    c.NotificationSound,
		Duration: time.Duration(c.NotificationSeconds) * time.Second,
		BundleID: c.MacOSBundleID,
	}
}

// UserConfigDir returns the directory the default config file is read from.
func UserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, dirName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", dirName)
	}
	return filepath.Join(home, ".config", dirName)
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyFocus, d.FocusMinutes)
	v.SetDefault(KeyShort, d.ShortMinutes)
	v.SetDefault(KeyLong, d.LongMinutes)
	v.SetDefault(KeyLongEvery, d.LongEvery)
	v.SetDefault(KeyTheme, string(d.Theme))
	v.SetDefault(KeyNotifications, d.Notifications)
	v.SetDefault(KeyNotificationSound, "")
	v.SetDefault(KeyNotificationSeconds, d.NotificationSeconds)
	v.SetDefault(KeyMacOSBundleID, "")
}

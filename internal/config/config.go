// Package config loads settings from defaults, an optional config file,
// a .env file, TASKTRACKER_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. TASKTRACKER_DB_PATH.
const EnvPrefix = "TASKTRACKER"

// Ключи конфигурации
const (
	KeyDBPath        = "db_path"
	KeyPrefsPath     = "prefs_path"
	KeyAddr          = "addr"
	KeyLogLevel      = "log_level"
	KeyTimezone      = "timezone"
	KeyLiveKeepAlive = "live_keepalive"
	KeyTokenTTL      = "token_ttl"
)

// Config holds resolved settings.
type Config struct {
	DBPath        string
	PrefsPath     string
	Addr          string
	LogLevel      string
	Timezone      string
	LiveKeepAlive time.Duration
	TokenTTL      time.Duration
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyDBPath, "tasktracker.db")
	v.SetDefault(KeyPrefsPath, "tasktracker-prefs.db")
	v.SetDefault(KeyAddr, "127.0.0.1:8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyTimezone, "Local")
	v.SetDefault(KeyLiveKeepAlive, 5*time.Second)
	v.SetDefault(KeyTokenTTL, 24*time.Hour)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds command line flags to config keys. Flags absent from the
// set are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"db":        KeyDBPath,
		"prefs":     KeyPrefsPath,
		"addr":      KeyAddr,
		"log-level": KeyLogLevel,
		"timezone":  KeyTimezone,
	}

	for name, key := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	return nil
}

// LoadDotEnv loads variables from a .env file. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load resolves the configuration. cfgFile is optional.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		DBPath:        v.GetString(KeyDBPath),
		PrefsPath:     v.GetString(KeyPrefsPath),
		Addr:          v.GetString(KeyAddr),
		LogLevel:      v.GetString(KeyLogLevel),
		Timezone:      v.GetString(KeyTimezone),
		LiveKeepAlive: v.GetDuration(KeyLiveKeepAlive),
		TokenTTL:      v.GetDuration(KeyTokenTTL),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that cannot be used as is
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("%s must not be empty", KeyDBPath)
	}
	if c.PrefsPath == "" {
		return fmt.Errorf("%s must not be empty", KeyPrefsPath)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.LiveKeepAlive <= 0 {
		return fmt.Errorf("%s must be positive", KeyLiveKeepAlive)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("%s must be positive", KeyTokenTTL)
	}
	return nil
}

// Location returns the time zone used for day bucketing
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ParseLevel converts a level name to slog.Level
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "tasktracker.db", cfg.DBPath)
	assert.Equal(t, "tasktracker-prefs.db", cfg.PrefsPath)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.LiveKeepAlive)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TASKTRACKER_DB_PATH", "/tmp/env.db")
	t.Setenv("TASKTRACKER_LOG_LEVEL", "debug")
	t.Setenv("TASKTRACKER_TIMEZONE", "UTC")
	t.Setenv("TASKTRACKER_LIVE_KEEPALIVE", "250ms")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.LiveKeepAlive)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_ConfigFileAndFlags(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("db_path: /data/file.db\naddr: 127.0.0.1:9999\n"), 0600))

	v := New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", "", "")
	flags.String("unrelated", "", "")
	require.NoError(t, BindFlags(v, flags))
	require.NoError(t, flags.Parse([]string{"--addr", "127.0.0.1:7000"}))

	cfg, err := Load(v, cfgFile)
	require.NoError(t, err)

	assert.Equal(t, "/data/file.db", cfg.DBPath)
	// Флаг важнее файла
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			DBPath:        "a.db",
			PrefsPath:     "b.db",
			LogLevel:      "info",
			Timezone:      "UTC",
			LiveKeepAlive: time.Second,
			TokenTTL:      time.Hour,
		}
	}

	tests := []struct {
		modify  func(c *Config)
		name    string
		errMsg  string
		wantErr bool
	}{
		{name: "valid", modify: func(c *Config) {}},
		{name: "empty db path", modify: func(c *Config) { c.DBPath = "" }, wantErr: true, errMsg: "db_path"},
		{name: "empty prefs path", modify: func(c *Config) { c.PrefsPath = "" }, wantErr: true, errMsg: "prefs_path"},
		{name: "bad level", modify: func(c *Config) { c.LogLevel = "loud" }, wantErr: true, errMsg: "invalid log level"},
		{name: "bad timezone", modify: func(c *Config) { c.Timezone = "Mars/Olympus" }, wantErr: true, errMsg: "invalid timezone"},
		{name: "zero keepalive", modify: func(c *Config) { c.LiveKeepAlive = 0 }, wantErr: true, errMsg: "live_keepalive"},
		{name: "zero token ttl", modify: func(c *Config) { c.TokenTTL = 0 }, wantErr: true, errMsg: "token_ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	// Отсутствующий файл не ошибка
	require.NoError(t, LoadDotEnv(filepath.Join(dir, ".env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TASKTRACKER_ADDR=127.0.0.1:6060\n"), 0600))
	t.Setenv("TASKTRACKER_ADDR", "")
	require.NoError(t, os.Unsetenv("TASKTRACKER_ADDR"))

	require.NoError(t, LoadDotEnv(path))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6060", cfg.Addr)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, "warn", true)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"key":"value"`)

	buf.Reset()
	NewLogger(&buf, "nonsense", false).Info("text")
	assert.Contains(t, buf.String(), "msg=text")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"leakjar-cli/internal/api"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	require.NoError(t, initViper(v, filepath.Join(t.TempDir(), "missing.yaml")))

	s := load(v)
	assert.Empty(t, s.APIKey)
	assert.Equal(t, api.DefaultBaseURL, s.BaseURL)
	assert.Equal(t, api.DefaultTimeout, s.Timeout)
	assert.Equal(t, api.DefaultPageDelay, s.PageDelay)
	assert.Equal(t, "warn", s.LogLevel)
	assert.False(t, s.LogPretty)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leakjar.yaml")
	content := "api_key: lj_live_file\nbase_url: https://leakjar.example.com/api/v1\ntimeout: 10s\npage_delay: 250ms\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := viper.New()
	require.NoError(t, initViper(v, path))

	s := load(v)
	assert.Equal(t, "lj_live_file", s.APIKey)
	assert.Equal(t, "https://leakjar.example.com/api/v1", s.BaseURL)
	assert.Equal(t, 10*time.Second, s.Timeout)
	assert.Equal(t, 250*time.Millisecond, s.PageDelay)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leakjar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_key: from_file\n"), 0o600))
	t.Setenv("LEAKJAR_API_KEY", "from_env")
	t.Setenv("LEAKJAR_TIMEOUT", "3s")

	v := viper.New()
	require.NoError(t, initViper(v, path))

	s := load(v)
	assert.Equal(t, "from_env", s.APIKey)
	assert.Equal(t, 3*time.Second, s.Timeout)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leakjar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_key: [unclosed\n"), 0o600))

	v := viper.New()
	assert.Error(t, initViper(v, path))
}

func TestSet_WritesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leakjar.yaml")

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, set(v, APIKey, "lj_live_new"))
	require.NoError(t, set(v, BaseURL, "https://leakjar.example.com/api/v1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reread := viper.New()
	require.NoError(t, initViper(reread, path))
	s := load(reread)
	assert.Equal(t, "lj_live_new", s.APIKey)
	assert.Equal(t, "https://leakjar.example.com/api/v1", s.BaseURL)
}

func TestSet_WritesOnlyFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leakjar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o600))
	t.Setenv("LEAKJAR_BASE_URL", "https://one-off.example.com/api/v1")

	v := viper.New()
	require.NoError(t, initViper(v, path))
	v.Set(PageDelay, "1s")
	assert.Equal(t, "https://one-off.example.com/api/v1", load(v).BaseURL)

	require.NoError(t, set(v, APIKey, "lj_live_new"))
	assert.Equal(t, "lj_live_new", load(v).APIKey)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "api_key: lj_live_new")
	assert.Contains(t, content, "log_level: debug")
	assert.NotContains(t, content, "base_url")
	assert.NotContains(t, content, "one-off.example.com")
	assert.NotContains(t, content, "timeout")
	assert.NotContains(t, content, "page_delay")
}

func TestSettings_ClientConfig(t *testing.T) {
	cfg := Settings{APIKey: "token", PageDelay: 0}.ClientConfig()
	assert.Equal(t, "token", cfg.Token)
	assert.Equal(t, api.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, api.DefaultTimeout, cfg.Timeout)
	assert.Zero(t, cfg.PageDelay)

	cfg = Settings{APIKey: "token", BaseURL: "http://127.0.0.1:9000", Timeout: time.Second, PageDelay: time.Second}.ClientConfig()
	assert.Equal(t, "http://127.0.0.1:9000", cfg.BaseURL)
	assert.Equal(t, time.Second, cfg.Timeout)
	assert.Equal(t, time.Second, cfg.PageDelay)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "********", MaskKey("short"))
	assert.Equal(t, "lj_l********Iy1C", MaskKey("lj_live_UodzH0gWpmkhUtYRdEr1HEsTwMPaIy1C"))
}

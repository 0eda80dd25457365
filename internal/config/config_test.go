package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GDASH_USER", "")
	t.Setenv("GDASH_ORGS", "")
	t.Setenv("GH_HOST", "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "missing.toml")

	cfg, err := Load(path, Overrides{User: "octocat"})
	require.NoError(t, err)

	assert.Equal(t, "octocat", cfg.User)
	assert.Empty(t, cfg.Orgs)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, path, cfg.ConfigPath)
	assert.False(t, cfg.Color)
	assert.False(t, cfg.Notify)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
user = "hubot"
orgs = ["acme", "globex"]
gh_host = "ghe.example.com"
timeout = "30s"
log_level = "debug"
color = true
notify = true
`)

	cfg, err := Load(path, Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "hubot", cfg.User)
	assert.Equal(t, []string{"acme", "globex"}, cfg.Orgs)
	assert.Equal(t, "ghe.example.com", cfg.GHHost)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Color)
	assert.True(t, cfg.Notify)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
user = "from-file"
orgs = ["file-org"]
`)

	t.Setenv("GDASH_USER", "from-env")
	t.Setenv("GDASH_ORGS", " env-a, ,env-b ")
	t.Setenv("GH_HOST", "env.example.com")

	cfg, err := Load(path, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.User)
	assert.Equal(t, []string{"env-a", "env-b"}, cfg.Orgs)
	assert.Equal(t, "env.example.com", cfg.GHHost)

	cfg, err = Load(path, Overrides{User: "from-cli", Orgs: []string{"cli-org"}, GHHost: "cli.example.com", Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "from-cli", cfg.User)
	assert.Equal(t, []string{"cli-org"}, cfg.Orgs)
	assert.Equal(t, "cli.example.com", cfg.GHHost)
	assert.Equal(t, time.Second, cfg.Timeout)
}

func TestLoad_OverridesCanDisable(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
user = "hubot"
color = true
notify = true
`)

	off := false
	cfg, err := Load(path, Overrides{Color: &off, Notify: &off})
	require.NoError(t, err)
	assert.False(t, cfg.Color)
	assert.False(t, cfg.Notify)

	cfg, err = Load(path, Overrides{})
	require.NoError(t, err)
	assert.True(t, cfg.Color)
	assert.True(t, cfg.Notify)
}

func TestLoad_NoUser(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), Overrides{})
	require.ErrorIs(t, err, ErrNoUser)
}

func TestLoad_BadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `user = [`)

	_, err := Load(path, Overrides{User: "octocat"})
	require.Error(t, err)
}

func TestResolveToken(t *testing.T) {
	cfg := &Config{GHHost: "ghe.example.com"}

	var askedHost string
	err := cfg.ResolveToken(func(host string) string {
		askedHost = host
		return "secret"
	})
	require.NoError(t, err)
	assert.Equal(t, "ghe.example.com", askedHost)
	assert.Equal(t, "secret", cfg.Token)

	err = cfg.ResolveToken(func(string) string { return "" })
	require.ErrorIs(t, err, ErrNoToken)
}

func TestEnvToken_PrefersGitHubToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "from-env")
	assert.Equal(t, "from-env", EnvToken("github.com"))
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cli/go-gh/v2/pkg/auth"
)

var (
	ErrNoUser  = errors.New("no user given, needs USER [ORGANIZATION ...]")
	ErrNoToken = errors.New("no GitHub API token found (set GITHUB_TOKEN or run 'gh auth login')")
)

const defaultTimeout = 10 * time.Second

type Config struct {
	User       string        `toml:"user"`
	Orgs       []string      `toml:"orgs"`
	GHHost     string        `toml:"gh_host"`
	Timeout    time.Duration `toml:"timeout"`
	LogLevel   string        `toml:"log_level"`
	Color      bool          `toml:"color"`
	Notify     bool          `toml:"notify"`
	Token      string        `toml:"-"`
	ConfigPath string        `toml:"-"`
}

// Overrides are values given on the command line. Zero or nil values leave the
// file/env setting alone.
type Overrides struct {
	User     string
	Orgs     []string
	GHHost   string
	Timeout  time.Duration
	LogLevel string
	Color    *bool
	Notify   *bool
}

// TokenSource resolves the API token for a host.
type TokenSource func(host string) string

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gdash", "config.toml")
}

// EnvToken reads GITHUB_TOKEN, then falls back to whatever gh knows about the
// host (GH_TOKEN, the gh config file or keyring).
func EnvToken(host string) string {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}
	if host == "" {
		host, _ = auth.DefaultHost()
	}
	token, _ := auth.TokenForHost(host)
	return token
}

// Load layers defaults, the TOML file, the environment and CLI overrides, in
// that order.
func Load(configPath string, cli Overrides) (*Config, error) {
	cfg := &Config{
		Timeout:  defaultTimeout,
		LogLevel: "warn",
	}

	if configPath == "" {
		configPath = defaultConfigPath()
	}
	cfg.ConfigPath = configPath

	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if envUser := os.Getenv("GDASH_USER"); envUser != "" {
		cfg.User = envUser
	}

	if envOrgs := os.Getenv("GDASH_ORGS"); envOrgs != "" {
		cfg.Orgs = splitAndTrim(envOrgs, ",")
	}

	if envHost := os.Getenv("GH_HOST"); envHost != "" {
		cfg.GHHost = envHost
	}

	applyOverrides(cfg, cli)

	if cfg.User == "" {
		return nil, ErrNoUser
	}

	return cfg, nil
}

// ResolveToken looks up the API token for the configured host.
func (c *Config) ResolveToken(tokens TokenSource) error {
	c.Token = tokens(c.GHHost)
	if c.Token == "" {
		return ErrNoToken
	}
	return nil
}

func applyOverrides(cfg *Config, cli Overrides) {
	if cli.User != "" {
		cfg.User = cli.User
	}
	if len(cli.Orgs) > 0 {
		cfg.Orgs = cli.Orgs
	}
	if cli.GHHost != "" {
		cfg.GHHost = cli.GHHost
	}
	if cli.Timeout > 0 {
		cfg.Timeout = cli.Timeout
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.Color != nil {
		cfg.Color = *cli.Color
	}
	if cli.Notify != nil {
		cfg.Notify = *cli.Notify
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"gdash/internal/config"
)

var (
	orgs       []string
	configPath string
	ghHost     string
	timeout    time.Duration
	logLevel   string
	color      bool
	notifyHot  bool
	quiet      bool

	tokenSource config.TokenSource = config.EnvToken
)

var rootCmd = &cobra.Command{
	Use:   "gdash [user] [organization ...]",
	Short: "Show the GitHub issues and PRs that need your attention",
	Long: `gdash lists the open issues and pull requests assigned to a user, plus
the pull requests waiting on their review, as one list ranked by urgency.

Items updated within the last day are marked with '*'. Organizations narrow
the search; without any, all of GitHub is searched.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	RunE:          runDashboard,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&orgs, "org", nil, "GitHub organization(s) to search (repeatable)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default ~/.config/gdash/config.toml)")
	rootCmd.PersistentFlags().StringVar(&ghHost, "host", "", "GitHub host (default github.com)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "Timeout for each GitHub request (default 10s)")
	rootCmd.Flags().BoolVar(&color, "color", false, "Highlight the hot marker")
	rootCmd.Flags().BoolVar(&notifyHot, "notify", false, "Send a desktop notification listing hot items")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the summary line")
}

// loadConfig merges positional USER [ORG...] with the flags and config file.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cli := config.Overrides{
		Orgs:     orgs,
		GHHost:   ghHost,
		Timeout:  timeout,
		LogLevel: logLevel,
	}
	if cmd.Flags().Changed("color") {
		cli.Color = &color
	}
	if cmd.Flags().Changed("notify") {
		cli.Notify = &notifyHot
	}
	if len(args) > 0 {
		cli.User = args[0]
		cli.Orgs = append(append([]string{}, args[1:]...), orgs...)
	}

	cfg, err := config.Load(configPath, cli)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  lvl,
		Prefix: "gdash",
	}), nil
}

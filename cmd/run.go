package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"gdash/internal/dashboard"
	"gdash/internal/github"
	"gdash/internal/notify"
)

var hotStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	if err := cfg.ResolveToken(tokenSource); err != nil {
		return err
	}

	client, err := github.NewClient(cfg.GHHost, cfg.Token, cfg.Timeout, logger)
	if err != nil {
		return err
	}

	result, err := dashboard.Run(cmd.Context(), client, dashboard.Options{
		User:    cfg.User,
		Orgs:    cfg.Orgs,
		Timeout: cfg.Timeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("building dashboard: %w", err)
	}

	printItems(os.Stdout, result, cfg.Color)

	if !quiet {
		fmt.Fprintf(os.Stderr, "%d items (%d issues, %d PRs, %d review requests)\n",
			len(result.Items),
			result.Counts[github.KindIssues],
			result.Counts[github.KindPullRequests],
			result.Counts[github.KindReviewRequests])
	}

	if cfg.Notify {
		notifyHotItems(result, logger)
	}

	return nil
}

func printItems(w io.Writer, result *dashboard.Result, colored bool) {
	for _, item := range result.Items {
		marker := item.Marker(result.Now)
		if colored && item.IsHot(result.Now) {
			marker = hotStyle.Render(marker)
		}
		fmt.Fprintln(w, marker+item.Line())
	}
}

func hotTitles(result *dashboard.Result) []string {
	var titles []string
	for _, item := range result.Items {
		if item.IsHot(result.Now) {
			titles = append(titles, item.Title())
		}
	}
	return titles
}

func notifyHotItems(result *dashboard.Result, logger *log.Logger) {
	if err := notify.Hot(notify.Desktop, hotTitles(result)); err != nil {
		logger.Warn("desktop notification failed", "err", err)
	}
}

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gdash/internal/github"
)

var queriesCmd = &cobra.Command{
	Use:   "queries [user] [organization ...]",
	Short: "Print the GitHub search queries without running them",
	Long: `Print the three search strings gdash sends to GitHub (assigned issues,
assigned pull requests and review requests). They can be pasted into the
GitHub search box. No token is needed.`,
	RunE: runQueries,
}

func init() {
	rootCmd.AddCommand(queriesCmd)
}

func runQueries(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	printQueries(cmd.OutOrStdout(), cfg.User, cfg.Orgs)
	return nil
}

func printQueries(w io.Writer, user string, orgs []string) {
	for _, kind := range github.AllKinds {
		fmt.Fprintf(w, "%s\t%s\n", kind, github.SearchQuery(kind, user, orgs))
	}
}

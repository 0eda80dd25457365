package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"gdash/internal/github"
	"gdash/internal/issue"
)

type Searcher interface {
	Search(ctx context.Context, searchQuery string) ([]byte, error)
}

type Options struct {
	User    string
	Orgs    []string
	Timeout time.Duration
	Now func() time.Time
}

type Result struct {
	Items []issue.WorkItem
	Counts map[github.Kind]int
	Now    time.Time
}

// Run fails as a whole if any single search fails.
func Run(ctx context.Context, searcher Searcher, opts Options, logger *log.Logger) (*Result, error) {
	clock := opts.Now
	if clock == nil {
		clock = time.Now
	}

	sets := make([][]issue.WorkItem, len(github.AllKinds))
	g, ctx := errgroup.WithContext(ctx)

	for i, kind := range github.AllKinds {
		i, kind := i, kind
		g.Go(func() error {
			items, err := fetch(ctx, searcher, kind, opts, clock, logger)
			if err != nil {
				return fmt.Errorf("searching %s: %w", kind, err)
			}
			sets[i] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := clock()
	counts := make(map[github.Kind]int, len(sets))
	for i, kind := range github.AllKinds {
		counts[kind] = len(sets[i])
	}

	return &Result{
		Items:  issue.Merge(now, sets...),
		Counts: counts,
		Now:    now,
	}, nil
}

func fetch(ctx context.Context, searcher Searcher, kind github.Kind, opts Options, clock func() time.Time, logger *log.Logger) ([]issue.WorkItem, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	query := github.SearchQuery(kind, opts.User, opts.Orgs)
	logger.Debug("searching", "kind", kind, "query", query)

	body, err := searcher.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	items, err := issue.ExtractJSON(body, clock())
	if err != nil {
		return nil, err
	}

	logger.Debug("extracted", "kind", kind, "open", len(items))
	return items, nil
}

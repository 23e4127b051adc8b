package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"moviemanager/internal/logging"
	"moviemanager/internal/media"
)

// Searcher returns raw candidates for a query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]media.Candidate, error)
}

// SearcherFunc adapts a function to Searcher.
type SearcherFunc func(ctx context.Context, query string) ([]media.Candidate, error)

// Search calls f.
func (f SearcherFunc) Search(ctx context.Context, query string) ([]media.Candidate, error) {
	return f(ctx, query)
}

// Client filters provider results down to usable candidates.
type Client struct {
	searcher Searcher
	logger   *slog.Logger
}

// New constructs a Client around searcher.
func New(searcher Searcher, logger *slog.Logger) (*Client, error) {
	if searcher == nil {
		return nil, errors.New("lookup requires a searcher")
	}
	return &Client{
		searcher: searcher,
		logger:   logging.NewComponentLogger(logger, "lookup"),
	}, nil
}

// Find returns the candidates for title whose kind matches kind and whose
// title does not start with an underscore, in provider order. Provider
// errors are returned as is.
func (c *Client) Find(ctx context.Context, title string, kind media.Kind) ([]media.Candidate, error) {
	results, err := c.searcher.Search(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", title, err)
	}
	matches := Filter(results, kind)
	c.logger.Debug("lookup complete",
		logging.String(logging.FieldQuery, title),
		logging.String(logging.FieldKind, string(kind)),
		logging.Int("results", len(results)),
		logging.Int("matches", len(matches)),
	)
	return matches, nil
}

// Filter keeps candidates of kind whose title is not hidden (prefixed with
// an underscore).
func Filter(candidates []media.Candidate, kind media.Kind) []media.Candidate {
	var out []media.Candidate
	for _, candidate := range candidates {
		if candidate.Kind != kind {
			continue
		}
		if strings.HasPrefix(candidate.Title, "_") {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

package tmdb

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"moviemanager/internal/media"
)

// Searcher adapts a Client to lookup.Searcher for a fixed kind. TMDB only
// distinguishes movies from TV; other kinds go through the multi search and
// are left for the lookup filter to discard.
type Searcher struct {
	client *Client
	kind   media.Kind
}

// NewSearcher returns a Searcher for kind.
func NewSearcher(client *Client, kind media.Kind) (*Searcher, error) {
	if client == nil {
		return nil, fmt.Errorf("tmdb client required")
	}
	return &Searcher{client: client, kind: kind}, nil
}

// Supports reports whether TMDB can return records of kind.
func Supports(kind media.Kind) bool {
	return kind == media.KindMovie || kind == media.KindTVSeries
}

// Search queries the endpoint for the configured kind.
func (s *Searcher) Search(ctx context.Context, query string) ([]media.Candidate, error) {
	var (
		resp *Response
		err  error
	)
	switch s.kind {
	case media.KindMovie:
		resp, err = s.client.SearchMovie(ctx, query)
	case media.KindTVSeries:
		resp, err = s.client.SearchTV(ctx, query)
	default:
		resp, err = s.client.SearchMulti(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	candidates := make([]media.Candidate, 0, len(resp.Results))
	for _, result := range resp.Results {
		if candidate, ok := result.Candidate(s.kind); ok {
			candidates = append(candidates, candidate)
		}
	}
	return candidates, nil
}

// Candidate converts a search result into a media candidate. fallback is used
// when the result carries no media_type, as in single-type searches. People
// returned by the multi search are rejected.
func (r Result) Candidate(fallback media.Kind) (media.Candidate, bool) {
	kind := fallback
	switch r.MediaType {
	case "":
	case "movie":
		kind = media.KindMovie
	case "tv":
		kind = media.KindTVSeries
	default:
		return media.Candidate{}, false
	}
	title := r.Title
	date := r.ReleaseDate
	if kind == media.KindTVSeries {
		title = r.Name
		date = r.FirstAirDate
	}
	if strings.TrimSpace(title) == "" {
		title = firstNonEmpty(r.Title, r.Name)
	}
	return media.Candidate{
		ID:    strconv.FormatInt(r.ID, 10),
		Title: strings.TrimSpace(title),
		Year:  yearFromDate(date),
		Kind:  kind,
	}, true
}

func yearFromDate(date string) int {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year <= 0 {
		return 0
	}
	return year
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

package imdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"moviemanager/internal/media"
)

// Suggestion is one entry of the suggestion response.
type Suggestion struct {
	ID    string `json:"id"`
	Title string `json:"l"`
	Year  int    `json:"y"`
	// TypeID is the machine title type, e.g. "movie" or "tvMiniSeries".
	TypeID string `json:"qid"`
	// Type is the human label, e.g. "feature" or "TV mini-series".
	Type  string `json:"q"`
	Stars string `json:"s"`
	Rank  int    `json:"rank"`
}

// Response models the suggestion payload.
type Response struct {
	Query       string       `json:"q"`
	Suggestions []Suggestion `json:"d"`
}

var kindsByTypeID = map[string]media.Kind{
	"movie":        media.KindMovie,
	"tvSeries":     media.KindTVSeries,
	"tvMiniSeries": media.KindTVMiniSeries,
	"videoGame":    media.KindVideoGame,
	"video":        media.KindVideoMovie,
	"tvMovie":      media.KindTVMovie,
	"tvEpisode":    media.KindEpisode,
}

// Client calls the suggestion endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// New creates a suggestion client rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("imdb base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Suggest fetches raw suggestions for query.
func (c *Client) Suggest(ctx context.Context, query string) (*Response, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	endpoint, err := url.Parse(fmt.Sprintf("%s/%s/%s.json", c.baseURL, bucket(query), url.PathEscape(query)))
	if err != nil {
		return nil, fmt.Errorf("parse imdb url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imdb suggestion returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode imdb response: %w", err)
	}
	return &payload, nil
}

// Search implements lookup.Searcher. Suggestions with a title type outside
// media.Kinds (people, shorts, podcasts) are dropped.
func (c *Client) Search(ctx context.Context, query string) ([]media.Candidate, error) {
	resp, err := c.Suggest(ctx, query)
	if err != nil {
		return nil, err
	}
	candidates := make([]media.Candidate, 0, len(resp.Suggestions))
	for _, s := range resp.Suggestions {
		kind, ok := kindsByTypeID[s.TypeID]
		if !ok {
			continue
		}
		candidates = append(candidates, media.Candidate{
			ID:    s.ID,
			Title: strings.TrimSpace(s.Title),
			Year:  s.Year,
			Kind:  kind,
		})
	}
	return candidates, nil
}

// bucket returns the single character directory the endpoint shards queries
// into: the first letter or digit, or "x" otherwise.
func bucket(query string) string {
	r, _ := utf8.DecodeRuneInString(query)
	if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
		return string(r)
	}
	return "x"
}

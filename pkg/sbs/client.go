package sbs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
)

// DefaultAPIRoot is the public catalog API endpoint.
const DefaultAPIRoot = "http://www.sbs.com.au/api/"

// DefaultFeedPath is the feed account and section shared by the movie and program feeds.
const DefaultFeedPath = "video_feed/f/Bgtm9B/sbs-section-programs/"

// movieCategories restricts the programs feed to feature films.
const movieCategories = "Section%2FPrograms,Film,Film,!Film%2FShort%20Film"

// Fetcher retrieves a document body. Implementations own the retry policy.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client reads the catalog API.
type Client struct {
	fetcher  Fetcher
	apiRoot  string
	feedPath string
	log      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAPIRoot sets a custom API root (for testing).
func WithAPIRoot(root string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(root, "/") {
			root += "/"
		}
		c.apiRoot = root
	}
}

// WithFeedPath sets the feed path relative to the API root.
func WithFeedPath(path string) Option {
	return func(c *Client) {
		c.feedPath = strings.TrimPrefix(path, "/")
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "sbs")
	}
}

// New creates a catalog API client.
func New(fetcher Fetcher, opts ...Option) *Client {
	c := &Client{
		fetcher:  fetcher,
		apiRoot:  DefaultAPIRoot,
		feedPath: DefaultFeedPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) movieFeedURL(count int) string {
	return fmt.Sprintf("%s%s?form=json&count=true&range=1-%d&byCategories=%s", c.apiRoot, c.feedPath, count, movieCategories)
}

// Movies returns every movie in the catalog.
// The feed rejects unbounded paging, so the first request only discovers the
// total and the second fetches that many entries in a single page.
func (c *Client) Movies(ctx context.Context) ([]Movie, error) {
	start := time.Now()

	var probe feedResponse[Movie]
	if err := c.getJSON(ctx, c.movieFeedURL(1), &probe); err != nil {
		return nil, fmt.Errorf("movie count: %w", err)
	}
	if probe.TotalResults <= 0 {
		return nil, nil
	}
	if probe.TotalResults <= len(probe.Entries) {
		return probe.Entries, nil
	}

	var feed feedResponse[Movie]
	if err := c.getJSON(ctx, c.movieFeedURL(probe.TotalResults), &feed); err != nil {
		return nil, fmt.Errorf("movie list: %w", err)
	}

	if c.log != nil {
		c.log.Debug("movie list fetched", "total", probe.TotalResults, "entries", len(feed.Entries), "duration_ms", time.Since(start).Milliseconds())
	}
	return feed.Entries, nil
}

// Programs returns the full program listing, series and single programs alike.
func (c *Client) Programs(ctx context.Context) ([]Program, error) {
	var feed feedResponse[Program]
	if err := c.getJSON(ctx, c.apiRoot+"video_programs/all?upcoming=1", &feed); err != nil {
		return nil, fmt.Errorf("program list: %w", err)
	}
	return feed.Entries, nil
}

// ProgramDetail fetches the metadata needed to locate a program's episodes.
func (c *Client) ProgramDetail(ctx context.Context, p Program) (*ProgramDetail, error) {
	endpoint := c.apiRoot + "video_program?context=web2&id=" + url.QueryEscape(string(p.ID))
	var resp programResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("program %s: %w", p.ID, err)
	}
	return &resp.Program, nil
}

// FeedURL resolves the episode feed of a program. Series carry their own feed
// URL; single programs are looked up by their platform id.
func (c *Client) FeedURL(p Program, d *ProgramDetail) (string, error) {
	if p.IsSeries() {
		if d.URL == "" {
			return "", fmt.Errorf("program %s: %w", p.ID, ErrMissingFeed)
		}
		return d.URL, nil
	}
	if d.PilatID == "" {
		return "", fmt.Errorf("program %s: %w", p.ID, ErrMissingFeed)
	}
	return fmt.Sprintf("%s%s?byCustomValue={pilatId}{%s}", c.apiRoot, c.feedPath, d.PilatID), nil
}

// Episodes fetches the episode feed of a program.
// It returns the detail alongside so callers can report the season count.
func (c *Client) Episodes(ctx context.Context, p Program) ([]Episode, *ProgramDetail, error) {
	detail, err := c.ProgramDetail(ctx, p)
	if err != nil {
		return nil, nil, err
	}
	feedURL, err := c.FeedURL(p, detail)
	if err != nil {
		return nil, nil, err
	}

	var feed feedResponse[Episode]
	if err := c.getJSON(ctx, feedURL, &feed); err != nil {
		return nil, nil, fmt.Errorf("episodes of %s: %w", p.ID, err)
	}
	return feed.Entries, detail, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	body, err := c.fetcher.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}

// Package resolve turns an on-demand video id into local media files.
//
// A Pipeline walks player page → embedded player config → SMIL stream
// descriptor → HLS master playlist → best variant, then hands the variant to a
// Remuxer. Each stage feeds the next; a failing stage aborts the task.
package resolve

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . Fetcher,Remuxer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultPlayerURL is the player page template; %d is the video id.
const DefaultPlayerURL = "https://www.sbs.com.au/ondemand/video/single/%d?context=web"

// Fetcher retrieves a document body. Implementations own the retry policy.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Remuxer copies a remote stream into a local file.
type Remuxer interface {
	Remux(ctx context.Context, src, dst string) error
}

// Task is one unit of download work. It is copied into each worker and holds
// everything the pipeline needs.
type Task struct {
	VideoID   int64
	Index     int // 1-based position in the batch
	Total     int
	Title     string // catalog title, used for progress only
	OutputDir string
}

// Result describes what a task produced.
type Result struct {
	Title        string // descriptor title, the filename stem
	StreamURL    string
	VideoPath    string
	SubtitlePath string // empty when the title has no subtitles
}

// Pipeline resolves tasks to files.
type Pipeline struct {
	fetcher   Fetcher
	remuxer   Remuxer
	playerURL string
	dryRun    bool
	log       *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithPlayerURL sets the player page template.
func WithPlayerURL(tmpl string) Option {
	return func(p *Pipeline) {
		p.playerURL = tmpl
	}
}

// WithDryRun resolves the stream URL without writing files or remuxing.
func WithDryRun(dryRun bool) Option {
	return func(p *Pipeline) {
		p.dryRun = dryRun
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) {
		p.log = log.With("component", "resolve")
	}
}

// New creates a pipeline.
func New(fetcher Fetcher, remuxer Remuxer, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:   fetcher,
		remuxer:   remuxer,
		playerURL: DefaultPlayerURL,
		log:       slog.Default().With("component", "resolve"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Resolve runs every stage for one task. Files are named after the descriptor
// title, which may differ from the catalog title. Cancellation is checked
// between stages.
func (p *Pipeline) Resolve(ctx context.Context, task Task) (*Result, error) {
	log := p.log.With("video_id", task.VideoID)
	log.Info("downloading", "index", task.Index, "total", task.Total, "title", task.Title)

	page, err := p.fetcher.Get(ctx, fmt.Sprintf(p.playerURL, task.VideoID))
	if err != nil {
		return nil, fmt.Errorf("player page: %w", err)
	}

	cfg, err := FindPlayerConfig(page)
	if err != nil {
		return nil, err
	}
	descriptorURL, err := cfg.DescriptorURL()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := p.fetcher.Get(ctx, descriptorURL)
	if err != nil {
		return nil, fmt.Errorf("stream descriptor: %w", err)
	}
	desc, err := ParseDescriptor(raw)
	if err != nil {
		return nil, err
	}
	stem := SanitizeFilename(desc.Title)
	if stem == "" {
		return nil, fmt.Errorf("%w: video element has no title", ErrInvalidDescriptor)
	}

	result := &Result{
		Title:     desc.Title,
		VideoPath: filepath.Join(task.OutputDir, stem+".mp4"),
	}

	if desc.SubtitleSrc != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(task.OutputDir, stem+".srt")
		if err := p.saveSubtitles(ctx, desc.SubtitleSrc, path); err != nil {
			return nil, err
		}
		result.SubtitlePath = path
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	manifest, err := p.fetcher.Get(ctx, desc.VideoSrc)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	result.StreamURL, err = BestVariant(manifest, desc.VideoSrc)
	if err != nil {
		return nil, err
	}

	if p.dryRun {
		log.Info("resolved", "title", desc.Title, "stream", result.StreamURL, "output", result.VideoPath)
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.remuxer.Remux(ctx, result.StreamURL, result.VideoPath); err != nil {
		return nil, err
	}
	log.Info("saved", "title", desc.Title, "path", result.VideoPath)
	return result, nil
}

func (p *Pipeline) saveSubtitles(ctx context.Context, src, path string) error {
	body, err := p.fetcher.Get(ctx, src)
	if err != nil {
		return fmt.Errorf("subtitles: %w", err)
	}
	if p.dryRun {
		return nil
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		return fmt.Errorf("write subtitles: %w", err)
	}
	return nil
}

package download

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/ondemand/internal/catalog"
	"github.com/vmunix/ondemand/internal/resolve"
)

// DefaultConcurrency is the number of episodes downloaded at once.
const DefaultConcurrency = 5

// EpisodeLister lists the episodes stored for a title.
type EpisodeLister interface {
	ListEpisodes(titleID int64) ([]catalog.Episode, error)
}

// Resolver runs the resolution pipeline for one task.
type Resolver interface {
	Resolve(ctx context.Context, task resolve.Task) (*resolve.Result, error)
}

// Scheduler fans a title's episodes out over a fixed-size worker pool.
type Scheduler struct {
	episodes EpisodeLister
	resolver Resolver
	log      *slog.Logger
}

// NewScheduler creates a scheduler.
func NewScheduler(episodes EpisodeLister, resolver Resolver, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		episodes: episodes,
		resolver: resolver,
		log:      log.With("component", "scheduler"),
	}
}

// Tasks builds one task per episode, numbered by position in the list.
func Tasks(episodes []catalog.Episode, outputDir string) []resolve.Task {
	tasks := make([]resolve.Task, len(episodes))
	for i, e := range episodes {
		tasks[i] = resolve.Task{
			VideoID:   e.ID,
			Index:     i + 1,
			Total:     len(episodes),
			Title:     e.Title,
			OutputDir: outputDir,
		}
	}
	return tasks
}

// DownloadAll downloads every episode of title into outputDir.
// A title without episodes is a movie and is resolved once, synchronously.
// Episodes are dispatched in list order to at most concurrency workers; a
// failing task is logged and never stops its siblings. Returns once every
// dispatched task has finished, with the context error if it was canceled.
func (s *Scheduler) DownloadAll(ctx context.Context, title catalog.Title, outputDir string, concurrency int) error {
	episodes, err := s.episodes.ListEpisodes(title.ID)
	if err != nil {
		return fmt.Errorf("episodes of %d: %w", title.ID, err)
	}

	log := s.log.With("batch", uuid.NewString(), "title", title.Title)

	if len(episodes) == 0 {
		s.run(ctx, log, resolve.Task{
			VideoID:   title.ID,
			Index:     1,
			Total:     1,
			Title:     title.Title,
			OutputDir: outputDir,
		})
		return ctx.Err()
	}

	if concurrency < 1 {
		concurrency = 1
	}
	log.Info("dispatching episodes", "episodes", len(episodes), "workers", concurrency)

	var g errgroup.Group
	g.SetLimit(concurrency)
	for _, task := range Tasks(episodes, outputDir) {
		if ctx.Err() != nil {
			break
		}
		task := task
		g.Go(func() error {
			s.run(ctx, log, task)
			return nil
		})
	}
	_ = g.Wait()

	return ctx.Err()
}

// run resolves one task, containing any failure within it.
func (s *Scheduler) run(ctx context.Context, log *slog.Logger, task resolve.Task) {
	log = log.With("video_id", task.VideoID, "index", task.Index)
	defer func() {
		if r := recover(); r != nil {
			log.Error("download task panicked", "panic", r)
		}
	}()

	_, err := s.resolver.Resolve(ctx, task)
	switch {
	case err == nil:
	case errors.Is(err, resolve.ErrNoPlayerConfig):
		log.Warn("no player config on video page, nothing downloaded", "episode", task.Title)
	case ctx.Err() != nil:
		log.Debug("download abandoned", "episode", task.Title, "error", err)
	default:
		log.Error("download failed", "episode", task.Title, "error", err)
	}
}

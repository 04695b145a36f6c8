// Package catalogsync mirrors the upstream catalog into the local store.
package catalogsync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"github.com/vmunix/ondemand/internal/catalog"
	"github.com/vmunix/ondemand/pkg/sbs"
)

// API is the subset of the catalog API the syncer reads.
type API interface {
	Movies(ctx context.Context) ([]sbs.Movie, error)
	Programs(ctx context.Context) ([]sbs.Program, error)
	Episodes(ctx context.Context, p sbs.Program) ([]sbs.Episode, *sbs.ProgramDetail, error)
}

// Stats summarizes a sync run.
type Stats struct {
	Movies   int // movies persisted or already present
	Programs int // programs persisted or already present
	Episodes int // episodes seen across persisted programs
	Inserted int // new rows written
	Skipped  int // entries dropped after a fetch, id or store failure
}

// Syncer builds catalog assets from the API and writes them to the store.
type Syncer struct {
	api      API
	store    *catalog.Store
	log      *slog.Logger
	progress io.Writer
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithProgress renders a progress bar over programs to w.
func WithProgress(w io.Writer) Option {
	return func(s *Syncer) {
		s.progress = w
	}
}

// New creates a syncer.
func New(api API, store *catalog.Store, log *slog.Logger, opts ...Option) *Syncer {
	if log == nil {
		log = slog.Default()
	}
	s := &Syncer{
		api:   api,
		store: store,
		log:   log.With("component", "sync"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run syncs movies, then programs with their episodes.
// A failure local to one entry is logged and the entry skipped. Failing to list
// movies or programs is returned once the other list has been processed.
func (s *Syncer) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	var errs []error

	if err := s.syncMovies(ctx, &stats); err != nil {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		s.log.Error("movie sync failed", "error", err)
		errs = append(errs, err)
	}

	if err := s.syncPrograms(ctx, &stats); err != nil {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		s.log.Error("program sync failed", "error", err)
		errs = append(errs, err)
	}

	s.log.Info("sync complete",
		"movies", stats.Movies,
		"programs", stats.Programs,
		"episodes", stats.Episodes,
		"inserted", stats.Inserted,
		"skipped", stats.Skipped,
	)
	return stats, errors.Join(errs...)
}

func (s *Syncer) syncMovies(ctx context.Context, stats *Stats) error {
	movies, err := s.api.Movies(ctx)
	if err != nil {
		return fmt.Errorf("list movies: %w", err)
	}

	tx, err := s.store.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range movies {
		s.log.Info("fetching data", "title", m.Title)

		asset, err := BuildMovie(m)
		if err != nil {
			s.log.Warn("skipping movie", "title", m.Title, "error", err)
			stats.Skipped++
			continue
		}
		n, err := tx.SaveAsset(asset)
		if err != nil {
			s.log.Error("failed to save movie", "title", m.Title, "error", err)
			stats.Skipped++
			continue
		}
		stats.Movies++
		stats.Inserted += n
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit movies: %w", err)
	}
	return nil
}

func (s *Syncer) syncPrograms(ctx context.Context, stats *Stats) error {
	programs, err := s.api.Programs(ctx)
	if err != nil {
		return fmt.Errorf("list programs: %w", err)
	}

	var bar *progressbar.ProgressBar
	if s.progress != nil {
		bar = progressbar.NewOptions(len(programs),
			progressbar.OptionSetWriter(s.progress),
			progressbar.OptionSetDescription("Programs"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Finish() }()
	}

	for _, p := range programs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Add(1)
		}

		s.log.Info("fetching data", "title", p.Name)

		asset, err := s.buildProgram(ctx, p)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.Error("failed to fetch program", "title", p.Name, "error", err)
			stats.Skipped++
			continue
		}

		n, err := s.save(asset)
		if err != nil {
			s.log.Error("failed to save program", "title", p.Name, "error", err)
			stats.Skipped++
			continue
		}
		stats.Programs++
		stats.Episodes += len(asset.Episodes)
		stats.Inserted += n
	}
	return nil
}

// save writes one asset in its own transaction so a program and its episodes land together.
func (s *Syncer) save(a catalog.Asset) (int, error) {
	tx, err := s.store.Begin()
	if err != nil {
		return 0, err
	}
	n, err := tx.SaveAsset(a)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}

func (s *Syncer) buildProgram(ctx context.Context, p sbs.Program) (*catalog.Program, error) {
	id, err := p.ID.Int64()
	if err != nil {
		return nil, err
	}
	episodes, detail, err := s.api.Episodes(ctx, p)
	if err != nil {
		return nil, err
	}

	prog := &catalog.Program{ID: id, Name: p.Name}
	if p.IsSeries() && detail != nil {
		prog.Seasons = len(detail.Seasons)
	}
	for _, e := range episodes {
		eid, err := e.ID.Int64()
		if err != nil {
			s.log.Warn("skipping episode", "program", p.Name, "title", e.Title, "error", err)
			continue
		}
		prog.Episodes = append(prog.Episodes, catalog.Episode{ID: eid, Title: e.Title, TitleID: id})
	}
	return prog, nil
}

// BuildMovie converts a movie feed entry into a catalog asset.
func BuildMovie(m sbs.Movie) (*catalog.Movie, error) {
	id, err := m.ID.Int64()
	if err != nil {
		return nil, err
	}
	return &catalog.Movie{ID: id, Name: m.Title}, nil
}

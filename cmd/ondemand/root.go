package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vmunix/ondemand/internal/catalog"
	"github.com/vmunix/ondemand/internal/config"
	"github.com/vmunix/ondemand/pkg/fetch"
)

var version = "dev"

// exitInterrupted is the conventional status for a process stopped by SIGINT.
const exitInterrupted = 130

var (
	cfgFile  string
	logLevel string
	dbPath   string
)

var rootCmd = &cobra.Command{
	Use:   "ondemand",
	Short: "Mirror the SBS On Demand catalog and download titles",
	Long: `ondemand - SBS On Demand catalog mirror and downloader

Sync the public video catalog into a local SQLite database, then
download a movie or every episode of a program by title.

Examples:
  ondemand sync
  ondemand search "mystery"
  ondemand download "mystery road" ~/Videos -n 3`,
	SilenceUsage: true,
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return exitCode(ctx, rootCmd.ExecuteContext(ctx))
}

func exitCode(ctx context.Context, err error) int {
	switch {
	case ctx.Err() != nil:
		fmt.Fprintln(os.Stderr, "interrupted")
		return exitInterrupted
	case err != nil:
		return 1
	default:
		return 0
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Catalog database path")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("ondemand {{.Version}}\n")
}

// env is the resolved runtime shared by the catalog commands.
type env struct {
	cfg *config.Config
	log *slog.Logger
}

// setupEnv loads .env, resolves the config and applies flag overrides.
func setupEnv() (*env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, _, err := config.Resolve(cfgFile)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	slog.SetDefault(log)

	return &env{cfg: cfg, log: log}, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newFetcher builds the retrying HTTP client from the [http] section.
func (e *env) newFetcher() *fetch.Client {
	return fetch.New(
		fetch.WithHTTPClient(&http.Client{Timeout: e.cfg.HTTP.Timeout.Duration}),
		fetch.WithMaxRetries(e.cfg.HTTP.MaxRetries),
		fetch.WithRetryDelay(e.cfg.HTTP.RetryDelay.Duration),
		fetch.WithUserAgent(e.cfg.HTTP.UserAgent),
		fetch.WithLogger(e.log),
	)
}

// openCatalog takes the catalog lock and opens the store. Writers lock
// exclusively. The returned func releases both.
func (e *env) openCatalog(exclusive bool) (*catalog.Store, func(), error) {
	path := e.cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create db dir: %w", err)
	}

	lock, err := catalog.AcquireLock(path, exclusive)
	if errors.Is(err, catalog.ErrLocked) {
		return nil, nil, fmt.Errorf("%s is in use by another ondemand process: %w", path, err)
	}
	if err != nil {
		return nil, nil, err
	}

	db, err := catalog.Open(path)
	if err != nil {
		_ = lock.Release()
		return nil, nil, err
	}

	closeFn := func() {
		_ = db.Close()
		_ = lock.Release()
	}
	return catalog.NewStore(db), closeFn, nil
}

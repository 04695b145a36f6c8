package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/ondemand/internal/download"
	"github.com/vmunix/ondemand/internal/resolve"
)

var downloadCmd = &cobra.Command{
	Use:   "download <title-fragment> <output-dir>",
	Short: "Download a movie or every episode of a program",
	Long: `Download the title whose name contains the fragment (case-insensitive).

Nothing is downloaded unless exactly one title matches; otherwise the
candidates are listed. Episodes are downloaded in parallel.

Examples:
  ondemand download "mystery road" ~/Videos
  ondemand download vikings . -n 2
  ondemand download "the bridge" /tmp --dry-run`,
	Args: cobra.ExactArgs(2),
	RunE: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().IntP("download-threads", "n", download.DefaultConcurrency, "Episodes downloaded at once")
	downloadCmd.Flags().Bool("dry-run", false, "Resolve stream URLs without writing files")
}

func runDownload(cmd *cobra.Command, args []string) error {
	fragment := args[0]
	outputDir, err := download.ValidateOutputDir(args[1])
	if err != nil {
		return err
	}

	e, err := setupEnv()
	if err != nil {
		return err
	}

	threads := e.cfg.Download.Threads
	if cmd.Flags().Changed("download-threads") {
		threads, _ = cmd.Flags().GetInt("download-threads")
	}
	if threads < 1 {
		return fmt.Errorf("download-threads: must be at least 1, got %d", threads)
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	store, closeFn, err := e.openCatalog(false)
	if err != nil {
		return err
	}
	defer closeFn()

	pipeline := resolve.New(e.newFetcher(), resolve.NewFFmpeg(e.cfg.Download.FFmpeg),
		resolve.WithPlayerURL(e.cfg.Upstream.PlayerURL),
		resolve.WithDryRun(dryRun),
		resolve.WithLogger(e.log),
	)
	scheduler := download.NewScheduler(store, pipeline, e.log)
	svc := download.NewService(store, scheduler, e.cfg.Download.MaxResults, e.log)

	match, err := svc.MatchAndDownload(cmd.Context(), fragment, outputDir, threads)
	if err != nil {
		return err
	}
	if match.Outcome != download.OutcomeDispatched {
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(match.Report(), "\n"))
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vmunix/ondemand/internal/catalogsync"
	"github.com/vmunix/ondemand/pkg/sbs"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror the upstream catalog into the local database",
	Long: `Fetch every movie and program with its episodes and store them.

Existing rows are kept, so repeated runs only add new titles. A program
that fails to fetch is logged and skipped.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().Bool("no-progress", false, "Disable the progress bar")
}

func runSync(cmd *cobra.Command, args []string) error {
	e, err := setupEnv()
	if err != nil {
		return err
	}
	store, closeFn, err := e.openCatalog(true)
	if err != nil {
		return err
	}
	defer closeFn()

	client := sbs.New(e.newFetcher(),
		sbs.WithAPIRoot(e.cfg.Upstream.APIRoot),
		sbs.WithFeedPath(e.cfg.Upstream.FeedPath),
		sbs.WithLogger(e.log),
	)

	var opts []catalogsync.Option
	if noProgress, _ := cmd.Flags().GetBool("no-progress"); !noProgress && isTerminal(os.Stderr) {
		opts = append(opts, catalogsync.WithProgress(os.Stderr))
	}

	stats, err := catalogsync.New(client, store, e.log, opts...).Run(cmd.Context())
	if cmd.Context().Err() != nil {
		return cmd.Context().Err()
	}
	printSyncStats(cmd.OutOrStdout(), stats)
	if err != nil {
		// List failures were logged by the syncer; whatever was fetched is stored.
		e.log.Warn("sync incomplete", "error", err)
	}
	return nil
}

func printSyncStats(w io.Writer, s catalogsync.Stats) {
	fmt.Fprintf(w, "Movies:   %d\n", s.Movies)
	fmt.Fprintf(w, "Programs: %d\n", s.Programs)
	fmt.Fprintf(w, "Episodes: %d\n", s.Episodes)
	fmt.Fprintf(w, "New rows: %d\n", s.Inserted)
	if s.Skipped > 0 {
		fmt.Fprintf(w, "Skipped:  %d\n", s.Skipped)
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/vmunix/ondemand/internal/catalog"
)

var searchCmd = &cobra.Command{
	Use:   "search <fragment>...",
	Short: "List catalog titles matching a fragment",
	Long: `List titles whose name contains the fragment, with their episode counts.

Examples:
  ondemand search mystery
  ondemand search the bridge --limit 50`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int("limit", 0, "Maximum titles to list (0: no limit)")
}

// titleRow is one line of search output.
type titleRow struct {
	Title    catalog.Title
	Episodes int
}

func runSearch(cmd *cobra.Command, args []string) error {
	fragment := strings.Join(args, " ")
	limit, _ := cmd.Flags().GetInt("limit")

	e, err := setupEnv()
	if err != nil {
		return err
	}
	store, closeFn, err := e.openCatalog(false)
	if err != nil {
		return err
	}
	defer closeFn()

	titles, err := store.FindTitles(fragment, limit)
	if err != nil {
		return err
	}
	if len(titles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No results")
		return nil
	}

	rows := make([]titleRow, 0, len(titles))
	for _, t := range titles {
		n, err := store.CountEpisodes(t.ID)
		if err != nil {
			return err
		}
		rows = append(rows, titleRow{Title: t, Episodes: n})
	}
	printTitleTable(cmd.OutOrStdout(), rows)
	return nil
}

func printTitleTable(w io.Writer, rows []titleRow) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"ID", "Title", "Episodes"})
	for _, r := range rows {
		episodes := strconv.Itoa(r.Episodes)
		if r.Episodes == 0 {
			episodes = "movie"
		}
		tw.AppendRow(table.Row{r.Title.ID, r.Title.Title, episodes})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	fmt.Fprintln(w, tw.Render())
}

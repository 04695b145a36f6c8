package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/ondemand/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, ranges and environment variable substitution.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			printConfigErrors(out, cfgErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Database:  %s (log: %s)\n", cfg.Database.Path, cfg.Log.Level)
	fmt.Fprintf(w, "  HTTP:      %d attempts, %s apart, %s timeout\n",
		cfg.HTTP.MaxRetries, cfg.HTTP.RetryDelay, cfg.HTTP.Timeout)
	fmt.Fprintf(w, "  API:       %s\n", cfg.Upstream.APIRoot)
	fmt.Fprintf(w, "  Player:    %s\n", cfg.Upstream.PlayerURL)
	fmt.Fprintf(w, "  Download:  %d threads via %s, %d candidates listed\n",
		cfg.Download.Threads, cfg.Download.FFmpeg, cfg.Download.MaxResults)
}

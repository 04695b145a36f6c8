package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vmunix/ondemand/internal/catalog"
)

// executeCommand runs the root command with args and returns its stdout.
// Every run gets an empty config file so discovery never reads the host's.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, logLevel, dbPath = "", "", ""

	cfg := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[log]\nlevel = \"error\"\n"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// seedCatalog creates a catalog database holding titles with ids 1..n.
func seedCatalog(t *testing.T, titles ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ondemand.db")
	db, err := catalog.Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := catalog.NewStore(db)
	for i, title := range titles {
		_, err := store.AddTitle(catalog.Title{ID: int64(i + 1), Title: title})
		require.NoError(t, err)
	}
	return path
}

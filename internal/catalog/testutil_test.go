package catalog

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err, "open db")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

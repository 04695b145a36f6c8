package catalog

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/vmunix/ondemand/internal/migrations"

	_ "modernc.org/sqlite"
)

// querier abstracts *sql.DB and *sql.Tx for shared query logic.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// Open opens the SQLite catalog at path and creates the tables if absent.
// Foreign keys are enforced on every connection.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One writer; also keeps ":memory:" databases on a single connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Store provides access to catalog data.
type Store struct {
	db *sql.DB
}

// NewStore creates a new catalog store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Begin starts a transaction.
func (s *Store) Begin() (*Tx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Tx{tx: tx}, nil
}

// Tx wraps a database transaction with the same write methods as Store.
type Tx struct {
	tx *sql.Tx
}

// Commit commits the transaction.
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction.
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// mapSQLiteError converts SQLite errors to custom error types.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check error message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return ErrDuplicate
	}
	if strings.Contains(errStr, "FOREIGN KEY constraint failed") ||
		strings.Contains(errStr, "CHECK constraint failed") {
		return ErrConstraint
	}
	return err
}

// SaveAsset persists an asset: its title row first, then any episodes.
// Existing rows are left untouched. Returns the number of rows inserted.
func (t *Tx) SaveAsset(a Asset) (int, error) {
	inserted := 0
	ok, err := t.AddTitle(a.Record())
	if err != nil {
		return 0, err
	}
	if ok {
		inserted++
	}

	p, isProgram := a.(*Program)
	if !isProgram {
		return inserted, nil
	}
	for _, e := range p.Episodes {
		e.TitleID = p.ID
		ok, err := t.AddEpisode(e)
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

// Counts is the number of rows in each catalog table.
type Counts struct {
	Titles   int
	Episodes int
}

// Counts returns the catalog row counts.
func (s *Store) Counts() (Counts, error) {
	var c Counts
	if err := s.db.QueryRow("SELECT COUNT(*) FROM titles").Scan(&c.Titles); err != nil {
		return c, fmt.Errorf("count titles: %w", err)
	}
	if err := s.db.QueryRow("SELECT COUNT(*) FROM episodes").Scan(&c.Episodes); err != nil {
		return c, fmt.Errorf("count episodes: %w", err)
	}
	return c, nil
}

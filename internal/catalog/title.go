package catalog

import (
	"fmt"
	"strings"
)

func addTitle(q querier, t Title) (bool, error) {
	result, err := q.Exec(`INSERT OR IGNORE INTO titles (title_id, title) VALUES (?, ?)`, t.ID, t.Title)
	if err != nil {
		return false, fmt.Errorf("insert title %d: %w", t.ID, mapSQLiteError(err))
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// AddTitle inserts a title unless one with the same id already exists.
// Reports whether a row was inserted; an existing row is never overwritten.
func (s *Store) AddTitle(t Title) (bool, error) { return addTitle(s.db, t) }

// AddTitle inserts a title within a transaction.
func (t *Tx) AddTitle(title Title) (bool, error) { return addTitle(t.tx, title) }

// GetTitle retrieves a title by id.
// Returns ErrNotFound if the title does not exist.
func (s *Store) GetTitle(id int64) (*Title, error) {
	t := &Title{}
	err := s.db.QueryRow(`SELECT title_id, title FROM titles WHERE title_id = ?`, id).Scan(&t.ID, &t.Title)
	if err != nil {
		return nil, fmt.Errorf("get title %d: %w", id, mapSQLiteError(err))
	}
	return t, nil
}

// FindTitles returns titles containing fragment, ignoring case, in id order.
// A limit of 0 returns every match. Case is folded in Go because SQLite's
// LOWER only folds ASCII.
func (s *Store) FindTitles(fragment string, limit int) ([]Title, error) {
	rows, err := s.db.Query(`SELECT title_id, title FROM titles ORDER BY title_id`)
	if err != nil {
		return nil, fmt.Errorf("find titles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	needle := strings.ToLower(fragment)
	var results []Title
	for rows.Next() {
		var t Title
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, fmt.Errorf("scan title: %w", err)
		}
		if !strings.Contains(strings.ToLower(t.Title), needle) {
			continue
		}
		results = append(results, t)
		if limit > 0 && len(results) == limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate titles: %w", err)
	}
	return results, nil
}

// AllTitles returns every title in id order.
func (s *Store) AllTitles() ([]Title, error) {
	return s.queryTitles(`SELECT title_id, title FROM titles ORDER BY title_id`)
}

func (s *Store) queryTitles(query string, args ...any) ([]Title, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []Title
	for rows.Next() {
		var t Title
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, fmt.Errorf("scan title: %w", err)
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate titles: %w", err)
	}
	return results, nil
}

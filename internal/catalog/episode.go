package catalog

import "fmt"

func addEpisode(q querier, e Episode) (bool, error) {
	result, err := q.Exec(`INSERT OR IGNORE INTO episodes (episode_id, title, title_id) VALUES (?, ?, ?)`,
		e.ID, e.Title, e.TitleID,
	)
	if err != nil {
		return false, fmt.Errorf("insert episode %d: %w", e.ID, mapSQLiteError(err))
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// AddEpisode inserts an episode unless one with the same id already exists.
// Returns ErrConstraint if the parent title is missing.
func (s *Store) AddEpisode(e Episode) (bool, error) { return addEpisode(s.db, e) }

// AddEpisode inserts an episode within a transaction.
func (t *Tx) AddEpisode(e Episode) (bool, error) { return addEpisode(t.tx, e) }

// ListEpisodes returns the episodes of a title in store order.
// A movie has none.
func (s *Store) ListEpisodes(titleID int64) ([]Episode, error) {
	rows, err := s.db.Query(`
		SELECT episode_id, title, title_id FROM episodes
		WHERE title_id = ? ORDER BY episode_id`, titleID)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []Episode
	for rows.Next() {
		var e Episode
		if err := rows.Scan(&e.ID, &e.Title, &e.TitleID); err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate episodes: %w", err)
	}
	return results, nil
}

// CountEpisodes returns the number of episodes stored for a title.
func (s *Store) CountEpisodes(titleID int64) (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM episodes WHERE title_id = ?`, titleID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count episodes: %w", err)
	}
	return n, nil
}

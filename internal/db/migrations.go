package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS elements (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			kind       TEXT NOT NULL CHECK(kind IN ('character', 'unit', 'support', 'other')),
			name       TEXT NOT NULL,
			points     INTEGER NOT NULL CHECK(points >= 0),
			image      TEXT,
			position   INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_elements_position ON elements(position);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating elements table: %w", err)
	}

	return nil
}

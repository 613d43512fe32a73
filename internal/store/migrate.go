package store

import (
	"database/sql"
	"fmt"
)

// Migrate brings the schema up to date, tracked via PRAGMA user_version.
func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1: tables ----

	stmts := []string{
		`
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE
);
`,
		`
CREATE TABLE IF NOT EXISTS food_places (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  type TEXT NOT NULL,
  location TEXT NOT NULL DEFAULT '',
  tags TEXT NOT NULL DEFAULT '[]',
  hours TEXT NOT NULL DEFAULT '{}'
);
`,
		`
CREATE TABLE IF NOT EXISTS preferences (
  user_id TEXT PRIMARY KEY REFERENCES users(id),
  dietary TEXT NOT NULL DEFAULT '[]',
  budget REAL NOT NULL DEFAULT 20,
  dislikes TEXT NOT NULL DEFAULT '[]',
  favorite_tags TEXT NOT NULL DEFAULT '[]'
);
`,
		`
CREATE TABLE IF NOT EXISTS ratings (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id),
  place_id TEXT NOT NULL REFERENCES food_places(id),
  rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
  comment TEXT,
  created_at TEXT NOT NULL
);
`,
		`
CREATE TABLE IF NOT EXISTS friends (
  user_id TEXT NOT NULL REFERENCES users(id),
  friend_id TEXT NOT NULL REFERENCES users(id),
  status TEXT NOT NULL DEFAULT 'pending',
  PRIMARY KEY (user_id, friend_id)
);
`,
		`
CREATE TABLE IF NOT EXISTS specials (
  id TEXT PRIMARY KEY,
  place_id TEXT NOT NULL REFERENCES food_places(id),
  title TEXT NOT NULL,
  description TEXT,
  price REAL NOT NULL,
  date TEXT NOT NULL,
  tags TEXT NOT NULL DEFAULT '[]',
  source_id TEXT NOT NULL DEFAULT ''
);
`,
	}
	for _, s := range stmts {
		if _, err := tx.Exec(s); err != nil {
			return fmt.Errorf("migrate v1: %w", err)
		}
	}

	// ---- Schema v1: indexes ----

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_ratings_user_created ON ratings(user_id, created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_ratings_place ON ratings(place_id);`,
		`CREATE INDEX IF NOT EXISTS idx_specials_date ON specials(date);`,
		`CREATE INDEX IF NOT EXISTS idx_friends_user_status ON friends(user_id, status);`,
		// Imported specials dedupe on their source key, same trick as any
		// partial unique index on an optional column.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_specials_source_id ON specials(source_id) WHERE source_id != '';`,
	}
	for _, s := range indexes {
		if _, err := tx.Exec(s); err != nil {
			return fmt.Errorf("migrate v1 indexes: %w", err)
		}
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

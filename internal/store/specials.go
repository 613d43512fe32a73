package store

import (
	"context"
	"database/sql"
	"fmt"

	"foodcompass-engine/internal/domain"

	"github.com/google/uuid"
)

// SpecialsForDate returns the specials active on one calendar day
// (YYYY-MM-DD). Date filtering happens here so the scorers only ever see
// "today's" deals.
func SpecialsForDate(ctx context.Context, db *sql.DB, date string) ([]domain.Special, error) {
	rows, err := db.QueryContext(ctx, `
SELECT id, place_id, title, description, price, date, tags
FROM specials
WHERE date = ?
ORDER BY id;`, date)
	if err != nil {
		return nil, fmt.Errorf("specials for date: %w", err)
	}
	defer rows.Close()

	var out []domain.Special
	for rows.Next() {
		var sp domain.Special
		var desc sql.NullString
		var tagsJSON string
		if err := rows.Scan(&sp.ID, &sp.PlaceID, &sp.Title, &desc, &sp.Price, &sp.Date, &tagsJSON); err != nil {
			return nil, err
		}
		if desc.Valid {
			sp.Description = &desc.String
		}
		sp.Tags = unmarshalTags(tagsJSON)
		out = append(out, sp)
	}
	return out, rows.Err()
}

func InsertSpecial(ctx context.Context, db *sql.DB, sp domain.Special) error {
	if sp.ID == "" {
		sp.ID = uuid.NewString()
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO specials (id, place_id, title, description, price, date, tags)
VALUES (?, ?, ?, ?, ?, ?, ?);`,
		sp.ID, sp.PlaceID, sp.Title, sp.Description, sp.Price, sp.Date, marshalJSON(sp.Tags))
	if err != nil {
		return fmt.Errorf("insert special: %w", err)
	}
	return nil
}

// InsertSpecialIgnore inserts an imported special keyed by its source id,
// skipping duplicates. Relies on the partial unique index on source_id.
func InsertSpecialIgnore(ctx context.Context, db *sql.DB, sp domain.Special, sourceID string) (added bool, err error) {
	if sp.ID == "" {
		sp.ID = uuid.NewString()
	}
	_, err = db.ExecContext(ctx, `
INSERT OR IGNORE INTO specials (id, place_id, title, description, price, date, tags, source_id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		sp.ID, sp.PlaceID, sp.Title, sp.Description, sp.Price, sp.Date, marshalJSON(sp.Tags), sourceID)
	if err != nil {
		return false, fmt.Errorf("insert special: %w", err)
	}

	var changes int
	if e := db.QueryRowContext(ctx, `SELECT changes();`).Scan(&changes); e == nil {
		return changes > 0, nil
	}
	return true, nil
}

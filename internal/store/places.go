package store

import (
	"context"
	"database/sql"
	"fmt"

	"foodcompass-engine/internal/domain"
)

func ListPlaces(ctx context.Context, db *sql.DB) ([]domain.Place, error) {
	rows, err := db.QueryContext(ctx, `
SELECT id, name, type, location, tags, hours
FROM food_places
ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer rows.Close()

	var out []domain.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func GetPlace(ctx context.Context, db *sql.DB, id string) (*domain.Place, error) {
	row := db.QueryRowContext(ctx, `
SELECT id, name, type, location, tags, hours
FROM food_places
WHERE id = ?
LIMIT 1;`, id)

	p, err := scanPlace(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get place: %w", err)
	}
	return &p, nil
}

func InsertPlace(ctx context.Context, db *sql.DB, p domain.Place) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO food_places (id, name, type, location, tags, hours)
VALUES (?, ?, ?, ?, ?, ?);`,
		p.ID, p.Name, p.Type, p.Location, marshalJSON(p.Tags), marshalJSON(p.Hours))
	if err != nil {
		return fmt.Errorf("insert place: %w", err)
	}
	return nil
}

// GetPlaceIDByName resolves a place by its display name, empty id when
// not found. Ingest sources are configured by name, not id.
func GetPlaceIDByName(ctx context.Context, db *sql.DB, name string) (string, error) {
	var id string
	err := db.QueryRowContext(ctx, `SELECT id FROM food_places WHERE name = ? LIMIT 1;`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("place by name: %w", err)
	}
	return id, nil
}

func CountPlaces(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM food_places;`).Scan(&n)
	return n, err
}

// PlaceTagIndex returns place_id -> tags for every place. The specials
// scorer pools a special's own tags with its place's tags.
func PlaceTagIndex(ctx context.Context, db *sql.DB) (map[string][]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, tags FROM food_places;`)
	if err != nil {
		return nil, fmt.Errorf("place tag index: %w", err)
	}
	defer rows.Close()

	out := map[string][]string{}
	for rows.Next() {
		var id, tagsJSON string
		if err := rows.Scan(&id, &tagsJSON); err != nil {
			return nil, err
		}
		out[id] = unmarshalTags(tagsJSON)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlace(row rowScanner) (domain.Place, error) {
	var p domain.Place
	var tagsJSON, hoursJSON string
	if err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Location, &tagsJSON, &hoursJSON); err != nil {
		return domain.Place{}, err
	}
	p.Tags = unmarshalTags(tagsJSON)
	p.Hours = unmarshalHours(hoursJSON)
	return p, nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"foodcompass-engine/internal/domain"
)

// GetPreferences returns nil (no error) when the user has no row; the
// recommender decides whether that is fatal.
func GetPreferences(ctx context.Context, db *sql.DB, userID string) (*domain.Preferences, error) {
	row := db.QueryRowContext(ctx, `
SELECT user_id, dietary, budget, dislikes, favorite_tags
FROM preferences
WHERE user_id = ?
LIMIT 1;`, userID)

	var p domain.Preferences
	var dietaryJSON, dislikesJSON, favoritesJSON string
	err := row.Scan(&p.UserID, &dietaryJSON, &p.Budget, &dislikesJSON, &favoritesJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}

	p.Dietary = unmarshalTags(dietaryJSON)
	p.Dislikes = unmarshalTags(dislikesJSON)
	p.FavoriteTags = unmarshalTags(favoritesJSON)
	return &p, nil
}

func UpsertPreferences(ctx context.Context, db *sql.DB, p domain.Preferences) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO preferences (user_id, dietary, budget, dislikes, favorite_tags)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
  dietary = excluded.dietary,
  budget = excluded.budget,
  dislikes = excluded.dislikes,
  favorite_tags = excluded.favorite_tags;`,
		p.UserID, marshalJSON(p.Dietary), p.Budget, marshalJSON(p.Dislikes), marshalJSON(p.FavoriteTags))
	if err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}

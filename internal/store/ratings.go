package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"foodcompass-engine/internal/domain"
	"foodcompass-engine/internal/recommend"

	"github.com/google/uuid"
)

func InsertRating(ctx context.Context, db *sql.DB, r domain.Rating) (domain.Rating, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.Rating < 1 || r.Rating > 5 {
		return domain.Rating{}, fmt.Errorf("rating %d out of range 1..5", r.Rating)
	}

	_, err := db.ExecContext(ctx, `
INSERT INTO ratings (id, user_id, place_id, rating, comment, created_at)
VALUES (?, ?, ?, ?, ?, ?);`,
		r.ID, r.UserID, r.PlaceID, r.Rating, r.Comment, r.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return domain.Rating{}, fmt.Errorf("insert rating: %w", err)
	}
	return r, nil
}

// ListUserRatings returns the user's most recent ratings, newest first,
// with the rated place's name and tags denormalized for the recommender.
func ListUserRatings(ctx context.Context, db *sql.DB, userID string, limit int) ([]domain.Rating, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.QueryContext(ctx, `
SELECT r.id, r.user_id, r.place_id, r.rating, r.comment, r.created_at, p.name, p.tags
FROM ratings r
JOIN food_places p ON p.id = r.place_id
WHERE r.user_id = ?
ORDER BY r.created_at DESC
LIMIT ?;`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list user ratings: %w", err)
	}
	defer rows.Close()
	return scanRatings(rows)
}

// FriendHighRatings returns ratings >= 4 stars left within the window by
// the user's accepted friends, with place details attached. This is the
// pre-filtered social signal the full recommender expects.
func FriendHighRatings(ctx context.Context, db *sql.DB, userID string, window time.Duration) ([]domain.Rating, error) {
	since := time.Now().UTC().Add(-window).Format(time.RFC3339)
	rows, err := db.QueryContext(ctx, `
SELECT r.id, r.user_id, r.place_id, r.rating, r.comment, r.created_at, p.name, p.tags
FROM ratings r
JOIN friends f ON f.friend_id = r.user_id AND f.user_id = ? AND f.status = 'accepted'
JOIN food_places p ON p.id = r.place_id
WHERE r.rating >= 4 AND r.created_at >= ?
ORDER BY r.created_at DESC;`, userID, since)
	if err != nil {
		return nil, fmt.Errorf("friend high ratings: %w", err)
	}
	defer rows.Close()
	return scanRatings(rows)
}

// FriendStats aggregates accepted friends' ratings >= 4 per place, with no
// recency window. The mood scorer consumes this map directly.
func FriendStats(ctx context.Context, db *sql.DB, userID string) (map[string]recommend.FriendStat, error) {
	rows, err := db.QueryContext(ctx, `
SELECT r.place_id, AVG(r.rating), COUNT(*)
FROM ratings r
JOIN friends f ON f.friend_id = r.user_id AND f.user_id = ? AND f.status = 'accepted'
WHERE r.rating >= 4
GROUP BY r.place_id;`, userID)
	if err != nil {
		return nil, fmt.Errorf("friend stats: %w", err)
	}
	defer rows.Close()

	out := map[string]recommend.FriendStat{}
	for rows.Next() {
		var placeID string
		var stat recommend.FriendStat
		if err := rows.Scan(&placeID, &stat.Avg, &stat.Count); err != nil {
			return nil, err
		}
		out[placeID] = stat
	}
	return out, rows.Err()
}

func scanRatings(rows *sql.Rows) ([]domain.Rating, error) {
	var out []domain.Rating
	for rows.Next() {
		var r domain.Rating
		var comment sql.NullString
		var createdAt, tagsJSON string
		if err := rows.Scan(&r.ID, &r.UserID, &r.PlaceID, &r.Rating, &comment, &createdAt, &r.PlaceName, &tagsJSON); err != nil {
			return nil, err
		}
		if comment.Valid {
			r.Comment = &comment.String
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		r.PlaceTags = unmarshalTags(tagsJSON)
		out = append(out, r)
	}
	return out, rows.Err()
}

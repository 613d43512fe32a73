package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"foodcompass-engine/internal/domain"
)

func InsertFriendship(ctx context.Context, db *sql.DB, f domain.Friendship) error {
	if f.Status == "" {
		f.Status = domain.FriendPending
	}
	_, err := db.ExecContext(ctx, `
INSERT OR IGNORE INTO friends (user_id, friend_id, status)
VALUES (?, ?, ?);`, f.UserID, f.FriendID, f.Status)
	if err != nil {
		return fmt.Errorf("insert friendship: %w", err)
	}
	return nil
}

func CountAcceptedFriends(ctx context.Context, db *sql.DB, userID string) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM friends WHERE user_id = ? AND status = 'accepted';`, userID).Scan(&n)
	return n, err
}

// ActivityEntry is one row of the friends feed: who rated what, joined
// with user and place details.
type ActivityEntry struct {
	Rating domain.Rating `json:"rating"`
	User   domain.User   `json:"user"`
	Place  domain.Place  `json:"place"`
}

// FriendActivity returns the latest ratings left by the user's accepted
// friends, newest first.
func FriendActivity(ctx context.Context, db *sql.DB, userID string, limit int) ([]ActivityEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.QueryContext(ctx, `
SELECT r.id, r.user_id, r.place_id, r.rating, r.comment, r.created_at,
       u.id, u.name, u.email,
       p.id, p.name, p.type, p.location, p.tags, p.hours
FROM ratings r
JOIN friends f ON f.friend_id = r.user_id AND f.user_id = ? AND f.status = 'accepted'
JOIN users u ON u.id = r.user_id
JOIN food_places p ON p.id = r.place_id
ORDER BY r.created_at DESC
LIMIT ?;`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("friend activity: %w", err)
	}
	defer rows.Close()

	var out []ActivityEntry
	for rows.Next() {
		var e ActivityEntry
		var comment sql.NullString
		var createdAt, tagsJSON, hoursJSON string
		if err := rows.Scan(
			&e.Rating.ID, &e.Rating.UserID, &e.Rating.PlaceID, &e.Rating.Rating, &comment, &createdAt,
			&e.User.ID, &e.User.Name, &e.User.Email,
			&e.Place.ID, &e.Place.Name, &e.Place.Type, &e.Place.Location, &tagsJSON, &hoursJSON,
		); err != nil {
			return nil, err
		}
		if comment.Valid {
			e.Rating.Comment = &comment.String
		}
		e.Rating.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		e.Place.Tags = unmarshalTags(tagsJSON)
		e.Place.Hours = unmarshalHours(hoursJSON)
		out = append(out, e)
	}
	return out, rows.Err()
}

func InsertUser(ctx context.Context, db *sql.DB, u domain.User) error {
	_, err := db.ExecContext(ctx, `
INSERT OR IGNORE INTO users (id, name, email)
VALUES (?, ?, ?);`, u.ID, u.Name, u.Email)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUserIDByEmail resolves a user by email, nil error and empty id when
// no such user exists.
func GetUserIDByEmail(ctx context.Context, db *sql.DB, email string) (string, error) {
	var id string
	err := db.QueryRowContext(ctx, `SELECT id FROM users WHERE email = ? LIMIT 1;`, email).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("user by email: %w", err)
	}
	return id, nil
}

func ListUsers(ctx context.Context, db *sql.DB) ([]domain.User, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, email FROM users ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

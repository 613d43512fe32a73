package domain

import "time"

// Rating is one user's 1-5 star review of a place. PlaceTags carries the
// rated place's tags denormalized for the recommender, which compares tag
// overlap without another lookup.
type Rating struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PlaceID   string    `json:"place_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	PlaceName string   `json:"place_name,omitempty"`
	PlaceTags []string `json:"place_tags,omitempty"`
}

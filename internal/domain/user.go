package domain

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Preferences is the per-user taste profile. Exactly one row per user.
// All slices are non-nil after the store boundary; absent DB values
// normalize to empty slices, never nil maps of meaning.
type Preferences struct {
	UserID       string   `json:"user_id"`
	Dietary      []string `json:"dietary"`
	Budget       float64  `json:"budget"`
	Dislikes     []string `json:"dislikes"`
	FavoriteTags []string `json:"favorite_tags"`
}

// Friendship statuses. Only accepted friendships feed the scorers.
const (
	FriendAccepted = "accepted"
	FriendPending  = "pending"
	FriendBlocked  = "blocked"
)

type Friendship struct {
	UserID   string `json:"user_id"`
	FriendID string `json:"friend_id"`
	Status   string `json:"status"`
}

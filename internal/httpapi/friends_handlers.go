package httpapi

import (
	"database/sql"
	"net/http"
	"time"

	"foodcompass-engine/internal/store"
	"foodcompass-engine/internal/timeutil"
)

type FriendsHandler struct {
	DB     *sql.DB
	UserID func(r *http.Request) string
}

type activityItem struct {
	User    string    `json:"user"`
	Place   string    `json:"place"`
	Rating  int       `json:"rating"`
	Comment *string   `json:"comment,omitempty"`
	RatedAt time.Time `json:"rated_at"`
	TimeAgo string    `json:"time_ago"`
}

type activityStats struct {
	Friends     int `json:"friends"`
	Last24h     int `json:"ratings_last_24h"`
	HighRatings int `json:"high_ratings"`
}

// Activity serves GET /friends/activity?user=: the latest ratings by
// accepted friends plus a few feed stats.
func (h FriendsHandler) Activity(w http.ResponseWriter, r *http.Request) {
	userID := h.UserID(r)
	if userID == "" {
		WriteError(w, r, http.StatusNotFound, "user_not_found", "no such user")
		return
	}

	entries, err := store.FriendActivity(r.Context(), h.DB, userID, 20)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "load_failed", err.Error())
		return
	}
	friends, err := store.CountAcceptedFriends(r.Context(), h.DB, userID)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "load_failed", err.Error())
		return
	}

	now := time.Now().UTC()
	items := make([]activityItem, 0, len(entries))
	stats := activityStats{Friends: friends}
	for _, e := range entries {
		items = append(items, activityItem{
			User:    e.User.Name,
			Place:   e.Place.Name,
			Rating:  e.Rating.Rating,
			Comment: e.Rating.Comment,
			RatedAt: e.Rating.CreatedAt,
			TimeAgo: timeutil.TimeAgo(e.Rating.CreatedAt, now),
		})
		if timeutil.WithinDays(e.Rating.CreatedAt, now, 1) {
			stats.Last24h++
		}
		if e.Rating.Rating >= 4 {
			stats.HighRatings++
		}
	}

	writeJSON(w, map[string]any{"activity": items, "stats": stats})
}

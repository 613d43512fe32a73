package httpapi

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"foodcompass-engine/internal/recommend"
	"foodcompass-engine/internal/store"
)

type RecommendHandler struct {
	DB     *sql.DB
	UserID func(r *http.Request) string
}

// Get serves GET /recommendations?user=&limit=&detailed=.
func (h RecommendHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := h.UserID(r)
	if userID == "" {
		WriteError(w, r, http.StatusNotFound, "user_not_found", "no such user")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			WriteError(w, r, http.StatusBadRequest, "bad_limit", "limit must be a positive integer")
			return
		}
		limit = n
	}

	in, err := store.LoadRecommendInputs(r.Context(), h.DB, userID)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "load_failed", err.Error())
		return
	}

	if r.URL.Query().Get("detailed") == "true" {
		scored, err := recommend.RecommendDetailed(in, limit)
		if err != nil {
			writeRecommendErr(w, r, err)
			return
		}
		writeJSON(w, scored)
		return
	}

	recs, err := recommend.Recommend(in, limit)
	if err != nil {
		writeRecommendErr(w, r, err)
		return
	}
	writeJSON(w, recs)
}

func writeRecommendErr(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, recommend.ErrPreferencesNotFound) {
		WriteError(w, r, http.StatusNotFound, "preferences_not_found", "set your preferences first")
		return
	}
	WriteError(w, r, http.StatusInternalServerError, "recommend_failed", err.Error())
}

// MoodByPath serves GET /mood/{mood}?user=. Unknown moods come back as an
// empty list, not an error.
func (h RecommendHandler) MoodByPath(w http.ResponseWriter, r *http.Request) {
	mood := strings.TrimPrefix(r.URL.Path, "/mood/")
	if mood == "" || strings.Contains(mood, "/") {
		WriteError(w, r, http.StatusBadRequest, "bad_mood", "expected /mood/{mood}")
		return
	}

	userID := h.UserID(r)
	places, stats, err := store.LoadMoodInputs(r.Context(), h.DB, userID)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "load_failed", err.Error())
		return
	}

	results := recommend.ScoreByMood(mood, places, stats)
	if results == nil {
		results = []recommend.MoodResult{}
	}
	writeJSON(w, map[string]any{"mood": mood, "results": results})
}

func (h RecommendHandler) Moods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, recommend.Moods())
}

package httpapi

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"foodcompass-engine/internal/domain"
	"foodcompass-engine/internal/events"
	"foodcompass-engine/internal/store"
)

type RatingsHandler struct {
	DB     *sql.DB
	Hub    *events.Hub
	UserID func(r *http.Request) string
}

type ratingRequest struct {
	PlaceID string `json:"place_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h RatingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := h.UserID(r)
	if userID == "" {
		WriteError(w, r, http.StatusNotFound, "user_not_found", "no such user")
		return
	}

	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON: "+err.Error())
		return
	}
	if req.PlaceID == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_place", "place_id is required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		WriteError(w, r, http.StatusBadRequest, "bad_rating", "rating must be 1..5")
		return
	}

	place, err := store.GetPlace(r.Context(), h.DB, req.PlaceID)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "load_failed", err.Error())
		return
	}
	if place == nil {
		WriteError(w, r, http.StatusNotFound, "place_not_found", "no such place")
		return
	}

	rating := domain.Rating{UserID: userID, PlaceID: req.PlaceID, Rating: req.Rating}
	if c := strings.TrimSpace(req.Comment); c != "" {
		rating.Comment = &c
	}

	saved, err := store.InsertRating(r.Context(), h.DB, rating)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "insert_failed", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeRatingCreated, 1, map[string]any{
		"id": saved.ID, "place_id": saved.PlaceID, "rating": saved.Rating,
	}))

	WriteJSON(w, http.StatusCreated, saved)
}

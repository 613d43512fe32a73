package httpapi

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"foodcompass-engine/internal/domain"
	"foodcompass-engine/internal/store"
)

type PreferencesHandler struct {
	DB     *sql.DB
	UserID func(r *http.Request) string
}

func (h PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := h.UserID(r)
	if userID == "" {
		WriteError(w, r, http.StatusNotFound, "user_not_found", "no such user")
		return
	}

	prefs, err := store.GetPreferences(r.Context(), h.DB, userID)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "load_failed", err.Error())
		return
	}
	if prefs == nil {
		WriteError(w, r, http.StatusNotFound, "preferences_not_found", "no preferences set")
		return
	}
	writeJSON(w, prefs)
}

type preferencesRequest struct {
	Dietary      []string `json:"dietary"`
	Budget       float64  `json:"budget"`
	Dislikes     []string `json:"dislikes"`
	FavoriteTags []string `json:"favorite_tags"`
}

func (h PreferencesHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID := h.UserID(r)
	if userID == "" {
		WriteError(w, r, http.StatusNotFound, "user_not_found", "no such user")
		return
	}

	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON: "+err.Error())
		return
	}
	if req.Budget < 0 {
		WriteError(w, r, http.StatusBadRequest, "bad_budget", "budget must be >= 0")
		return
	}

	prefs := domain.Preferences{
		UserID:       userID,
		Dietary:      req.Dietary,
		Budget:       req.Budget,
		Dislikes:     req.Dislikes,
		FavoriteTags: req.FavoriteTags,
	}
	if err := store.UpsertPreferences(r.Context(), h.DB, prefs); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "save_failed", err.Error())
		return
	}

	saved, err := store.GetPreferences(r.Context(), h.DB, userID)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "load_failed", err.Error())
		return
	}
	writeJSON(w, saved)
}

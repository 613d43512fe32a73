package httpapi

import (
	"database/sql"
	"net/http"
	"time"

	"foodcompass-engine/internal/domain"
	"foodcompass-engine/internal/recommend"
	"foodcompass-engine/internal/store"
)

type SpecialsHandler struct {
	DB     *sql.DB
	UserID func(r *http.Request) string
}

type specialEntry struct {
	recommend.SpecialResult
	PlaceName string `json:"place_name"`
}

// List serves GET /specials?user=. Anonymous requests are fine: every deal
// scores a flat 0.5 and cheaper ones rank first.
func (h SpecialsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var prefs *domain.Preferences
	if userID := h.UserID(r); userID != "" {
		p, err := store.GetPreferences(ctx, h.DB, userID)
		if err != nil {
			WriteError(w, r, http.StatusInternalServerError, "load_failed", err.Error())
			return
		}
		prefs = p
	}

	today := time.Now().UTC().Format("2006-01-02")
	specials, err := store.SpecialsForDate(ctx, h.DB, today)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "load_failed", err.Error())
		return
	}

	placeTags, err := store.PlaceTagIndex(ctx, h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "load_failed", err.Error())
		return
	}

	places, err := store.ListPlaces(ctx, h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "load_failed", err.Error())
		return
	}
	names := make(map[string]string, len(places))
	for _, p := range places {
		names[p.ID] = p.Name
	}

	ranked := recommend.ScoreSpecials(specials, placeTags, prefs)
	out := make([]specialEntry, 0, len(ranked))
	for _, res := range ranked {
		out = append(out, specialEntry{SpecialResult: res, PlaceName: names[res.Special.PlaceID]})
	}
	writeJSON(w, map[string]any{"date": today, "specials": out})
}

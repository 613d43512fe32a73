package httpapi

import (
	"database/sql"
	"net/http"
	"strings"

	"foodcompass-engine/internal/store"
)

type PlacesHandler struct {
	DB *sql.DB
}

func (h PlacesHandler) List(w http.ResponseWriter, r *http.Request) {
	places, err := store.ListPlaces(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "load_failed", err.Error())
		return
	}
	writeJSON(w, places)
}

func (h PlacesHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/places/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "bad_id", "expected /places/{id}")
		return
	}

	place, err := store.GetPlace(r.Context(), h.DB, id)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "load_failed", err.Error())
		return
	}
	if place == nil {
		WriteError(w, r, http.StatusNotFound, "place_not_found", "no such place")
		return
	}
	writeJSON(w, place)
}

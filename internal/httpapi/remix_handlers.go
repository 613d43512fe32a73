package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"foodcompass-engine/internal/remix"
)

type RemixHandler struct{}

type remixRequest struct {
	Hall     string   `json:"hall"`
	Stations []string `json:"stations"`
	Addons   []string `json:"addons"`
}

func (h RemixHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req remixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON: "+err.Error())
		return
	}

	ideas, err := remix.Generate(req.Hall, req.Stations, req.Addons)
	if errors.Is(err, remix.ErrUnknownHall) {
		WriteError(w, r, http.StatusNotFound, "hall_not_found", err.Error())
		return
	}
	if errors.Is(err, remix.ErrNoStations) {
		WriteError(w, r, http.StatusBadRequest, "no_stations", err.Error())
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "remix_failed", err.Error())
		return
	}
	if ideas == nil {
		ideas = []remix.Idea{}
	}
	writeJSON(w, map[string]any{"ideas": ideas})
}

func (h RemixHandler) Halls(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, remix.Halls())
}

package httpapi

import (
	"context"
	"database/sql"
	"net/http"

	"foodcompass-engine/internal/events"
)

type SeedHandler struct {
	DB      *sql.DB
	Hub     *events.Hub
	RunSeed func(ctx context.Context, db *sql.DB) (bool, error)
}

func (h SeedHandler) Run(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.RunSeed(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "seed_failed", err.Error())
		return
	}
	if seeded {
		reqID := RequestIDFrom(r.Context())
		h.Hub.Publish(events.MakeEvent(reqID, events.TypeSeedCompleted, 1, nil))
	}
	writeJSON(w, map[string]any{"ok": true, "seeded": seeded})
}

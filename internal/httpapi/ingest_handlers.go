package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"sync/atomic"
	"time"

	"foodcompass-engine/internal/config"
	"foodcompass-engine/internal/events"
	"foodcompass-engine/internal/ingest"
)

type IngestHandler struct {
	DB       *sql.DB
	CfgVal   *atomic.Value // config.Config
	Importer *ingest.Importer
	Hub      *events.Hub
}

func (h IngestHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Importer.Status())
}

func (h IngestHandler) Run(w http.ResponseWriter, r *http.Request) {
	if h.Importer.Status().Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		cfg := h.CfgVal.Load().(config.Config)
		added, _ := h.Importer.RunOnce(ctx, h.DB, MapSources(cfg.Ingest.Sources), nil)
		if added > 0 {
			h.Hub.Publish(events.MakeEvent("", events.TypeSpecialsImported, 1, map[string]any{"added": added}))
		}
	}()

	writeJSON(w, map[string]any{"ok": true})
}

// MapSources converts config source entries into importer sources.
func MapSources(in []config.Source) []ingest.Source {
	out := make([]ingest.Source, 0, len(in))
	for _, s := range in {
		out = append(out, ingest.Source{Name: s.Name, URL: s.URL, Place: s.Place})
	}
	return out
}

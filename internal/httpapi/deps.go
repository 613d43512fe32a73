package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"sync/atomic"

	"foodcompass-engine/internal/config"
	"foodcompass-engine/internal/events"
	"foodcompass-engine/internal/ingest"
)

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	// Atomic store for the live config
	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// UserID resolves the current user for a request: the ?user= email
	// parameter, falling back to the configured default. Empty when the
	// user cannot be resolved.
	UserID func(r *http.Request) string

	// Specials importer (inject for testability)
	Importer *ingest.Importer

	// Seed entrypoint
	RunSeed func(ctx context.Context, db *sql.DB) (bool, error)
}

package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"foodcompass-engine/internal/config"
	"foodcompass-engine/internal/events"
	"foodcompass-engine/internal/httpapi"
	"foodcompass-engine/internal/ingest"
	"foodcompass-engine/internal/scheduler"
	"foodcompass-engine/internal/seed"
	"foodcompass-engine/internal/store"

	"github.com/gofrs/flock"
)

func main() {
	// Engine data dir: env override for packaged installs, else local folder.
	dataDir := os.Getenv("FOODCOMPASS_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// Single writer on the sqlite file means single engine per data dir.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance already runs against %s", dataDir)
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		if err := config.OverlaySources(&cfg, filepath.Join(dataDir, "sources.yml")); err != nil {
			return cfg, err
		}
		normalized, vr := config.NormalizeAndValidate(cfg)
		for _, wmsg := range vr.Warnings {
			log.Printf("[config] warning: %s", wmsg)
		}
		if !vr.OK() {
			return cfg, errors.New("config invalid: " + vr.Errors[0])
		}
		return normalized, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "foodcompass.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// First run on an empty database gets the campus seed set.
	if seeded, err := seed.Run(ctx, db.Pool); err != nil {
		log.Fatalf("seed failed: %v", err)
	} else if seeded {
		log.Printf("[engine] database seeded")
	}

	hub := events.NewHub()
	importer := ingest.New()

	deps := httpapi.Deps{
		DB:          db.Pool,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		UserID:      userResolver(db.Pool, &cfgVal),
		Importer:    importer,
		RunSeed:     seed.Run,
	}
	mux := httpapi.NewMux(deps)

	token := os.Getenv("FOODCOMPASS_SHUTDOWN_TOKEN")
	if token == "" {
		token, err = randomToken(16)
		if err != nil {
			log.Fatal(err)
		}
	}

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
		httpapi.Cors,
		httpapi.Throttle(cfg.Limits.RequestsPerSecond, cfg.Limits.Burst),
	)

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&token, srv))

	// Periodic specials refresh.
	if cfg.Ingest.Enabled {
		interval := time.Duration(cfg.Ingest.IntervalSeconds) * time.Second
		go scheduler.Every(ctx, interval, "ingest", func(tctx context.Context) error {
			cur := cfgVal.Load().(config.Config)
			added, err := importer.RunOnce(tctx, db.Pool, httpapi.MapSources(cur.Ingest.Sources), nil)
			if added > 0 {
				hub.Publish(events.MakeEvent("", events.TypeSpecialsImported, 1, map[string]any{"added": added}))
			}
			return err
		})
	}

	go func() {
		<-ctx.Done()
		shctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shctx)
	}()

	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Printf("[engine] shut down")
}

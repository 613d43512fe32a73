package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Recommendations
	rh := RecommendHandler{DB: d.DB, UserID: d.UserID}
	mux.HandleFunc("/recommendations", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Get,
	}))
	mux.HandleFunc("/mood/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.MoodByPath, // expects /mood/{mood}
	}))
	mux.HandleFunc("/moods", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Moods,
	}))

	// Specials
	sph := SpecialsHandler{DB: d.DB, UserID: d.UserID}
	mux.HandleFunc("/specials", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sph.List,
	}))

	// Places
	ph := PlacesHandler{DB: d.DB}
	mux.HandleFunc("/places", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.List,
	}))
	mux.HandleFunc("/places/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.GetByPath, // expects /places/{id}
	}))

	// Ratings
	rth := RatingsHandler{DB: d.DB, Hub: d.Hub, UserID: d.UserID}
	mux.HandleFunc("/ratings", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rth.Create,
	}))

	// Preferences
	prh := PreferencesHandler{DB: d.DB, UserID: d.UserID}
	mux.HandleFunc("/preferences", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: prh.Get,
		http.MethodPut: prh.Put,
	}))

	// Friend activity
	fh := FriendsHandler{DB: d.DB, UserID: d.UserID}
	mux.HandleFunc("/friends/activity", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: fh.Activity,
	}))

	// Remix
	rxh := RemixHandler{}
	mux.HandleFunc("/remix", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rxh.Generate,
	}))
	mux.HandleFunc("/remix/halls", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rxh.Halls,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Ingest
	ih := IngestHandler{DB: d.DB, CfgVal: d.CfgVal, Importer: d.Importer, Hub: d.Hub}
	mux.HandleFunc("/ingest/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ih.Status,
	}))
	mux.HandleFunc("/ingest/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ih.Run,
	}))

	// Seed
	sh := SeedHandler{DB: d.DB, Hub: d.Hub, RunSeed: d.RunSeed}
	mux.HandleFunc("/seed", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Run,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// DB maintenance
	dbh := DBHandler{DB: d.DB}
	mux.HandleFunc("/db/checkpoint", dbh.Checkpoint)

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/healthz", hh.Health)

	return mux
}

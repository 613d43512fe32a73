package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"foodcompass-engine/internal/config"
	"foodcompass-engine/internal/domain"
	"foodcompass-engine/internal/events"
	"foodcompass-engine/internal/ingest"
	"foodcompass-engine/internal/store"
)

type testEnv struct {
	db  *sql.DB
	srv http.Handler
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	dbw, err := store.Open(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = dbw.Close() })
	if err := store.Migrate(dbw.Pool); err != nil {
		t.Fatal(err)
	}
	db := dbw.Pool
	ctx := context.Background()

	mustNil(t, store.InsertUser(ctx, db, domain.User{ID: "u1", Name: "Alex", Email: "alex@campus.edu"}))
	mustNil(t, store.InsertUser(ctx, db, domain.User{ID: "u2", Name: "Sam", Email: "sam@campus.edu"}))
	mustNil(t, store.InsertPlace(ctx, db, domain.Place{
		ID: "p1", Name: "Tandoor", Type: "cafe", Location: "West Union",
		Tags: []string{"indian", "curry"},
	}))
	mustNil(t, store.UpsertPreferences(ctx, db, domain.Preferences{
		UserID: "u1", Budget: 12, FavoriteTags: []string{"indian"},
	}))
	mustNil(t, store.InsertFriendship(ctx, db, domain.Friendship{
		UserID: "u1", FriendID: "u2", Status: domain.FriendAccepted,
	}))
	if _, err := store.InsertRating(ctx, db, domain.Rating{UserID: "u2", PlaceID: "p1", Rating: 5}); err != nil {
		t.Fatal(err)
	}

	var cfgVal atomic.Value
	cfgVal.Store(config.Default())

	deps := Deps{
		DB:     db,
		Hub:    events.NewHub(),
		CfgVal: &cfgVal,
		UserID: func(r *http.Request) string {
			switch r.URL.Query().Get("user") {
			case "alex@campus.edu":
				return "u1"
			case "sam@campus.edu":
				return "u2"
			default:
				return ""
			}
		},
		Importer: ingest.New(),
		RunSeed: func(ctx context.Context, db *sql.DB) (bool, error) {
			return false, nil
		},
	}
	return testEnv{db: db, srv: NewMux(deps)}
}

func mustNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func (e testEnv) do(t *testing.T, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	e.srv.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodDelete, "/recommendations", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRecommendations(t *testing.T) {
	env := newTestEnv(t)

	t.Run("unknown user", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/recommendations?user=ghost@campus.edu", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("missing preferences", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/recommendations?user=sam@campus.edu", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
		var e APIError
		mustNil(t, json.Unmarshal(rec.Body.Bytes(), &e))
		if e.Error.Code != "preferences_not_found" {
			t.Fatalf("code = %q", e.Error.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/recommendations?user=alex@campus.edu", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
		}
		var recs []map[string]any
		mustNil(t, json.Unmarshal(rec.Body.Bytes(), &recs))
		if len(recs) != 1 {
			t.Fatalf("got %d recommendations", len(recs))
		}
		if recs[0]["primary_reason"] == "" {
			t.Fatal("missing primary reason")
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/recommendations?user=alex@campus.edu&limit=zero", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestMoodEndpoints(t *testing.T) {
	env := newTestEnv(t)

	t.Run("unknown mood is empty not error", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/mood/hangry?user=alex@campus.edu", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var body struct {
			Results []json.RawMessage `json:"results"`
		}
		mustNil(t, json.Unmarshal(rec.Body.Bytes(), &body))
		if len(body.Results) != 0 {
			t.Fatalf("results = %d", len(body.Results))
		}
	})

	t.Run("known mood", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/mood/new?user=alex@campus.edu", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Tandoor") {
			t.Fatalf("body = %s", rec.Body.String())
		}
	})

	t.Run("catalog", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/moods", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var moods []map[string]any
		mustNil(t, json.Unmarshal(rec.Body.Bytes(), &moods))
		if len(moods) != 6 {
			t.Fatalf("got %d moods", len(moods))
		}
	})
}

func TestSpecialsAnonymous(t *testing.T) {
	env := newTestEnv(t)
	today := time.Now().UTC().Format("2006-01-02")
	mustNil(t, store.InsertSpecial(context.Background(), env.db, domain.Special{
		PlaceID: "p1", Title: "Lunch Buffet", Price: 12.99, Date: today,
	}))

	rec := env.do(t, http.MethodGet, "/specials", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Specials []struct {
			Score     float64 `json:"relevance_score"`
			PlaceName string  `json:"place_name"`
		} `json:"specials"`
	}
	mustNil(t, json.Unmarshal(rec.Body.Bytes(), &body))
	if len(body.Specials) != 1 {
		t.Fatalf("got %d specials", len(body.Specials))
	}
	if body.Specials[0].Score != 0.5 {
		t.Fatalf("anonymous score = %v, want 0.5", body.Specials[0].Score)
	}
	if body.Specials[0].PlaceName != "Tandoor" {
		t.Fatalf("place name = %q", body.Specials[0].PlaceName)
	}
}

func TestRatingsCreate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/ratings?user=alex@campus.edu", `{"place_id":"p1","rating":5,"comment":"great"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodPost, "/ratings?user=alex@campus.edu", `{"place_id":"p1","rating":9}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = env.do(t, http.MethodPost, "/ratings?user=alex@campus.edu", `{"place_id":"nope","rating":3}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/preferences?user=sam@campus.edu", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = env.do(t, http.MethodPut, "/preferences?user=sam@campus.edu",
		`{"dietary":["vegetarian"],"budget":10,"favorite_tags":["pizza"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/preferences?user=sam@campus.edu", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var prefs domain.Preferences
	mustNil(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	if prefs.Budget != 10 || len(prefs.Dietary) != 1 {
		t.Fatalf("prefs = %+v", prefs)
	}
}

func TestFriendActivity(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/friends/activity?user=alex@campus.edu", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Activity []struct {
			User    string `json:"user"`
			TimeAgo string `json:"time_ago"`
		} `json:"activity"`
		Stats struct {
			Friends     int `json:"friends"`
			HighRatings int `json:"high_ratings"`
		} `json:"stats"`
	}
	mustNil(t, json.Unmarshal(rec.Body.Bytes(), &body))
	if len(body.Activity) != 1 || body.Activity[0].User != "Sam" {
		t.Fatalf("activity = %+v", body.Activity)
	}
	if body.Activity[0].TimeAgo == "" {
		t.Fatal("missing time_ago")
	}
	if body.Stats.Friends != 1 || body.Stats.HighRatings != 1 {
		t.Fatalf("stats = %+v", body.Stats)
	}
}

func TestRemixEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/remix/halls", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = env.do(t, http.MethodPost, "/remix", `{"hall":"nowhere","stations":["Pizza"]}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = env.do(t, http.MethodPost, "/remix", `{"hall":"marketplace","stations":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = env.do(t, http.MethodPost, "/remix", `{"hall":"marketplace","stations":["Pizza","Grill"],"addons":["Ranch"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Ideas []json.RawMessage `json:"ideas"`
	}
	mustNil(t, json.Unmarshal(rec.Body.Bytes(), &body))
	if len(body.Ideas) == 0 {
		t.Fatal("no ideas")
	}
}

func TestThrottle(t *testing.T) {
	env := newTestEnv(t)
	h := Chain(env.srv, Throttle(1, 1))

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d", first.Code)
	}

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d", second.Code)
	}
}

package store

import (
	"context"
	"database/sql"
	"time"

	"foodcompass-engine/internal/domain"
	"foodcompass-engine/internal/recommend"

	"golang.org/x/sync/errgroup"
)

// FriendRatingWindow bounds how old a friend's rating may be and still
// count as a social signal for the full recommender.
const FriendRatingWindow = 7 * 24 * time.Hour

// LoadRecommendInputs gathers the five collections the recommender needs.
// The reads are independent, so they run concurrently and join here; the
// scoring itself starts only once everything is materialized. A missing
// preferences row comes back as a nil Preferences field — the engine turns
// that into its hard error.
func LoadRecommendInputs(ctx context.Context, db *sql.DB, userID string) (recommend.Inputs, error) {
	var in recommend.Inputs
	today := time.Now().UTC().Format("2006-01-02")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		prefs, err := GetPreferences(gctx, db, userID)
		in.Preferences = prefs
		return err
	})
	g.Go(func() error {
		history, err := ListUserRatings(gctx, db, userID, 10)
		in.History = history
		return err
	})
	g.Go(func() error {
		places, err := ListPlaces(gctx, db)
		in.Places = places
		return err
	})
	g.Go(func() error {
		specials, err := SpecialsForDate(gctx, db, today)
		in.Specials = specials
		return err
	})
	g.Go(func() error {
		friendRatings, err := FriendHighRatings(gctx, db, userID, FriendRatingWindow)
		in.FriendRatings = friendRatings
		return err
	})

	if err := g.Wait(); err != nil {
		return recommend.Inputs{}, err
	}
	return in, nil
}

// LoadMoodInputs gathers what the mood scorer needs: every place plus the
// per-place friend aggregates. Same barrier shape as LoadRecommendInputs.
func LoadMoodInputs(ctx context.Context, db *sql.DB, userID string) ([]domain.Place, map[string]recommend.FriendStat, error) {
	var places []domain.Place
	var stats map[string]recommend.FriendStat

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		places, err = ListPlaces(gctx, db)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = FriendStats(gctx, db, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return places, stats, nil
}

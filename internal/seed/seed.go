// Package seed loads a realistic campus data set on first run: dining
// locations with tags and hours, a cohort of users with preferences and
// friendships, their rating history, and a batch of specials dated today.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"foodcompass-engine/internal/domain"
	"foodcompass-engine/internal/store"

	"github.com/google/uuid"
)

type placeSeed struct {
	name     string
	typ      string
	location string
	tags     []string
	hours    map[string]string
}

type specialSeed struct {
	placeName   string
	title       string
	description string
	price       float64
	tags        []string
}

type ratingSeed struct {
	userEmail string
	placeName string
	rating    int
	comment   string
	daysAgo   int
}

type prefSeed struct {
	userEmail string
	dietary   []string
	budget    float64
	dislikes  []string
	favorites []string
}

// Run inserts the seed set unless places already exist. Returns true when
// it actually seeded.
func Run(ctx context.Context, db *sql.DB) (bool, error) {
	n, err := store.CountPlaces(ctx, db)
	if err != nil {
		return false, fmt.Errorf("seed precheck: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	userIDs := map[string]string{}
	for _, u := range users {
		id := uuid.NewString()
		if err := store.InsertUser(ctx, db, domain.User{ID: id, Name: u.name, Email: u.email}); err != nil {
			return false, err
		}
		userIDs[u.email] = id
	}

	placeIDs := map[string]string{}
	for _, p := range places {
		id := uuid.NewString()
		err := store.InsertPlace(ctx, db, domain.Place{
			ID: id, Name: p.name, Type: p.typ, Location: p.location,
			Tags: p.tags, Hours: p.hours,
		})
		if err != nil {
			return false, err
		}
		placeIDs[p.name] = id
	}

	for _, pr := range preferences {
		err := store.UpsertPreferences(ctx, db, domain.Preferences{
			UserID:       userIDs[pr.userEmail],
			Dietary:      pr.dietary,
			Budget:       pr.budget,
			Dislikes:     pr.dislikes,
			FavoriteTags: pr.favorites,
		})
		if err != nil {
			return false, err
		}
	}

	// Everyone is friends with everyone in the seed cohort, accepted both
	// ways, so the social factors have something to chew on.
	for _, a := range users {
		for _, b := range users {
			if a.email == b.email {
				continue
			}
			err := store.InsertFriendship(ctx, db, domain.Friendship{
				UserID:   userIDs[a.email],
				FriendID: userIDs[b.email],
				Status:   domain.FriendAccepted,
			})
			if err != nil {
				return false, err
			}
		}
	}

	now := time.Now().UTC()
	for _, r := range ratings {
		placeID, ok := placeIDs[r.placeName]
		if !ok {
			continue
		}
		comment := r.comment
		_, err := store.InsertRating(ctx, db, domain.Rating{
			UserID:    userIDs[r.userEmail],
			PlaceID:   placeID,
			Rating:    r.rating,
			Comment:   &comment,
			CreatedAt: now.AddDate(0, 0, -r.daysAgo),
		})
		if err != nil {
			return false, err
		}
	}

	today := now.Format("2006-01-02")
	for _, sp := range specials {
		placeID, ok := placeIDs[sp.placeName]
		if !ok {
			continue
		}
		desc := sp.description
		err := store.InsertSpecial(ctx, db, domain.Special{
			PlaceID:     placeID,
			Title:       sp.title,
			Description: &desc,
			Price:       sp.price,
			Date:        today,
			Tags:        sp.tags,
		})
		if err != nil {
			return false, err
		}
	}

	log.Printf("[seed] loaded %d places, %d users, %d ratings, %d specials",
		len(places), len(users), len(ratings), len(specials))
	return true, nil
}

package recommend

import (
	"errors"
	"sort"

	"foodcompass-engine/internal/domain"
)

// DefaultLimit is how many recommendations we hand back when the caller
// doesn't ask for a specific count.
const DefaultLimit = 7

// ErrPreferencesNotFound is returned by Recommend when the user has no
// preferences row. The full engine never synthesizes defaults; the two
// lighter scorers (mood, specials) tolerate missing preferences instead.
var ErrPreferencesNotFound = errors.New("user preferences not found")

// Inputs is everything the engine needs, already fetched and filtered by the
// caller: today's specials only, friend ratings >= 4 stars from accepted
// friends within the last week. The engine itself never touches storage.
type Inputs struct {
	Preferences   *domain.Preferences
	History       []domain.Rating // this user's recent ratings, newest first
	Places        []domain.Place
	Specials      []domain.Special
	FriendRatings []domain.Rating
}

// Score is one candidate with its weighted total and every reason that
// applied. Useful for debugging or showing all reasons to the user.
type Score struct {
	Place   domain.Place    `json:"place"`
	Score   float64         `json:"score"`
	Reasons []string        `json:"reasons"`
	Special *domain.Special `json:"special,omitempty"`
}

// Recommendation is the compact form: the same ranking but with a single
// primary reason picked by priority.
type Recommendation struct {
	Place         domain.Place    `json:"place"`
	PrimaryReason string          `json:"primary_reason"`
	Score         float64         `json:"score"`
	Special       *domain.Special `json:"special,omitempty"`
}

// weights for the five factors. Must sum to 1.0 so the total stays in [0,1].
var weights = struct {
	RatingHistory float64 // past preferences
	TagMatch      float64 // taste and dietary alignment
	FriendRatings float64 // social signal
	DailySpecials float64 // current deals
	Budget        float64 // price fit
}{
	RatingHistory: 0.30,
	TagMatch:      0.25,
	FriendRatings: 0.20,
	DailySpecials: 0.15,
	Budget:        0.10,
}

// dietaryTagExpansion widens a dietary restriction into the tags that
// satisfy it. Restrictions without an entry pass through unchanged.
var dietaryTagExpansion = map[string][]string{
	"vegetarian":  {"vegetarian", "vegan", "healthy", "salads"},
	"vegan":       {"vegan", "healthy", "organic"},
	"gluten-free": {"gluten-free", "healthy"},
	"halal":       {"halal"},
	"pescatarian": {"sushi", "japanese", "healthy"},
}

// Recommend ranks every candidate place for the user and returns the top
// limit entries (DefaultLimit when limit <= 0), each with its primary
// reason. A place whose tag-match score is zero is dropped entirely when the
// user has dietary restrictions; otherwise a zero factor just contributes
// nothing. Deterministic: identical inputs produce identical output, and
// ties keep the input order.
func Recommend(in Inputs, limit int) ([]Recommendation, error) {
	scored, err := RecommendDetailed(in, limit)
	if err != nil {
		return nil, err
	}

	out := make([]Recommendation, 0, len(scored))
	for _, s := range scored {
		out = append(out, Recommendation{
			Place:         s.Place,
			PrimaryReason: primaryReason(s.Reasons),
			Score:         s.Score,
			Special:       s.Special,
		})
	}
	return out, nil
}

// RecommendDetailed is Recommend with every reason kept per candidate.
func RecommendDetailed(in Inputs, limit int) ([]Score, error) {
	if in.Preferences == nil {
		return nil, ErrPreferencesNotFound
	}
	prefs := *in.Preferences
	if limit <= 0 {
		limit = DefaultLimit
	}

	scored := make([]Score, 0, len(in.Places))
	for _, place := range in.Places {
		history := ratingHistoryScore(place, in.History)
		tagMatch := tagMatchScore(place, prefs)
		friends := friendsScore(place, in.FriendRatings)
		specials := specialsScore(place, in.Specials, prefs.Budget)
		budget := budgetScore(place, prefs.Budget)

		// Dietary hard filter: a zero tag match excludes the place outright,
		// but only for users who actually declared restrictions.
		if tagMatch.score == 0 && len(prefs.Dietary) > 0 {
			continue
		}

		total := history.score*weights.RatingHistory +
			tagMatch.score*weights.TagMatch +
			friends.score*weights.FriendRatings +
			specials.score*weights.DailySpecials +
			budget*weights.Budget

		scored = append(scored, Score{
			Place:   place,
			Score:   total,
			Reasons: generateReasons(history, tagMatch, friends, specials, budget, prefs),
			Special: specials.special,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

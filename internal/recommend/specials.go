package recommend

import (
	"math"
	"sort"

	"foodcompass-engine/internal/domain"
)

// NeutralSpecialScore is what every special gets when the viewer has no
// preferences (anonymous browsing). Unlike the full engine, missing
// preferences here are not an error.
const NeutralSpecialScore = 0.5

// scoreTieThreshold: specials whose scores differ by no more than this are
// considered tied and ordered by price instead.
const scoreTieThreshold = 0.05

type SpecialResult struct {
	Special     domain.Special `json:"special"`
	Score       float64        `json:"relevance_score"`
	MatchedTags []string       `json:"matched_tags"`
}

// ScoreSpecials ranks today's specials by personal relevance. Tags of the
// special and of its place are pooled. A disliked tag is a heavy penalty
// (0.1), not an exclusion — the deal still shows, just last. Sorted by
// score descending, near-ties broken by price ascending.
func ScoreSpecials(specials []domain.Special, placeTags map[string][]string, prefs *domain.Preferences) []SpecialResult {
	results := make([]SpecialResult, 0, len(specials))
	for _, sp := range specials {
		score, matched := specialRelevance(sp, placeTags[sp.PlaceID], prefs)
		results = append(results, SpecialResult{
			Special:     sp,
			Score:       score,
			MatchedTags: matched,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if math.Abs(results[i].Score-results[j].Score) > scoreTieThreshold {
			return results[i].Score > results[j].Score
		}
		return results[i].Special.Price < results[j].Special.Price
	})

	return results
}

func specialRelevance(sp domain.Special, placeTags []string, prefs *domain.Preferences) (float64, []string) {
	if prefs == nil {
		return NeutralSpecialScore, nil
	}

	allTags := uniqTags(append(append([]string{}, sp.Tags...), placeTags...))

	for _, tag := range allTags {
		if containsTag(prefs.Dislikes, tag) {
			return 0.1, nil
		}
	}

	var score float64
	var matched []string

	// Dietary alignment, 30%.
	var dietaryMatch []string
	for _, tag := range allTags {
		if containsTag(prefs.Dietary, tag) {
			dietaryMatch = append(dietaryMatch, tag)
		}
	}
	if len(dietaryMatch) > 0 {
		score += 0.3 * min(float64(len(dietaryMatch))/float64(len(prefs.Dietary)), 1)
		matched = append(matched, dietaryMatch...)
	}

	// Favorite tags, 40%.
	var favoriteMatch []string
	for _, tag := range allTags {
		if containsTag(prefs.FavoriteTags, tag) {
			favoriteMatch = append(favoriteMatch, tag)
		}
	}
	if len(favoriteMatch) > 0 {
		score += 0.4 * min(float64(len(favoriteMatch))/float64(max(len(prefs.FavoriteTags), 1)), 1)
		matched = append(matched, favoriteMatch...)
	}

	// Budget, 20%, with an extra nudge for real bargains.
	if sp.Price <= prefs.Budget {
		score += 0.2
		if sp.Price <= prefs.Budget*0.7 {
			score += 0.1
		}
	}

	// Deal bonus, 10%.
	if containsTag(sp.Tags, "discount") || containsTag(sp.Tags, "combo") {
		score += 0.1
	}

	return min(score, 1), uniqTags(matched)
}

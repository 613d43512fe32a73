package recommend

import "foodcompass-engine/internal/domain"

// Each factor returns a score in [0,1]. Missing data for an individual
// candidate degrades that factor to zero; it never aborts the ranking.

type historyResult struct {
	score         float64
	topRatedPlace string // the "similar to X, which you loved" anchor
	similarity    float64
}

// ratingHistoryScore compares the candidate's tags to the tags of places
// the user already rated. Each past rating contributes its tag-overlap
// ratio weighted by how high the rating was; the average over all history
// entries is the score. The highest-similarity entry rated >= 4 becomes
// the anchor for reason text.
func ratingHistoryScore(place domain.Place, history []domain.Rating) historyResult {
	if len(history) == 0 {
		return historyResult{}
	}

	var total, maxSimilarity float64
	var topRated string

	for _, r := range history {
		common := 0
		for _, tag := range r.PlaceTags {
			if containsTag(place.Tags, tag) {
				common++
			}
		}
		similarity := float64(common) / float64(max(len(place.Tags), 1))
		total += similarity * float64(r.Rating) / 5

		if similarity > maxSimilarity && r.Rating >= 4 {
			maxSimilarity = similarity
			topRated = r.PlaceName
		}
	}

	return historyResult{
		score:         total / float64(len(history)),
		topRatedPlace: topRated,
		similarity:    maxSimilarity,
	}
}

type tagMatchResult struct {
	score       float64
	matchedTags []string
}

// tagMatchScore measures how well the candidate's tags line up with the
// user's favorites and (expanded) dietary restrictions. Any overlap with a
// disliked tag zeroes the score for this candidate.
func tagMatchScore(place domain.Place, prefs domain.Preferences) tagMatchResult {
	for _, tag := range place.Tags {
		if containsTag(prefs.Dislikes, tag) {
			return tagMatchResult{}
		}
	}

	dietaryTags := expandDietary(prefs.Dietary)

	var matched []string
	for _, tag := range place.Tags {
		if containsTag(prefs.FavoriteTags, tag) {
			matched = append(matched, tag)
		}
	}
	for _, tag := range place.Tags {
		if containsTag(dietaryTags, tag) {
			matched = append(matched, tag)
		}
	}
	matched = uniqTags(matched)

	denom := max(len(prefs.FavoriteTags)+len(dietaryTags), 1)
	score := float64(len(matched)) / float64(denom)

	return tagMatchResult{score: min(score, 1), matchedTags: matched}
}

// expandDietary maps each restriction through dietaryTagExpansion;
// restrictions with no mapping pass through as themselves.
func expandDietary(dietary []string) []string {
	var out []string
	for _, d := range dietary {
		if expanded, ok := dietaryTagExpansion[d]; ok {
			out = append(out, expanded...)
		} else {
			out = append(out, d)
		}
	}
	return out
}

type friendsResult struct {
	score       float64
	friendCount int
	avgRating   float64
}

// friendsScore averages the friends' ratings for this place, scaled to
// [0,1], with a crowd bonus that grows 10% per rating and caps at 1.5x.
func friendsScore(place domain.Place, friendRatings []domain.Rating) friendsResult {
	var sum int
	count := 0
	for _, r := range friendRatings {
		if r.PlaceID == place.ID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return friendsResult{}
	}

	avg := float64(sum) / float64(count)
	score := (avg / 5) * min(1+float64(count)*0.1, 1.5)

	return friendsResult{
		score:       min(score, 1),
		friendCount: count,
		avgRating:   avg,
	}
}

type specialsResult struct {
	score   float64
	special *domain.Special
}

// specialsScore rewards a place with an active special, more so when the
// price fits the budget, with a bonus for explicit discounts. When a data
// source yields several specials for one place, the first wins.
func specialsScore(place domain.Place, specials []domain.Special, budget float64) specialsResult {
	var found *domain.Special
	for i := range specials {
		if specials[i].PlaceID == place.ID {
			found = &specials[i]
			break
		}
	}
	if found == nil {
		return specialsResult{}
	}

	priceScore := 0.5
	if found.Price <= budget {
		priceScore = 1
	}
	if containsTag(found.Tags, "discount") {
		priceScore += 0.2
	}

	return specialsResult{score: min(priceScore, 1), special: found}
}

// budgetScore estimates a typical price from tags and place type, then
// scores how well that estimate fits the budget. A heuristic proxy, not a
// real price lookup.
func budgetScore(place domain.Place, budget float64) float64 {
	estimated := 10.0
	switch {
	case containsTag(place.Tags, "fine-dining") || containsTag(place.Tags, "upscale"):
		estimated = 20
	case containsTag(place.Tags, "cheap") || containsTag(place.Tags, "fast-food"):
		estimated = 7
	case place.Type == "dining hall":
		estimated = 12
	}

	switch {
	case estimated <= budget:
		return 1
	case estimated <= budget*1.2:
		return 0.7
	default:
		return 0.3
	}
}

func containsTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func uniqTags(in []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(in))
	for _, t := range in {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

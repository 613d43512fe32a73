package recommend

import (
	"fmt"
	"strconv"
	"strings"

	"foodcompass-engine/internal/domain"
)

// generateReasons builds one human-readable line per factor that actually
// fired, in a fixed order. Falls back to a generic line when nothing did.
func generateReasons(
	history historyResult,
	tagMatch tagMatchResult,
	friends friendsResult,
	specials specialsResult,
	budget float64,
	prefs domain.Preferences,
) []string {
	var reasons []string

	if history.score > 0.3 && history.topRatedPlace != "" {
		reasons = append(reasons, fmt.Sprintf("Similar to %s, which you loved", history.topRatedPlace))
	}

	if len(tagMatch.matchedTags) > 0 {
		top := tagMatch.matchedTags
		if len(top) > 3 {
			top = top[:3]
		}
		dietary := false
		for _, tag := range top {
			if containsTag(prefs.Dietary, tag) {
				dietary = true
				break
			}
		}
		if dietary {
			reasons = append(reasons, fmt.Sprintf("Matches your dietary preferences (%s)", strings.Join(top, ", ")))
		} else {
			reasons = append(reasons, fmt.Sprintf("Matches your taste: %s", strings.Join(top, ", ")))
		}
	}

	if friends.friendCount > 0 {
		noun := "friends"
		if friends.friendCount == 1 {
			noun = "friend"
		}
		reasons = append(reasons, fmt.Sprintf("%d %s rated this highly this week (%.1f/5)",
			friends.friendCount, noun, friends.avgRating))
	}

	if specials.special != nil {
		reasons = append(reasons, fmt.Sprintf("Today's special: %s ($%s)",
			specials.special.Title, formatPrice(specials.special.Price)))
	}

	if budget >= 0.8 {
		reasons = append(reasons, "Fits your budget perfectly")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Popular choice on campus")
	}

	return reasons
}

// reasonPriority orders reason keywords from most to least compelling:
// rating-history anchor, friend signal, special, dietary, taste, budget.
var reasonPriority = []string{
	"loved",
	"rated this highly",
	"special",
	"dietary",
	"taste",
	"budget",
}

// primaryReason picks the single most compelling reason by keyword priority.
func primaryReason(reasons []string) string {
	for _, keyword := range reasonPriority {
		for _, r := range reasons {
			if strings.Contains(strings.ToLower(r), keyword) {
				return r
			}
		}
	}
	if len(reasons) > 0 {
		return reasons[0]
	}
	return "Recommended for you"
}

// formatPrice renders 8.5 as "8.50" and 8 as "8", matching how prices read
// on the specials cards.
func formatPrice(p float64) string {
	if p == float64(int64(p)) {
		return strconv.FormatInt(int64(p), 10)
	}
	return strconv.FormatFloat(p, 'f', 2, 64)
}

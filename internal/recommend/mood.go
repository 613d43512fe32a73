package recommend

import (
	"log"
	"sort"

	"foodcompass-engine/internal/domain"
)

// MoodLimit caps how many places a mood query returns.
const MoodLimit = 5

// moodTags maps each mood to the curated tag set it looks for.
var moodTags = map[string][]string{
	"starving": {
		"all-you-can-eat", "buffet", "burgers", "pizza",
		"american", "comfort-food", "large-portions",
	},
	"healthy-cheap": {
		"healthy", "vegetarian", "vegan", "salads",
		"cheap", "organic", "farm-to-table", "fast-food",
	},
	"comfort": {
		"comfort-food", "american", "italian", "pasta",
		"pizza", "homestyle", "warm",
	},
	"new": {
		"indian", "asian", "japanese", "sushi", "curry",
		"spicy", "exotic", "fusion", "international",
	},
	"late-night": {
		"fast-food", "quick", "grab-and-go", "coffee",
		"casual", "late-night",
	},
	"sweet": {
		"desserts", "pastries", "bakery", "coffee", "sweet", "treats",
	},
}

// moodOrder keeps the mood catalog deterministic.
var moodOrder = []string{"starving", "healthy-cheap", "comfort", "new", "late-night", "sweet"}

// FriendStat is the pre-aggregated friend signal for one place: the average
// of accepted friends' ratings >= 4 and how many there were.
type FriendStat struct {
	Avg   float64 `json:"avg_rating"`
	Count int     `json:"rating_count"`
}

type MoodResult struct {
	Place       domain.Place `json:"place"`
	Score       float64      `json:"score"`
	FriendBonus bool         `json:"friend_bonus"`
	MatchedTags []string     `json:"matched_tags"`
}

// MoodInfo describes one mood for the catalog endpoint.
type MoodInfo struct {
	Mood     string   `json:"mood"`
	TagCount int      `json:"tag_count"`
	Tags     []string `json:"tags"` // first few tags as a preview
}

// ScoreByMood ranks places against one mood's tag set: score is the matched
// tag ratio plus up to 0.5 bonus scaled by the friends' average rating.
// Places sharing no tags with the mood are excluded before ranking. Unknown
// moods return an empty list, not an error.
func ScoreByMood(mood string, places []domain.Place, friendStats map[string]FriendStat) []MoodResult {
	tags, ok := moodTags[mood]
	if !ok {
		log.Printf("[recommend] unknown mood %q", mood)
		return nil
	}

	var results []MoodResult
	for _, place := range places {
		var matched []string
		for _, tag := range place.Tags {
			if containsTag(tags, tag) {
				matched = append(matched, tag)
			}
		}
		if len(matched) == 0 {
			continue
		}

		score := float64(len(matched)) / float64(len(tags))

		stat, hasFriends := friendStats[place.ID]
		if hasFriends {
			score += (stat.Avg / 5) * 0.5
		}

		results = append(results, MoodResult{
			Place:       place,
			Score:       score,
			FriendBonus: hasFriends,
			MatchedTags: matched,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > MoodLimit {
		results = results[:MoodLimit]
	}
	return results
}

// Moods returns the mood catalog in a fixed order.
func Moods() []MoodInfo {
	out := make([]MoodInfo, 0, len(moodOrder))
	for _, mood := range moodOrder {
		tags := moodTags[mood]
		preview := tags
		if len(preview) > 5 {
			preview = preview[:5]
		}
		out = append(out, MoodInfo{Mood: mood, TagCount: len(tags), Tags: preview})
	}
	return out
}

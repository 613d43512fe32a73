package recommend

import (
	"testing"

	"foodcompass-engine/internal/domain"
)

func special(id, placeID, title string, price float64, tags ...string) domain.Special {
	return domain.Special{ID: id, PlaceID: placeID, Title: title, Price: price, Tags: tags}
}

func TestScoreSpecialsWithoutPreferences(t *testing.T) {
	specials := []domain.Special{
		special("s1", "p1", "Curry Combo", 9, "indian"),
		special("s2", "p2", "Burger Deal", 6, "burgers"),
	}

	results := ScoreSpecials(specials, nil, nil)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Score != NeutralSpecialScore {
			t.Errorf("%s score = %v, want %v", r.Special.ID, r.Score, NeutralSpecialScore)
		}
	}
	// All neutral scores tie; cheaper special sorts first.
	if results[0].Special.ID != "s2" {
		t.Errorf("first = %s, want the cheaper s2", results[0].Special.ID)
	}
}

func TestScoreSpecialsDislikePenalty(t *testing.T) {
	pr := prefs(15, nil, []string{"spicy"}, []string{"indian"})
	placeTags := map[string][]string{"p1": {"indian", "spicy"}}

	results := ScoreSpecials([]domain.Special{special("s1", "p1", "Vindaloo", 8)}, placeTags, pr)
	if len(results) != 1 {
		t.Fatalf("penalized special was excluded, want it kept")
	}
	if results[0].Score != 0.1 {
		t.Errorf("score = %v, want 0.1", results[0].Score)
	}
	if len(results[0].MatchedTags) != 0 {
		t.Errorf("matched tags = %v, want none", results[0].MatchedTags)
	}
}

func TestScoreSpecialsAccumulation(t *testing.T) {
	// Favorites 0.4 (full overlap), budget 0.2 + bargain 0.1, combo tag 0.1.
	pr := prefs(20, nil, nil, []string{"pizza"})
	sp := special("s1", "p1", "Slice Combo", 10, "pizza", "combo")

	results := ScoreSpecials([]domain.Special{sp}, nil, pr)
	want := 0.4 + 0.2 + 0.1 + 0.1
	if diff := results[0].Score - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("score = %v, want %v", results[0].Score, want)
	}
	if len(results[0].MatchedTags) != 1 || results[0].MatchedTags[0] != "pizza" {
		t.Errorf("matched tags = %v, want [pizza]", results[0].MatchedTags)
	}
}

func TestScoreSpecialsPoolsPlaceTags(t *testing.T) {
	// The special itself carries no tags; its place's tags still count.
	pr := prefs(5, []string{"vegan"}, nil, nil)
	placeTags := map[string][]string{"p1": {"vegan", "healthy"}}

	results := ScoreSpecials([]domain.Special{special("s1", "p1", "Green Bowl", 9)}, placeTags, pr)
	want := 0.3 // dietary overlap only; price above budget
	if diff := results[0].Score - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("score = %v, want %v", results[0].Score, want)
	}
}

func TestScoreSpecialsOrdering(t *testing.T) {
	pr := prefs(12, nil, nil, []string{"pizza"})
	specials := []domain.Special{
		special("far", "p1", "Pricey Pizza", 11, "pizza"),
		special("near", "p2", "Cheap Pizza", 4, "pizza"),
		special("off", "p3", "Soup", 3),
	}

	results := ScoreSpecials(specials, nil, pr)
	// "near" gets the bargain bonus so it clearly outranks "far"; "off"
	// matches nothing beyond budget and lands last.
	if results[0].Special.ID != "near" || results[2].Special.ID != "off" {
		order := []string{results[0].Special.ID, results[1].Special.ID, results[2].Special.ID}
		t.Errorf("order = %v, want [near far off]", order)
	}
}

func TestScoreSpecialsCap(t *testing.T) {
	pr := prefs(100, []string{"vegan"}, nil, []string{"vegan", "healthy"})
	sp := special("s1", "p1", "Everything Deal", 5, "vegan", "healthy", "discount")

	results := ScoreSpecials([]domain.Special{sp}, map[string][]string{"p1": {"vegan", "healthy"}}, pr)
	if results[0].Score > 1 {
		t.Errorf("score = %v, want capped at 1", results[0].Score)
	}
}

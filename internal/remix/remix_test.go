package remix

import (
	"errors"
	"strings"
	"testing"
)

func TestHallsCatalogLoads(t *testing.T) {
	halls := Halls()
	if len(halls) == 0 {
		t.Fatal("no halls loaded")
	}
	for _, h := range halls {
		if h.ID == "" || h.Name == "" || len(h.Stations) == 0 {
			t.Fatalf("incomplete hall %+v", h)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := Generate("nowhere", []string{"Pizza"}, nil); !errors.Is(err, ErrUnknownHall) {
		t.Fatalf("err = %v, want ErrUnknownHall", err)
	}
	if _, err := Generate("marketplace", nil, nil); !errors.Is(err, ErrNoStations) {
		t.Fatalf("err = %v, want ErrNoStations", err)
	}
}

func TestGenerateCapsAtThree(t *testing.T) {
	// Pizza+Grill+Salad Bar+Dessert trips several rules plus presets.
	ideas, err := Generate("marketplace", []string{"Pizza", "Grill", "Salad Bar", "Dessert"}, []string{"Ranch", "Honey"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ideas) == 0 || len(ideas) > MaxIdeas {
		t.Fatalf("got %d ideas, want 1..%d", len(ideas), MaxIdeas)
	}
}

func TestPresetsComeFirst(t *testing.T) {
	ideas, err := Generate("marketplace", []string{"Grill", "Deli"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ideas) == 0 {
		t.Fatal("expected at least the preset")
	}
	if ideas[0].Title != "The Double-Decker Melt" {
		t.Fatalf("first idea = %q, want the matching preset", ideas[0].Title)
	}
}

func TestPizzaFusionRule(t *testing.T) {
	ideas, err := Generate("east-commons", []string{"Pizza", "Pasta"}, []string{"Parmesan"})
	if err != nil {
		t.Fatal(err)
	}
	var found *Idea
	for i := range ideas {
		if strings.Contains(ideas[i].Title, "Pizza Remix") {
			found = &ideas[i]
		}
	}
	if found == nil {
		t.Fatalf("no pizza fusion idea in %+v", ideas)
	}
	if found.Title != "The Pasta Pizza Remix" {
		t.Fatalf("title = %q", found.Title)
	}
	if !strings.Contains(found.Steps[2], "Parmesan") {
		t.Fatalf("expected add-on drizzle step, got %q", found.Steps[2])
	}
}

func TestPowerBowlRulePrefersGrill(t *testing.T) {
	ideas, err := Generate("marketplace", []string{"Salad Bar", "Grill"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, idea := range ideas {
		if idea.Title == "The Power Bowl" {
			if !contains(idea.Stations, "Grill") {
				t.Fatalf("stations = %v", idea.Stations)
			}
			return
		}
	}
	t.Fatalf("no power bowl in %+v", ideas)
}

func TestAsianFusionPicksSauceAddons(t *testing.T) {
	ideas, err := Generate("west-union", []string{"Asian Wok"}, []string{"Croutons", "Soy Sauce"})
	if err != nil {
		t.Fatal(err)
	}
	for _, idea := range ideas {
		if idea.Title == "DIY Fusion Bowl" {
			if len(idea.Addons) != 1 || idea.Addons[0] != "Soy Sauce" {
				t.Fatalf("addons = %v, want just the sauce", idea.Addons)
			}
			return
		}
	}
	t.Fatalf("no fusion bowl in %+v", ideas)
}

func TestSingleStationEnhancement(t *testing.T) {
	ideas, err := Generate("west-union", []string{"Burgers"}, []string{"Sriracha Sauce"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ideas) != 1 {
		t.Fatalf("got %d ideas, want 1", len(ideas))
	}
	if ideas[0].Title != "Enhanced Burgers" {
		t.Fatalf("title = %q", ideas[0].Title)
	}

	// No add-ons for a lone station means nothing to suggest.
	ideas, err = Generate("west-union", []string{"Burgers"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ideas) != 0 {
		t.Fatalf("got %d ideas, want 0", len(ideas))
	}
}

// Package remix generates dining-hall "meal hack" ideas: given a hall,
// a set of its stations, and optional add-ons, it combines curated preset
// remixes with rule-based ones and returns up to three ideas.
package remix

import (
	"errors"
	"fmt"
	"strings"

	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// MaxIdeas caps how many remixes a single request returns.
const MaxIdeas = 3

var (
	ErrUnknownHall = errors.New("unknown dining hall")
	ErrNoStations  = errors.New("select at least one station")
)

// Hall is a dining hall with the stations and add-ons it offers.
type Hall struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	Stations []string `yaml:"stations" json:"stations"`
	Addons   []string `yaml:"addons" json:"addons"`
}

// Idea is one assembled meal hack.
type Idea struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	WhyItWorks  string   `json:"why_it_works"`
	Stations    []string `json:"stations"`
	Addons      []string `json:"addons"`
}

type preset struct {
	Hall        string   `yaml:"hall"`
	Stations    []string `yaml:"stations"`
	Title       string   `yaml:"title"`
	Ingredients []string `yaml:"ingredients"`
	Steps       []string `yaml:"steps"`
	WhyItWorks  string   `yaml:"why_it_works"`
}

type catalog struct {
	Halls   []Hall   `yaml:"halls"`
	Presets []preset `yaml:"presets"`
}

var data = mustLoadCatalog()

func mustLoadCatalog() catalog {
	var c catalog
	if err := yaml.Unmarshal(presetsYAML, &c); err != nil {
		panic(fmt.Sprintf("remix: bad embedded presets: %v", err))
	}
	return c
}

// Halls returns the hall catalog in file order.
func Halls() []Hall {
	out := make([]Hall, len(data.Halls))
	copy(out, data.Halls)
	return out
}

// Generate builds up to MaxIdeas remixes for the given hall. Presets whose
// stations overlap the selection come first, rule-based ideas fill the rest.
func Generate(hallID string, stations, addons []string) ([]Idea, error) {
	var hall *Hall
	for i := range data.Halls {
		if data.Halls[i].ID == hallID {
			hall = &data.Halls[i]
			break
		}
	}
	if hall == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHall, hallID)
	}
	if len(stations) == 0 {
		return nil, ErrNoStations
	}

	var ideas []Idea
	for _, p := range data.Presets {
		if p.Hall != hallID || !anyOverlap(p.Stations, stations) {
			continue
		}
		ideas = append(ideas, Idea{
			Title:       p.Title,
			Ingredients: p.Ingredients,
			Steps:       p.Steps,
			WhyItWorks:  p.WhyItWorks,
			Stations:    p.Stations,
			Addons:      []string{},
		})
	}

	ideas = append(ideas, ruleBased(stations, addons)...)
	if len(ideas) > MaxIdeas {
		ideas = ideas[:MaxIdeas]
	}
	return ideas, nil
}

func ruleBased(stations, addons []string) []Idea {
	var ideas []Idea

	// Pizza plus any other station makes a fusion slice.
	if contains(stations, "Pizza") && len(stations) > 1 {
		other := firstOther(stations, "Pizza")
		seasoning := "Season to taste"
		if len(addons) > 0 {
			seasoning = "Drizzle with " + addons[0]
		}
		ideas = append(ideas, Idea{
			Title:    fmt.Sprintf("The %s Pizza Remix", other),
			Stations: []string{"Pizza", other},
			Addons:   firstN(addons, 2),
			Ingredients: append([]string{
				"1 slice of pizza from Pizza station",
				fmt.Sprintf("Toppings from %s station", other),
			}, append(firstN(addons, 2), "Extra cheese if available")...),
			Steps: []string{
				"Get a fresh slice of pizza",
				fmt.Sprintf("Add toppings from %s station while pizza is hot", other),
				seasoning,
				"Fold in half for easy eating",
				"Enjoy your fusion creation",
			},
			WhyItWorks: fmt.Sprintf("Pizza is the perfect base for any topping. The %s items add unique flavors and textures that transform a basic slice into something special. The warm cheese helps everything stick together.", other),
		})
	}

	// Salad bar plus a protein station makes a loaded bowl.
	if contains(stations, "Salad Bar") && (contains(stations, "Grill") || contains(stations, "Burgers")) {
		protein := "Burgers"
		if contains(stations, "Grill") {
			protein = "Grill"
		}
		dressing := "Add your favorite dressing"
		if len(addons) > 0 {
			dressing = "Dress with " + strings.Join(addons, " and ")
		}
		ideas = append(ideas, Idea{
			Title:    "The Power Bowl",
			Stations: []string{"Salad Bar", protein},
			Addons:   firstN(addons, 2),
			Ingredients: append([]string{
				"Mixed greens from salad bar",
				fmt.Sprintf("Grilled protein from %s", protein),
				"Cherry tomatoes",
				"Cucumbers",
				"Shredded cheese",
			}, firstN(addons, 2)...),
			Steps: []string{
				"Start with a base of mixed greens",
				"Add your choice of grilled protein, chopped into pieces",
				"Top with cherry tomatoes and cucumbers",
				"Sprinkle shredded cheese",
				dressing,
				"Toss everything together",
			},
			WhyItWorks: "Hot protein over cold, crisp veggies creates the perfect temperature and texture contrast. It's a complete meal with protein, carbs, and vitamins all in one bowl. Way more interesting than a plain salad.",
		})
	}

	// Any Asian-style station makes a fusion bowl.
	if asian := firstMatching(stations, "Asian", "Ginger"); asian != "" {
		bowlStations := []string{asian}
		veggieStep := "Add extra vegetables"
		veggieIngredient := "Additional veggies"
		if contains(stations, "Salad Bar") {
			bowlStations = append(bowlStations, "Salad Bar")
			veggieStep = "Top with fresh veggies for crunch"
			veggieIngredient = "Fresh vegetables from salad bar"
		}
		sauces := matchingAddons(addons, "Sauce", "Soy")
		seasonStep := "Add soy sauce to taste"
		if len(sauces) > 0 {
			seasonStep = "Season with " + sauces[0]
		} else if len(addons) > 0 {
			seasonStep = "Season with " + addons[0]
		}
		ideas = append(ideas, Idea{
			Title:    "DIY Fusion Bowl",
			Stations: bowlStations,
			Addons:   sauces,
			Ingredients: append([]string{
				fmt.Sprintf("Base of rice or noodles from %s", asian),
				"Stir-fried vegetables",
				"Protein of choice",
				veggieIngredient,
			}, sauces...),
			Steps: []string{
				"Fill bowl with rice or noodles as base",
				fmt.Sprintf("Add stir-fried items from %s", asian),
				veggieStep,
				"Mix in your choice of protein",
				seasonStep,
				"Stir everything together and enjoy",
			},
			WhyItWorks: "Combining hot and cold elements adds textural variety. The fresh vegetables provide a crisp contrast to the warm stir-fry. It's like a deconstructed spring roll in a bowl, healthy, filling, and packed with flavor.",
		})
	}

	// A dessert or bakery station plus anything else makes a sweet mashup.
	if sweet := firstMatching(stations, "Dessert", "Bakery"); sweet != "" {
		if other := firstOther(stations, sweet); other != "" {
			sweeteners := matchingAddons(addons, "Honey", "Chocolate", "Syrup")
			drizzle := "Add sweet toppings"
			if d := matchingAddons(addons, "Honey", "Syrup"); len(d) > 0 {
				drizzle = "Drizzle with " + d[0]
			} else if len(addons) > 0 {
				drizzle = "Drizzle with syrup"
			}
			ideas = append(ideas, Idea{
				Title:    fmt.Sprintf("Sweet %s Surprise", other),
				Stations: []string{sweet, other},
				Addons:   sweeteners,
				Ingredients: append([]string{
					fmt.Sprintf("Baked item from %s", sweet),
					fmt.Sprintf("Base from %s", other),
				}, append(sweeteners, "Whipped cream or ice cream if available")...),
				Steps: []string{
					fmt.Sprintf("Get your base from %s", other),
					fmt.Sprintf("Top with crumbled or sliced %s items", sweet),
					drizzle,
					"Add whipped cream or ice cream",
					"Mix or layer as desired",
				},
				WhyItWorks: "Sometimes the best desserts come from unexpected combinations. The contrast between textures and temperatures makes every bite interesting. It's like creating your own signature dessert without any baking required.",
			})
		}
	}

	// A single station still gets an idea when add-ons are in play.
	if len(stations) == 1 && len(addons) > 0 {
		extra := "Add extra toppings"
		if len(addons) > 1 {
			extra = fmt.Sprintf("Add %s for extra flavor", addons[1])
		}
		ideas = append(ideas, Idea{
			Title:    fmt.Sprintf("Enhanced %s", stations[0]),
			Stations: []string{stations[0]},
			Addons:   append([]string{}, addons...),
			Ingredients: append(append([]string{
				fmt.Sprintf("Base item from %s", stations[0]),
			}, addons...), "Any available toppings"),
			Steps: []string{
				fmt.Sprintf("Get your favorite item from %s", stations[0]),
				"Enhance with " + addons[0],
				extra,
				"Layer additional add-ons as desired",
				"Enjoy your customized creation",
			},
			WhyItWorks: "Sometimes simple is best. The right combination of add-ons can completely transform a basic dish. These enhancements add layers of flavor without overcomplicating the meal.",
		})
	}

	if len(ideas) > MaxIdeas {
		ideas = ideas[:MaxIdeas]
	}
	return ideas
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func anyOverlap(a, b []string) bool {
	for _, s := range a {
		if contains(b, s) {
			return true
		}
	}
	return false
}

func firstOther(stations []string, except string) string {
	for _, s := range stations {
		if s != except {
			return s
		}
	}
	return ""
}

func firstMatching(stations []string, substrings ...string) string {
	for _, s := range stations {
		for _, sub := range substrings {
			if strings.Contains(s, sub) {
				return s
			}
		}
	}
	return ""
}

func matchingAddons(addons []string, substrings ...string) []string {
	out := []string{}
	for _, a := range addons {
		for _, sub := range substrings {
			if strings.Contains(a, sub) {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

func firstN(list []string, n int) []string {
	if len(list) < n {
		n = len(list)
	}
	return append([]string{}, list[:n]...)
}

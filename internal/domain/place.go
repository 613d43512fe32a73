package domain

// Place is one campus dining location. Tags describe cuisine, dietary
// properties, and vibe ("indian", "vegetarian", "late-night"). Hours maps
// lowercase weekday names to display strings.
type Place struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Type     string            `json:"type"` // dining hall / cafe / food truck / restaurant
	Location string            `json:"location"`
	Tags     []string          `json:"tags"`
	Hours    map[string]string `json:"hours"`
}

// Special is a date-scoped offer tied to one place.
type Special struct {
	ID          string   `json:"id"`
	PlaceID     string   `json:"place_id"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Tags        []string `json:"tags"`
}

package seed

var users = []struct {
	name  string
	email string
}{
	{"Alex Johnson", "alex.j@campus.edu"},
	{"Sam Patel", "sam.p@campus.edu"},
	{"Jordan Lee", "jordan.l@campus.edu"},
	{"Taylor Smith", "taylor.s@campus.edu"},
	{"Morgan Davis", "morgan.d@campus.edu"},
	{"Casey Martinez", "casey.m@campus.edu"},
	{"Riley Thompson", "riley.t@campus.edu"},
	{"Avery Chen", "avery.c@campus.edu"},
	{"Jamie Wilson", "jamie.w@campus.edu"},
	{"Quinn Anderson", "quinn.a@campus.edu"},
}

var weekdayHours = map[string]string{
	"monday":    "11:00 AM - 9:00 PM",
	"tuesday":   "11:00 AM - 9:00 PM",
	"wednesday": "11:00 AM - 9:00 PM",
	"thursday":  "11:00 AM - 9:00 PM",
	"friday":    "11:00 AM - 8:00 PM",
}

var places = []placeSeed{
	{
		name: "Marketplace", typ: "dining hall", location: "East Campus",
		tags: []string{"buffet", "all-you-can-eat", "vegetarian", "vegan", "halal", "variety"},
		hours: map[string]string{
			"monday": "7:00 AM - 9:00 PM", "tuesday": "7:00 AM - 9:00 PM",
			"wednesday": "7:00 AM - 9:00 PM", "thursday": "7:00 AM - 9:00 PM",
			"friday": "7:00 AM - 8:00 PM", "saturday": "9:00 AM - 8:00 PM",
			"sunday": "9:00 AM - 9:00 PM",
		},
	},
	{
		name: "Tandoor", typ: "cafe", location: "West Union",
		tags:  []string{"indian", "curry", "vegetarian", "spicy", "halal", "healthy"},
		hours: weekdayHours,
	},
	{
		name: "Gyotaku", typ: "cafe", location: "West Union",
		tags:  []string{"sushi", "japanese", "asian", "healthy", "seafood", "fast"},
		hours: weekdayHours,
	},
	{
		name: "Sazon", typ: "cafe", location: "West Union",
		tags:  []string{"mexican", "burritos", "tacos", "spicy", "vegetarian", "fast"},
		hours: weekdayHours,
	},
	{
		name: "Il Forno", typ: "cafe", location: "West Union",
		tags:  []string{"italian", "pizza", "pasta", "brick-oven", "savory"},
		hours: weekdayHours,
	},
	{
		name: "Farmstead", typ: "cafe", location: "West Union",
		tags:  []string{"farm-to-table", "healthy", "salads", "organic", "vegetarian", "vegan"},
		hours: weekdayHours,
	},
	{
		name: "Ginger + Soy", typ: "cafe", location: "West Union",
		tags:  []string{"asian", "stir-fry", "noodles", "fast", "healthy", "vegetarian"},
		hours: weekdayHours,
	},
	{
		name: "The Skillet", typ: "cafe", location: "West Union",
		tags: []string{"breakfast", "brunch", "american", "comfort-food", "savory"},
		hours: map[string]string{
			"monday": "7:30 AM - 2:00 PM", "tuesday": "7:30 AM - 2:00 PM",
			"wednesday": "7:30 AM - 2:00 PM", "thursday": "7:30 AM - 2:00 PM",
			"friday": "7:30 AM - 2:00 PM",
		},
	},
	{
		name: "Devil's Krafthouse", typ: "cafe", location: "Student Center",
		tags:  []string{"burgers", "sandwiches", "comfort-food", "casual", "savory", "cheap"},
		hours: weekdayHours,
	},
	{
		name: "Vondy", typ: "cafe", location: "Main Library",
		tags: []string{"coffee", "pastries", "study-spot", "late-night", "sweet", "fast"},
		hours: map[string]string{
			"monday": "7:30 AM - 2:00 AM", "tuesday": "7:30 AM - 2:00 AM",
			"wednesday": "7:30 AM - 2:00 AM", "thursday": "7:30 AM - 2:00 AM",
			"friday": "7:30 AM - 10:00 PM", "saturday": "9:00 AM - 10:00 PM",
			"sunday": "9:00 AM - 2:00 AM",
		},
	},
	{
		name: "Gothic Grill", typ: "cafe", location: "Bryan Center",
		tags: []string{"pizza", "grill", "comfort-food", "late-night", "savory", "cheap"},
		hours: map[string]string{
			"monday": "11:00 AM - 11:00 PM", "tuesday": "11:00 AM - 11:00 PM",
			"wednesday": "11:00 AM - 11:00 PM", "thursday": "11:00 AM - 11:00 PM",
			"friday": "11:00 AM - 9:00 PM", "saturday": "12:00 PM - 9:00 PM",
			"sunday": "12:00 PM - 11:00 PM",
		},
	},
	{
		name: "Pitchforks", typ: "truck", location: "Plaza Drive",
		tags: []string{"american", "burgers", "fries", "outdoor", "fast", "savory"},
		hours: map[string]string{
			"monday": "11:00 AM - 3:00 PM", "tuesday": "11:00 AM - 3:00 PM",
			"wednesday": "11:00 AM - 3:00 PM", "thursday": "11:00 AM - 3:00 PM",
			"friday": "11:00 AM - 3:00 PM",
		},
	},
	{
		name: "Zweli's", typ: "cafe", location: "East Campus",
		tags:  []string{"sandwiches", "wraps", "healthy", "fast", "cheap"},
		hours: weekdayHours,
	},
	{
		name: "Campus Burger Co.", typ: "cafe", location: "West Union",
		tags: []string{"fast-food", "burgers", "cheap", "late-night", "fast", "savory"},
		hours: map[string]string{
			"monday": "7:00 AM - 2:00 AM", "tuesday": "7:00 AM - 2:00 AM",
			"wednesday": "7:00 AM - 2:00 AM", "thursday": "7:00 AM - 2:00 AM",
			"friday": "7:00 AM - 11:00 PM", "saturday": "10:00 AM - 11:00 PM",
			"sunday": "10:00 AM - 2:00 AM",
		},
	},
}

var preferences = []prefSeed{
	{"alex.j@campus.edu", nil, 12, []string{"seafood"}, []string{"indian", "curry", "noodles"}},
	{"sam.p@campus.edu", []string{"vegetarian"}, 10, []string{"fast-food"}, []string{"indian", "breakfast", "pizza"}},
	{"jordan.l@campus.edu", nil, 15, nil, []string{"buffet", "mexican", "coffee"}},
	{"taylor.s@campus.edu", []string{"pescatarian"}, 18, nil, []string{"sushi", "pizza", "breakfast"}},
	{"morgan.d@campus.edu", []string{"vegan"}, 12, []string{"burgers"}, []string{"healthy", "smoothies", "salads"}},
	{"casey.m@campus.edu", nil, 8, []string{"spicy"}, []string{"burgers", "pizza", "cheap"}},
	{"riley.t@campus.edu", []string{"vegetarian"}, 14, nil, []string{"healthy", "salads", "stir-fry"}},
	{"avery.c@campus.edu", nil, 10, nil, []string{"sushi", "wings", "cheap"}},
	{"jamie.w@campus.edu", nil, 12, []string{"sweet"}, []string{"mexican", "sandwiches", "farm-to-table"}},
	{"quinn.a@campus.edu", []string{"gluten-free"}, 11, nil, []string{"healthy", "wraps", "coffee"}},
}

var ratings = []ratingSeed{
	{"alex.j@campus.edu", "Marketplace", 5, "Best variety on campus! Something for everyone.", 12},
	{"sam.p@campus.edu", "Marketplace", 4, "Great vegetarian options. Can get crowded at lunch.", 9},
	{"jordan.l@campus.edu", "Marketplace", 5, "All you can eat is perfect for athletes.", 3},
	{"sam.p@campus.edu", "Tandoor", 5, "Authentic Indian food! Reminds me of home.", 2},
	{"alex.j@campus.edu", "Tandoor", 5, "Best curry on campus, hands down.", 5},
	{"jordan.l@campus.edu", "Tandoor", 4, "Really good but can be spicy. Great naan!", 15},
	{"casey.m@campus.edu", "Tandoor", 5, "The lunch buffet is incredible value.", 1},
	{"taylor.s@campus.edu", "Gyotaku", 5, "Best sushi near campus. Always fresh!", 4},
	{"morgan.d@campus.edu", "Gyotaku", 5, "Love the poke bowls. Healthy and delicious.", 6},
	{"riley.t@campus.edu", "Gyotaku", 4, "Great sushi but a bit pricey.", 20},
	{"jamie.w@campus.edu", "Sazon", 5, "Massive burritos! Can never finish one.", 2},
	{"quinn.a@campus.edu", "Sazon", 4, "Good Mexican food. Taco Tuesday is a must!", 8},
	{"alex.j@campus.edu", "Sazon", 5, "Fresh ingredients and generous portions.", 3},
	{"sam.p@campus.edu", "Il Forno", 4, "Solid pizza. Good for a quick lunch between classes.", 5},
	{"taylor.s@campus.edu", "Il Forno", 5, "Brick oven pizza on campus? Amazing!", 1},
	{"morgan.d@campus.edu", "Farmstead", 5, "Perfect for healthy eating. Love the grain bowls!", 2},
	{"riley.t@campus.edu", "Farmstead", 5, "Finally, good salads that actually fill you up.", 4},
	{"avery.c@campus.edu", "Farmstead", 4, "Great vegan options. A bit expensive but worth it.", 11},
	{"quinn.a@campus.edu", "Ginger + Soy", 4, "Quick stir fry. Good customization options.", 6},
	{"alex.j@campus.edu", "Ginger + Soy", 5, "Best noodle bowls. Always hits the spot!", 2},
	{"sam.p@campus.edu", "The Skillet", 5, "Best breakfast on campus! Huge pancakes.", 3},
	{"taylor.s@campus.edu", "The Skillet", 5, "Early bird special is clutch before 8 AMs.", 7},
	{"casey.m@campus.edu", "Devil's Krafthouse", 4, "Great burgers for the price. Underrated spot.", 5},
	{"riley.t@campus.edu", "Devil's Krafthouse", 5, "Monday $5 burger deal is unbeatable!", 2},
	{"avery.c@campus.edu", "Devil's Krafthouse", 3, "Decent but nothing special. Convenient though.", 18},
	{"jordan.l@campus.edu", "Vondy", 5, "Perfect late night study spot. Open until 2 AM!", 1},
	{"morgan.d@campus.edu", "Vondy", 5, "Best smoothies on campus! Fresh fruit daily.", 4},
	{"jamie.w@campus.edu", "Gothic Grill", 3, "Decent late night option. Pizza is okay.", 9},
	{"avery.c@campus.edu", "Gothic Grill", 4, "Good for watching games. Fun atmosphere.", 2},
	{"alex.j@campus.edu", "Pitchforks", 4, "Classic food truck burgers. Great when sunny!", 6},
	{"jordan.l@campus.edu", "Pitchforks", 3, "Good but limited hours. Wish they were open later.", 25},
}

var specials = []specialSeed{
	{"Sazon", "Taco Tuesday - $5 Deal", "Two tacos with rice and beans for only $5", 5.00,
		[]string{"mexican", "discount", "lunch", "savory", "cheap"}},
	{"Gyotaku", "Five Dollar Sushi Friday", "Select sushi rolls for $5 all day", 5.00,
		[]string{"sushi", "japanese", "discount", "cheap"}},
	{"Devil's Krafthouse", "Burger Monday - $5 Combo", "Classic burger with fries and drink", 5.00,
		[]string{"burgers", "american", "discount", "cheap", "savory"}},
	{"Il Forno", "Pizza Wednesday - $5 Personal", "Personal pizza with one topping", 5.00,
		[]string{"pizza", "italian", "discount", "cheap", "savory"}},
	{"Ginger + Soy", "Noodle Bowl Thursday - $5", "Build-your-own noodle bowl", 5.00,
		[]string{"asian", "noodles", "discount", "cheap", "healthy"}},
	{"Tandoor", "Lunch Buffet Special", "All-you-can-eat Indian lunch buffet with 15+ dishes", 12.99,
		[]string{"indian", "buffet", "lunch", "vegetarian"}},
	{"The Skillet", "Early Bird Breakfast", "Pancakes, eggs, and bacon combo before 9 AM", 6.99,
		[]string{"breakfast", "american", "discount", "savory"}},
	{"Farmstead", "Farm Bowl Monday", "Build your own grain bowl with seasonal vegetables", 9.99,
		[]string{"healthy", "organic", "vegetarian", "vegan"}},
	{"Vondy", "Late Night Study Fuel", "Coffee and pastry combo after 10 PM", 5.50,
		[]string{"coffee", "pastries", "late-night", "sweet"}},
	{"Campus Burger Co.", "Midnight Meal Deal", "Double burger meal after 8 PM", 7.99,
		[]string{"fast-food", "burgers", "late-night", "cheap"}},
	{"Pitchforks", "Blue Devil Burger", "Double patty burger with all the fixings", 9.50,
		[]string{"burgers", "american", "savory"}},
	{"Gothic Grill", "Pizza & Wings Combo", "Personal pizza with 6 wings", 12.99,
		[]string{"pizza", "wings", "savory", "comfort-food", "combo"}},
}

package menu

// DefaultMenu returns the demo catalog the server boots with.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{ID: "1", Name: "Nebula Burger", Price: 12.99, Description: "Double beef patty with cosmic sauce and stardust cheese.", Image: "🍔", Category: "Main", Available: true},
		{ID: "2", Name: "Galaxy Pizza", Price: 15.50, Description: "Pepperoni, mushrooms, and olives arranged in a spiral galaxy.", Image: "🍕", Category: "Main", Available: true},
		{ID: "3", Name: "Asteroid Fries", Price: 5.99, Description: "Crispy potato chunks seasoned with meteor dust (spicy).", Image: "🍟", Category: "Side", Available: true},
		{ID: "4", Name: "Void Shake", Price: 6.50, Description: "Blackberry and charcoal vanilla shake. Dark as the void.", Image: "🥤", Category: "Drink", Available: false},
		{ID: "5", Name: "Lunar Salad", Price: 9.99, Description: "Fresh greens, goat cheese craters, and balsamic glaze.", Image: "🥗", Category: "Side", Available: true},
	}
}

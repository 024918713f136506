package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuItem is a single entry on the café menu. Items are written once by the
// seed operation and immutable afterwards; there is no update or delete path.
type MenuItem struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       int                `json:"price" bson:"price"`
	Image       string             `json:"image" bson:"image"`
	Categories  []string           `json:"categories" bson:"categories"`
}

// SeedCatalog is the fixed six-item catalog inserted by GET /api/seed. The
// "all" tag is the universal category the frontend filters on.
func SeedCatalog() []MenuItem {
	return []MenuItem{
		{Name: "Cappuccino", Description: "Espresso with steamed milk foam", Price: 200, Image: "images/cappuccino.jpg", Categories: []string{"all", "coffee"}},
		{Name: "Latte", Description: "Smooth espresso with milk", Price: 220, Image: "images/latte.jpg", Categories: []string{"all", "coffee"}},
		{Name: "Sandwich", Description: "Ham and cheese", Price: 180, Image: "images/sandwich.jpg", Categories: []string{"all", "food"}},
		{Name: "Salad", Description: "Fresh vegetables", Price: 160, Image: "images/salad.jpg", Categories: []string{"all", "food"}},
		{Name: "Cheesecake", Description: "Classic baked cheesecake", Price: 200, Image: "images/cheesecake.jpg", Categories: []string{"all", "desserts"}},
		{Name: "Brownie", Description: "Chocolate brownie", Price: 180, Image: "images/brownie.jpg", Categories: []string{"all", "desserts"}},
	}
}

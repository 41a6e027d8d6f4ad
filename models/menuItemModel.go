package models

// MenuItem is static reference data, seeded once and treated as read-only
// by every endpoint.
type MenuItem struct {
	ID     string  `bson:"id" json:"id"`
	Name   string  `bson:"name" json:"name"`
	Image  string  `bson:"image" json:"image"`
	Price  float64 `bson:"price" json:"price"`
	Rating float64 `bson:"rating" json:"rating"`
}

// ToCartLine snapshots the item into a new cart line with quantity 1.
func (m MenuItem) ToCartLine() CartLine {
	return CartLine{
		ID:       m.ID,
		Name:     m.Name,
		Image:    m.Image,
		Price:    m.Price,
		Rating:   m.Rating,
		Quantity: 1,
	}
}

// SeedCatalog is the fixed menu inserted when the collection is empty.
func SeedCatalog() []MenuItem {
	return []MenuItem{
		{ID: "1", Name: "Idli", Image: "🥥", Price: 40, Rating: 4.6},
		{ID: "2", Name: "Dosa", Image: "🫓", Price: 60, Rating: 4.8},
		{ID: "3", Name: "Vada", Image: "🍩", Price: 30, Rating: 4.5},
		{ID: "4", Name: "Upma", Image: "🍚", Price: 50, Rating: 4.2},
		{ID: "5", Name: "Pongal", Image: "🍲", Price: 70, Rating: 4.4},
		{ID: "6", Name: "Uttapam", Image: "🍕", Price: 80, Rating: 4.3},
		{ID: "7", Name: "Appam", Image: "🥞", Price: 65, Rating: 4.6},
		{ID: "8", Name: "Puttu", Image: "🌾", Price: 55, Rating: 4.4},
		{ID: "9", Name: "Rava Dosa", Image: "🫓", Price: 75, Rating: 4.7},
		{ID: "10", Name: "Masala Dosa", Image: "🥙", Price: 90, Rating: 4.9},
		{ID: "11", Name: "Medu Vada", Image: "🍩", Price: 35, Rating: 4.5},
		{ID: "12", Name: "Thayir Sadam", Image: "🍶", Price: 50, Rating: 4.6},
		{ID: "13", Name: "Sambar Rice", Image: "🍛", Price: 70, Rating: 4.5},
		{ID: "14", Name: "Lemon Rice", Image: "🍋", Price: 60, Rating: 4.4},
		{ID: "15", Name: "Tamarind Rice", Image: "🌰", Price: 65, Rating: 4.3},
		{ID: "16", Name: "Kootu", Image: "🥗", Price: 55, Rating: 4.2},
		{ID: "17", Name: "Avial", Image: "🥦", Price: 60, Rating: 4.4},
		{ID: "18", Name: "Rasam", Image: "🍵", Price: 45, Rating: 4.6},
		{ID: "19", Name: "Filter Coffee", Image: "☕", Price: 30, Rating: 4.9},
		{ID: "20", Name: "Kesari", Image: "🍮", Price: 40, Rating: 4.7},
	}
}

package models

// CartLine is one line in a user's cart: a snapshot of the menu item's
// fields at the time it was added, plus a quantity. Menu edits after the
// add do not flow back into existing lines.
type CartLine struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Image    string  `bson:"image" json:"image"`
	Price    float64 `bson:"price" json:"price"`
	Rating   float64 `bson:"rating" json:"rating"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// CartTotal sums price times quantity over the given lines.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

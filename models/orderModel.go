package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const OrderStatusCompleted = "completed"

// Order is created at checkout and never mutated afterwards. Items is a
// snapshot of the cart, decoupled from later cart or menu changes.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	OrderID       string             `bson:"order_id" json:"order_id"`
	Email         string             `bson:"email" json:"email"`
	Items         []CartLine         `bson:"items" json:"items"`
	Total         float64            `bson:"total" json:"total"`
	PaymentMethod string             `bson:"payment_method" json:"payment_method"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

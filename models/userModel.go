package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is keyed by email. The password is stored verbatim.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Cart     []CartLine         `bson:"cart" json:"cart"`
}

package store

import (
	"context"
	"errors"

	"github.com/Dineshj396/FoodMafia/models"
)

var (
	ErrUserExists    = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrItemNotFound  = errors.New("item not found")
	ErrItemNotInCart = errors.New("item not in cart")
)

// Store is the persistence boundary for users, menu items and orders.
// Implementations return the sentinel errors above for conditions the
// handlers translate into HTTP statuses.
type Store interface {
	// CreateUser inserts a new user with an empty cart. Returns
	// ErrUserExists when the email is already registered.
	CreateUser(ctx context.Context, email, password string) error

	// GetUser looks a user up by email. Returns ErrUserNotFound when
	// there is no such user. The returned cart is never nil.
	GetUser(ctx context.Context, email string) (*models.User, error)

	// Menu returns the full menu item set.
	Menu(ctx context.Context) ([]models.MenuItem, error)

	// AddToCart increments the quantity of an existing line or appends
	// a snapshot of the menu item with quantity 1, and returns the
	// updated cart. Returns ErrUserNotFound or ErrItemNotFound.
	AddToCart(ctx context.Context, email, itemID string) ([]models.CartLine, error)

	// RemoveFromCart decrements a line's quantity, dropping the line
	// when it reaches zero, and returns the updated cart. Returns
	// ErrUserNotFound or ErrItemNotInCart.
	RemoveFromCart(ctx context.Context, email, itemID string) ([]models.CartLine, error)

	// CreateOrder persists a checkout order.
	CreateOrder(ctx context.Context, order *models.Order) error

	// ClearCart empties the user's cart. Returns ErrUserNotFound.
	ClearCart(ctx context.Context, email string) error

	// Orders returns the user's orders, newest first. An email with no
	// orders yields an empty slice, not an error.
	Orders(ctx context.Context, email string) ([]models.Order, error)

	// SeedMenu inserts the seed catalog when the menu collection is
	// empty. Reports whether it inserted anything.
	SeedMenu(ctx context.Context) (bool, error)
}

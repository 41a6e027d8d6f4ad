package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Dineshj396/FoodMafia/config"
	"github.com/Dineshj396/FoodMafia/models"
)

// MongoStore implements Store on three collections. Cart mutations use
// single-document update operators rather than read-modify-write, so two
// concurrent mutations of the same cart cannot lose an update: MongoDB
// serializes writes per document and re-evaluates the filter under that
// serialization.
type MongoStore struct {
	users  *mongo.Collection
	menu   *mongo.Collection
	orders *mongo.Collection
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	return &MongoStore{
		users:  config.OpenCollection(client, dbName, "users"),
		menu:   config.OpenCollection(client, dbName, "menu_items"),
		orders: config.OpenCollection(client, dbName, "orders"),
	}
}

func (s *MongoStore) CreateUser(ctx context.Context, email, password string) error {
	count, err := s.users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrUserExists
	}

	_, err = s.users.InsertOne(ctx, models.User{
		Email:    email,
		Password: password,
		Cart:     []models.CartLine{},
	})
	return err
}

func (s *MongoStore) GetUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.Cart == nil {
		user.Cart = []models.CartLine{}
	}
	return &user, nil
}

func (s *MongoStore) Menu(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := s.menu.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) AddToCart(ctx context.Context, email, itemID string) ([]models.CartLine, error) {
	// Fast path: the line already exists, bump its quantity in place.
	res, err := s.users.UpdateOne(ctx,
		bson.M{"email": email, "cart.id": itemID},
		bson.M{"$inc": bson.M{"cart.$.quantity": 1}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 1 {
		return s.cart(ctx, email)
	}

	// No matching line. Distinguish unknown user from unknown item
	// before appending.
	count, err := s.users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUserNotFound
	}

	var item models.MenuItem
	err = s.menu.FindOne(ctx, bson.M{"id": itemID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	// The push is guarded so a concurrent add cannot create a second
	// line for the same item; when it loses that race, the increment
	// is retried instead.
	res, err = s.users.UpdateOne(ctx,
		bson.M{"email": email, "cart.id": bson.M{"$ne": itemID}},
		bson.M{"$push": bson.M{"cart": item.ToCartLine()}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		if _, err := s.users.UpdateOne(ctx,
			bson.M{"email": email, "cart.id": itemID},
			bson.M{"$inc": bson.M{"cart.$.quantity": 1}},
		); err != nil {
			return nil, err
		}
	}
	return s.cart(ctx, email)
}

func (s *MongoStore) RemoveFromCart(ctx context.Context, email, itemID string) ([]models.CartLine, error) {
	// Decrement only when the quantity stays >= 1 afterwards.
	res, err := s.users.UpdateOne(ctx,
		bson.M{"email": email, "cart": bson.M{"$elemMatch": bson.M{"id": itemID, "quantity": bson.M{"$gt": 1}}}},
		bson.M{"$inc": bson.M{"cart.$.quantity": -1}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 1 {
		return s.cart(ctx, email)
	}

	// Quantity 1 (or a concurrent change): pull the whole line, guarded
	// so a line that was bumped above 1 in the meantime survives.
	res, err = s.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$pull": bson.M{"cart": bson.M{"id": itemID, "quantity": bson.M{"$lte": 1}}}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrUserNotFound
	}
	if res.ModifiedCount == 1 {
		return s.cart(ctx, email)
	}

	// Nothing pulled: either the item is absent or its quantity grew
	// concurrently. One more decrement attempt settles which.
	res, err = s.users.UpdateOne(ctx,
		bson.M{"email": email, "cart": bson.M{"$elemMatch": bson.M{"id": itemID, "quantity": bson.M{"$gt": 1}}}},
		bson.M{"$inc": bson.M{"cart.$.quantity": -1}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrItemNotInCart
	}
	return s.cart(ctx, email)
}

func (s *MongoStore) CreateOrder(ctx context.Context, order *models.Order) error {
	_, err := s.orders.InsertOne(ctx, order)
	return err
}

func (s *MongoStore) ClearCart(ctx context.Context, email string) error {
	res, err := s.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"cart": []models.CartLine{}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *MongoStore) Orders(ctx context.Context, email string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.orders.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MongoStore) SeedMenu(ctx context.Context) (bool, error) {
	count, err := s.menu.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	catalog := models.SeedCatalog()
	docs := make([]interface{}, len(catalog))
	for i, item := range catalog {
		docs[i] = item
	}
	_, err = s.menu.InsertMany(ctx, docs)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *MongoStore) cart(ctx context.Context, email string) ([]models.CartLine, error) {
	user, err := s.GetUser(ctx, email)
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CartsCollection = "carts"

// CartRepository defines the data access contract for carts, keyed by owning user.
type CartRepository interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	AddItem(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, error)
	SetItemQuantity(ctx context.Context, userID, itemID primitive.ObjectID, quantity int) (*models.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID primitive.ObjectID) (*models.Cart, error)
	SetDiscount(ctx context.Context, userID primitive.ObjectID, percentage float64) (*models.Cart, error)
	Clear(ctx context.Context, userID primitive.ObjectID) error
}

type MongoCartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{collection: db.Collection(CartsCollection)}
}

func (r *MongoCartRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find cart for user %s: %w", userID.Hex(), err)
	}
	return &cart, nil
}

// AddItem increments the line for productID if the cart already holds it,
// otherwise it appends a new line, creating the cart on first use.
func (r *MongoCartRepository) AddItem(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, error) {
	now := time.Now().UTC()
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cart models.Cart
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"userId": userID, "items.product": productID},
		bson.M{
			"$inc": bson.M{"items.$.quantity": quantity},
			"$set": bson.M{"updatedAt": now},
		},
		after,
	).Decode(&cart)
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("increment cart item: %w", err)
	}

	item := models.CartItem{ID: primitive.NewObjectID(), ProductID: productID, Quantity: quantity}
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"userId": userID},
		bson.M{
			"$push":        bson.M{"items": item},
			"$set":         bson.M{"updatedAt": now},
			"$setOnInsert": bson.M{"createdAt": now, "completed": false, "discountPercentage": 0.0},
		},
		after.SetUpsert(true),
	).Decode(&cart)
	if err != nil {
		return nil, fmt.Errorf("push cart item: %w", err)
	}
	return &cart, nil
}

func (r *MongoCartRepository) SetItemQuantity(ctx context.Context, userID, itemID primitive.ObjectID, quantity int) (*models.Cart, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"userId": userID, "items._id": itemID},
		bson.M{"$set": bson.M{"items.$.quantity": quantity, "updatedAt": time.Now().UTC()}},
	)
}

func (r *MongoCartRepository) RemoveItem(ctx context.Context, userID, itemID primitive.ObjectID) (*models.Cart, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"userId": userID},
		bson.M{
			"$pull": bson.M{"items": bson.M{"_id": itemID}},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
}

func (r *MongoCartRepository) SetDiscount(ctx context.Context, userID primitive.ObjectID, percentage float64) (*models.Cart, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"discountPercentage": percentage, "updatedAt": time.Now().UTC()}},
	)
}

// Clear empties the cart after checkout; the cart document itself is kept.
func (r *MongoCartRepository) Clear(ctx context.Context, userID primitive.ObjectID) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"items": bson.A{}, "discountPercentage": 0.0, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("clear cart for user %s: %w", userID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCartRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.Cart, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var cart models.Cart
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update cart: %w", err)
	}
	return &cart, nil
}

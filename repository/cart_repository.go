package repository

import (
	"context"
	"time"

	"github.com/MdAsraful56/FoodHut-Server/config"
	"github.com/MdAsraful56/FoodHut-Server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func cartCol() *mongo.Collection { return config.CartCollection }

func EnsureCartIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := cartCol().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}

func CreateCartItem(item *models.CartItem) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return cartCol().InsertOne(ctx, item)
}

func GetCartItemsByEmail(email string) ([]models.CartItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := cartCol().Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	for cursor.Next(ctx) {
		var it models.CartItem
		if err := cursor.Decode(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, cursor.Err()
}

func DeleteCartItem(id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return cartCol().DeleteOne(ctx, bson.M{"_id": id})
}

// DeleteCartItems removes every cart document whose id is in ids. Used by
// the checkout cleanup after a payment insert.
func DeleteCartItems(ids []primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return cartCol().DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

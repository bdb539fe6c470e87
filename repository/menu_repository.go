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

func menuCol() *mongo.Collection { return config.MenuCollection }

func EnsureMenuIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := menuCol().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	return err
}

func GetAllMenuItems() ([]models.MenuItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := menuCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	for cursor.Next(ctx) {
		var m models.MenuItem
		if err := cursor.Decode(&m); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, cursor.Err()
}

func CreateMenuItem(m *models.MenuItem) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return menuCol().InsertOne(ctx, m)
}

func DeleteMenuItem(id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return menuCol().DeleteOne(ctx, bson.M{"_id": id})
}

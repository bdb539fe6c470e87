package repository

import (
	"context"
	"time"

	"github.com/MdAsraful56/FoodHut-Server/config"
	"github.com/MdAsraful56/FoodHut-Server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func reviewCol() *mongo.Collection { return config.ReviewCollection }

func GetAllReviews() ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := reviewCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	for cursor.Next(ctx) {
		var r models.Review
		if err := cursor.Decode(&r); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, cursor.Err()
}

func CreateReview(r *models.Review) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return reviewCol().InsertOne(ctx, r)
}

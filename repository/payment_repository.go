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

func paymentCol() *mongo.Collection { return config.PaymentCollection }

func EnsurePaymentIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := paymentCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}

func CreatePayment(p *models.Payment) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return paymentCol().InsertOne(ctx, p)
}

func GetAllPayments() ([]models.Payment, error) {
	return getPayments(bson.M{})
}

func GetPaymentsByEmail(email string) ([]models.Payment, error) {
	return getPayments(bson.M{"email": email})
}

func getPayments(filter bson.M) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := paymentCol().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	for cursor.Next(ctx) {
		var p models.Payment
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, cursor.Err()
}

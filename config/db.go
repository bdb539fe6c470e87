package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global collection handles, initialized once by ConnectDB.
var (
	DB                *mongo.Database
	UserCollection    *mongo.Collection
	MenuCollection    *mongo.Collection
	ReviewCollection  *mongo.Collection
	CartCollection    *mongo.Collection
	PaymentCollection *mongo.Collection
)

func ConnectDB() {
	mongoURI := os.Getenv("MONGO_URI")
	dbName := os.Getenv("DB_NAME")

	// Defaults for local development if env not set
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	if dbName == "" {
		dbName = "FoodHutDB"
	}

	clientOptions := options.Client().ApplyURI(mongoURI)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal("failed to connect to MongoDB: ", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("MongoDB is not reachable: ", err)
	}

	fmt.Println("connected to MongoDB, database:", dbName)

	DB = client.Database(dbName)

	UserCollection = DB.Collection("users")
	MenuCollection = DB.Collection("menus")
	ReviewCollection = DB.Collection("reviews")
	CartCollection = DB.Collection("carts")
	PaymentCollection = DB.Collection("payments")
}

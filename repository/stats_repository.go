package repository

import (
	"context"
	"time"

	"github.com/MdAsraful56/FoodHut-Server/config"
	"github.com/MdAsraful56/FoodHut-Server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetAdminStats returns the dashboard summary: estimated document counts
// for users, menus and payments plus the revenue total. Estimated counts
// read collection metadata, so they may lag slightly behind writes.
func GetAdminStats() (*models.AdminStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users, err := config.UserCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, err
	}
	products, err := config.MenuCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := config.PaymentCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := totalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AdminStats{
		Users:             users,
		Products:          products,
		Orders:            orders,
		TotalRevenueValue: revenue,
	}, nil
}

// totalRevenue sums price across all payments; 0 when there are none.
func totalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cur, err := paymentCol().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	if cur.Next(ctx) {
		var row struct {
			TotalRevenue float64 `bson:"totalRevenue"`
		}
		if err := cur.Decode(&row); err != nil {
			return 0, err
		}
		return row.TotalRevenue, nil
	}
	return 0, cur.Err()
}

// GetOrderStats expands each payment's food item references into one row
// per reference, joins each against the menus collection and groups by
// category. Categories with no sales are absent from the result.
func GetOrderStats() ([]models.OrderStat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$foodItemId"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "menus"},
			{Key: "localField", Value: "foodItemId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "foodItem"},
		}}},
		{{Key: "$unwind", Value: "$foodItem"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$foodItem.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$foodItem.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: "$quantity"},
			{Key: "revenue", Value: "$revenue"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "category", Value: 1}}}},
	}

	cur, err := paymentCol().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var stats []models.OrderStat
	for cur.Next(ctx) {
		var s models.OrderStat
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, cur.Err()
}

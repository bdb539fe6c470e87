package models

// AdminStats is the home-dashboard summary. Counts are estimated
// document counts; TotalRevenueValue sums price across all payments.
type AdminStats struct {
	Users             int64   `json:"users"`
	Products          int64   `json:"products"`
	Orders            int64   `json:"orders"`
	TotalRevenueValue float64 `json:"totalRevenueValue"`
}

// OrderStat is one per-category row of the order-stats pipeline.
// Categories with no sales do not appear.
type OrderStat struct {
	Category string  `json:"category" bson:"category"`
	Quantity int64   `json:"quantity" bson:"quantity"`
	Revenue  float64 `json:"revenue" bson:"revenue"`
}

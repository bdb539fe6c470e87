package routes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/", Health)

	AuthRoutes(app)
	UserRoutes(app)
	MenuRoutes(app)
	ReviewRoutes(app)
	CartRoutes(app)
	PaymentRoutes(app)
	StatsRoutes(app)
}

// Health godoc
//
//	@Summary	Health check
//	@Tags		Health
//	@Produce	plain
//	@Success	200	{string}	string
//	@Router		/ [get]
func Health(c *fiber.Ctx) error {
	return c.SendString("FoodHut Server is Running")
}

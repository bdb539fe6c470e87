package routes

import (
	"github.com/MdAsraful56/FoodHut-Server/controllers"
	"github.com/MdAsraful56/FoodHut-Server/middleware"

	"github.com/gofiber/fiber/v2"
)

func StatsRoutes(app *fiber.App) {
	app.Get("/admin-stats", middleware.JWTMiddleware, middleware.VerifyAdmin, controllers.GetAdminStats)
	app.Get("/order-stats", middleware.JWTMiddleware, middleware.VerifyAdmin, controllers.GetOrderStats)
	app.Get("/order-stats/export", middleware.JWTMiddleware, middleware.VerifyAdmin, controllers.ExportOrderStats)
}

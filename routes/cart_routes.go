package routes

import (
	"github.com/MdAsraful56/FoodHut-Server/controllers"
	"github.com/MdAsraful56/FoodHut-Server/middleware"

	"github.com/gofiber/fiber/v2"
)

func CartRoutes(app *fiber.App) {
	cart := app.Group("/carts", middleware.JWTMiddleware)

	cart.Post("/", controllers.CreateCartItem)
	cart.Get("/", controllers.GetCartItems)
	cart.Delete("/:id", controllers.DeleteCartItem)
}

package routes

import (
	"github.com/MdAsraful56/FoodHut-Server/controllers"
	"github.com/MdAsraful56/FoodHut-Server/middleware"

	"github.com/gofiber/fiber/v2"
)

func MenuRoutes(app *fiber.App) {
	menu := app.Group("/menus")

	// Menu reads are the public storefront; writes are admin only.
	menu.Get("/", controllers.GetAllMenuItems)
	menu.Post("/", middleware.JWTMiddleware, middleware.VerifyAdmin, controllers.CreateMenuItem)
	menu.Delete("/:id", middleware.JWTMiddleware, middleware.VerifyAdmin, controllers.DeleteMenuItem)
}

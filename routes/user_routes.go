package routes

import (
	"github.com/MdAsraful56/FoodHut-Server/controllers"
	"github.com/MdAsraful56/FoodHut-Server/middleware"

	"github.com/gofiber/fiber/v2"
)

func UserRoutes(app *fiber.App) {
	user := app.Group("/users")

	// Signup stays open; everything else on the user collection is
	// privileged. The admin-flag check only answers for the caller's
	// own email.
	user.Post("/", controllers.CreateUser)
	user.Get("/", middleware.JWTMiddleware, middleware.VerifyAdmin, controllers.GetAllUsers)
	user.Get("/admin/:email", middleware.JWTMiddleware, controllers.CheckAdmin)
	user.Patch("/admin/:id", middleware.JWTMiddleware, middleware.VerifyAdmin, controllers.PromoteUser)
	user.Delete("/:id", middleware.JWTMiddleware, middleware.VerifyAdmin, controllers.DeleteUser)
}

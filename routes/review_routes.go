package routes

import (
	"github.com/MdAsraful56/FoodHut-Server/controllers"

	"github.com/gofiber/fiber/v2"
)

func ReviewRoutes(app *fiber.App) {
	review := app.Group("/reviews")

	review.Get("/", controllers.GetAllReviews)
	review.Post("/", controllers.CreateReview)
}

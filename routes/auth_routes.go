package routes

import (
	"github.com/MdAsraful56/FoodHut-Server/controllers"

	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	app.Post("/jwt", controllers.CreateToken)
}

package routes

import (
	"github.com/MdAsraful56/FoodHut-Server/controllers"
	"github.com/MdAsraful56/FoodHut-Server/middleware"

	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	app.Post("/create-payment-intent", middleware.JWTMiddleware, controllers.CreatePaymentIntent)

	app.Post("/payments", middleware.JWTMiddleware, controllers.RecordPayment)
	app.Get("/payments/:email", middleware.JWTMiddleware, controllers.GetPaymentsByEmail)
	app.Get("/payments", middleware.JWTMiddleware, middleware.VerifyAdmin, controllers.GetAllPayments)
}

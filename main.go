package main

import (
	"log"
	"os"
	"strings"

	"github.com/MdAsraful56/FoodHut-Server/config"
	_ "github.com/MdAsraful56/FoodHut-Server/docs" // swagger docs
	"github.com/MdAsraful56/FoodHut-Server/middleware"
	"github.com/MdAsraful56/FoodHut-Server/repository"
	"github.com/MdAsraful56/FoodHut-Server/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v81"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

//	@title			FoodHut API
//	@version		1.0
//	@description	REST backend for the FoodHut food-ordering app: users, menus, reviews, carts, payments and admin reports over MongoDB.
//	@description
//	@description	**Authentication:**
//	@description	- Gated endpoints require a Bearer token from POST /jwt
//	@description	- Format: Authorization: Bearer {token}
//	@description
//	@description	**Roles:**
//	@description	- Admin: user management, menu writes, payment listing, reports
//	@description	- Customer: carts, checkout, own payments

//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Not fatal if missing; hosted environments inject real env vars.
	_ = godotenv.Load()

	// Refuse to run production without a real signing secret.
	appEnv := strings.ToLower(os.Getenv("APP_ENV"))
	if os.Getenv("JWT_SECRET") == "" {
		if appEnv == "production" {
			log.Fatal("JWT_SECRET must be set in production")
		}
		os.Setenv("JWT_SECRET", "dev_secret_key_change_me")
		log.Println("JWT_SECRET not set, using development default")
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("STRIPE_SECRET_KEY not set, payment intents will fail")
	}

	config.ConnectDB()

	if err := repository.EnsureUserIndexes(); err != nil {
		log.Printf("failed to create user indexes: %v", err)
	}
	if err := repository.EnsureMenuIndexes(); err != nil {
		log.Printf("failed to create menu indexes: %v", err)
	}
	if err := repository.EnsureCartIndexes(); err != nil {
		log.Printf("failed to create cart indexes: %v", err)
	}
	if err := repository.EnsurePaymentIndexes(); err != nil {
		log.Printf("failed to create payment indexes: %v", err)
	}

	app := fiber.New()

	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware())

	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.SetupRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("FoodHut Server is running on port " + port)
	log.Fatal(app.Listen(":" + port))
}

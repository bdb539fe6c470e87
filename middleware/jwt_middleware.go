package middleware

import (
	"errors"
	"strings"

	"github.com/MdAsraful56/FoodHut-Server/repository"
	"github.com/MdAsraful56/FoodHut-Server/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// JWTMiddleware reads a Bearer token from the Authorization header,
// verifies it and puts the email claim into c.Locals("userEmail").
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized access: no token provided",
		})
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseToken(tokenStr)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token expired"})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	c.Locals("userEmail", claims.Email)
	return c.Next()
}

// findUserByEmail is swapped in tests.
var findUserByEmail = repository.FindUserByEmail

// VerifyAdmin composes with JWTMiddleware: the claimed email is looked up
// in the users collection on every request (roles are never cached) and
// anything other than role=admin is rejected.
func VerifyAdmin(c *fiber.Ctx) error {
	email, _ := c.Locals("userEmail").(string)

	user, err := findUserByEmail(email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to verify role",
			"error":   err.Error(),
		})
	}

	if !user.Role.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
	}
	return c.Next()
}

// ClaimedEmail returns the email placed in locals by JWTMiddleware.
func ClaimedEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("userEmail").(string)
	return email
}

package controllers

import (
	"github.com/MdAsraful56/FoodHut-Server/models"
	"github.com/MdAsraful56/FoodHut-Server/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateToken godoc
//
//	@Summary		Issue a JWT
//	@Description	Issues a 1 hour bearer token for the given email
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.TokenInput	true	"Token claims"
//	@Success		200		{object}	map[string]interface{}	"token"
//	@Failure		400		{object}	map[string]interface{}
//	@Router			/jwt [post]
func CreateToken(c *fiber.Ctx) error {
	var input models.TokenInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation failed",
			"error":   err.Error(),
		})
	}

	token, err := utils.GenerateToken(input.Email, utils.DefaultTokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to issue token",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"token": token})
}

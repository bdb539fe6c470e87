package controllers

import (
	"time"

	"github.com/MdAsraful56/FoodHut-Server/middleware"
	"github.com/MdAsraful56/FoodHut-Server/models"
	"github.com/MdAsraful56/FoodHut-Server/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateCartItem godoc
//
//	@Summary		Add to cart
//	@Tags			Carts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.CartItemInput	true	"Cart item"
//	@Success		201		{object}	map[string]interface{}	"insertedId"
//	@Failure		400		{object}	map[string]interface{}
//	@Failure		403		{object}	map[string]interface{}
//	@Router			/carts [post]
func CreateCartItem(c *fiber.Ctx) error {
	var input models.CartItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation failed",
			"error":   err.Error(),
		})
	}
	if input.Email != middleware.ClaimedEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
	}

	menuItemID, err := primitive.ObjectIDFromHex(input.MenuItemID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid menu item id"})
	}

	item := models.CartItem{
		MenuItemID: menuItemID,
		Email:      input.Email,
		Name:       input.Name,
		Price:      input.Price,
		Image:      input.Image,
		CreatedAt:  time.Now(),
	}
	result, err := repository.CreateCartItem(&item)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to add cart item",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": result.InsertedID})
}

// GetCartItems godoc
//
//	@Summary		List cart items
//	@Description	Returns the caller's cart, filtered by the email query parameter
//	@Tags			Carts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	query		string	true	"Owner email"
//	@Success		200		{array}		models.CartItem
//	@Failure		403		{object}	map[string]interface{}
//	@Router			/carts [get]
func GetCartItems(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" || email != middleware.ClaimedEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
	}

	items, err := repository.GetCartItemsByEmail(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to fetch cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// DeleteCartItem godoc
//
//	@Summary		Remove cart item
//	@Tags			Carts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Cart item id (hex)"
//	@Success		200	{object}	map[string]interface{}	"deletedCount"
//	@Failure		400	{object}	map[string]interface{}
//	@Router			/carts/{id} [delete]
func DeleteCartItem(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid cart item id"})
	}

	result, err := repository.DeleteCartItem(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to delete cart item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"deletedCount": result.DeletedCount})
}

package controllers

import (
	"time"

	"github.com/MdAsraful56/FoodHut-Server/models"
	"github.com/MdAsraful56/FoodHut-Server/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetAllMenuItems godoc
//
//	@Summary	List menu items
//	@Tags		Menus
//	@Produce	json
//	@Success	200	{array}		models.MenuItem
//	@Failure	500	{object}	map[string]interface{}
//	@Router		/menus [get]
func GetAllMenuItems(c *fiber.Ctx) error {
	items, err := repository.GetAllMenuItems()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to fetch menu",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// CreateMenuItem godoc
//
//	@Summary		Create menu item
//	@Tags			Menus
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.MenuItemInput	true	"Menu item"
//	@Success		201		{object}	map[string]interface{}	"insertedId"
//	@Failure		400		{object}	map[string]interface{}
//	@Router			/menus [post]
func CreateMenuItem(c *fiber.Ctx) error {
	var input models.MenuItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation failed",
			"error":   err.Error(),
		})
	}

	item := models.MenuItem{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   time.Now(),
	}
	result, err := repository.CreateMenuItem(&item)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to create menu item",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": result.InsertedID})
}

// DeleteMenuItem godoc
//
//	@Summary		Delete menu item
//	@Tags			Menus
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Menu item id (hex)"
//	@Success		200	{object}	map[string]interface{}	"deletedCount"
//	@Failure		400	{object}	map[string]interface{}
//	@Router			/menus/{id} [delete]
func DeleteMenuItem(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid menu item id"})
	}

	result, err := repository.DeleteMenuItem(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to delete menu item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"deletedCount": result.DeletedCount})
}

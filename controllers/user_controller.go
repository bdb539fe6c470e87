package controllers

import (
	"errors"
	"time"

	"github.com/MdAsraful56/FoodHut-Server/middleware"
	"github.com/MdAsraful56/FoodHut-Server/models"
	"github.com/MdAsraful56/FoodHut-Server/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateUser godoc
//
//	@Summary		Sign up
//	@Description	Stores a user profile document
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.UserInput	true	"User profile"
//	@Success		201		{object}	map[string]interface{}	"insertedId"
//	@Failure		400		{object}	map[string]interface{}
//	@Router			/users [post]
func CreateUser(c *fiber.Ctx) error {
	var input models.UserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation failed",
			"error":   err.Error(),
		})
	}

	user := models.User{
		Name:      input.Name,
		Email:     input.Email,
		PhotoURL:  input.PhotoURL,
		CreatedAt: time.Now(),
	}
	result, err := repository.CreateUser(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to create user",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": result.InsertedID})
}

// GetAllUsers godoc
//
//	@Summary		List users
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		models.User
//	@Failure		500	{object}	map[string]interface{}
//	@Router			/users [get]
func GetAllUsers(c *fiber.Ctx) error {
	users, err := repository.GetAllUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to fetch users",
			"error":   err.Error(),
		})
	}
	return c.JSON(users)
}

// CheckAdmin godoc
//
//	@Summary		Check admin flag
//	@Description	Reports whether the given email belongs to an admin. Callers may only ask about their own email.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"User email"
//	@Success		200		{object}	map[string]interface{}	"admin"
//	@Failure		403		{object}	map[string]interface{}
//	@Router			/users/admin/{email} [get]
func CheckAdmin(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.ClaimedEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
	}

	user, err := repository.FindUserByEmail(email)
	if err != nil {
		// A missing user is simply not an admin.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.JSON(fiber.Map{"admin": false})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to fetch user",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"admin": user.Role.IsAdmin()})
}

// DeleteUser godoc
//
//	@Summary		Delete user
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User id (hex)"
//	@Success		200	{object}	map[string]interface{}	"deletedCount"
//	@Failure		400	{object}	map[string]interface{}
//	@Router			/users/{id} [delete]
func DeleteUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	result, err := repository.DeleteUser(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to delete user",
			"error":   err.Error(),
		})
	}
	// deletedCount 0 means the id was already gone; still a 200.
	return c.JSON(fiber.Map{"deletedCount": result.DeletedCount})
}

// PromoteUser godoc
//
//	@Summary		Promote user to admin
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User id (hex)"
//	@Success		200	{object}	map[string]interface{}	"matchedCount, modifiedCount"
//	@Failure		400	{object}	map[string]interface{}
//	@Router			/users/admin/{id} [patch]
func PromoteUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	result, err := repository.PromoteUserToAdmin(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to promote user",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}

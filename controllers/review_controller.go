package controllers

import (
	"time"

	"github.com/MdAsraful56/FoodHut-Server/models"
	"github.com/MdAsraful56/FoodHut-Server/repository"

	"github.com/gofiber/fiber/v2"
)

// GetAllReviews godoc
//
//	@Summary	List reviews
//	@Tags		Reviews
//	@Produce	json
//	@Success	200	{array}	models.Review
//	@Router		/reviews [get]
func GetAllReviews(c *fiber.Ctx) error {
	reviews, err := repository.GetAllReviews()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to fetch reviews",
			"error":   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// CreateReview godoc
//
//	@Summary	Create review
//	@Tags		Reviews
//	@Accept		json
//	@Produce	json
//	@Param		review	body		models.ReviewInput	true	"Review"
//	@Success	201		{object}	map[string]interface{}	"insertedId"
//	@Failure	400		{object}	map[string]interface{}
//	@Router		/reviews [post]
func CreateReview(c *fiber.Ctx) error {
	var input models.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation failed",
			"error":   err.Error(),
		})
	}

	review := models.Review{
		Name:      input.Name,
		Details:   input.Details,
		Rating:    input.Rating,
		CreatedAt: time.Now(),
	}
	result, err := repository.CreateReview(&review)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to create review",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": result.InsertedID})
}

package controllers

import (
	"math"
	"time"

	"github.com/MdAsraful56/FoodHut-Server/middleware"
	"github.com/MdAsraful56/FoodHut-Server/models"
	"github.com/MdAsraful56/FoodHut-Server/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// toMinorUnits converts a decimal major-unit price to the provider's
// integer amount via math.Round (1.125 → 113).
func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// createIntent and the checkout store calls are swapped in tests.
var (
	createIntent    = stripeCreateIntent
	insertPayment   = repository.CreatePayment
	deleteCartItems = repository.DeleteCartItems
)

func stripeCreateIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.IdempotencyKey = stripe.String(uuid.NewString())

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}

// CreatePaymentIntent godoc
//
//	@Summary		Create payment intent
//	@Description	Converts the decimal price to minor units and requests a card payment intent
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.PaymentIntentInput	true	"Price in major units"
//	@Success		200		{object}	map[string]interface{}	"clientSecret"
//	@Failure		400		{object}	map[string]interface{}
//	@Failure		502		{object}	map[string]interface{}
//	@Router			/create-payment-intent [post]
func CreatePaymentIntent(c *fiber.Ctx) error {
	var input models.PaymentIntentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation failed",
			"error":   err.Error(),
		})
	}

	clientSecret, err := createIntent(toMinorUnits(input.Price))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "payment provider request failed",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}

// RecordPayment godoc
//
//	@Summary		Record payment
//	@Description	Inserts the payment document, then deletes the referenced cart items. The two steps are not atomic: if the cleanup fails after the insert, the response is 502 and carries the recorded payment id so the cleanup can be retried.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			payment	body		models.PaymentInput	true	"Payment"
//	@Success		201		{object}	map[string]interface{}	"paymentResult, deleteResult"
//	@Failure		400		{object}	map[string]interface{}
//	@Failure		403		{object}	map[string]interface{}
//	@Failure		502		{object}	map[string]interface{}
//	@Router			/payments [post]
func RecordPayment(c *fiber.Ctx) error {
	var input models.PaymentInput
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

	cartIDs, err := parseObjectIDs(input.CartItems)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid cart item id"})
	}
	foodIDs, err := parseObjectIDs(input.FoodItemIDs)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid food item id"})
	}

	payment := models.Payment{
		Email:       input.Email,
		Price:       input.Price,
		CartItems:   cartIDs,
		FoodItemIDs: foodIDs,
		CreatedAt:   time.Now(),
	}
	paymentResult, err := insertPayment(&payment)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to record payment",
			"error":   err.Error(),
		})
	}

	deleteResult, err := deleteCartItems(cartIDs)
	if err != nil {
		// Payment is already stored; surface the id so cleanup can be retried.
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message":    "payment recorded but cart cleanup failed",
			"insertedId": paymentResult.InsertedID,
			"error":      err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"paymentResult": fiber.Map{"insertedId": paymentResult.InsertedID},
		"deleteResult":  fiber.Map{"deletedCount": deleteResult.DeletedCount},
	})
}

// GetPaymentsByEmail godoc
//
//	@Summary		List own payments
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"Owner email"
//	@Success		200		{array}		models.Payment
//	@Failure		403		{object}	map[string]interface{}
//	@Router			/payments/{email} [get]
func GetPaymentsByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.ClaimedEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
	}

	payments, err := repository.GetPaymentsByEmail(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to fetch payments",
			"error":   err.Error(),
		})
	}
	return c.JSON(payments)
}

// GetAllPayments godoc
//
//	@Summary		List all payments
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		models.Payment
//	@Failure		500	{object}	map[string]interface{}
//	@Router			/payments [get]
func GetAllPayments(c *fiber.Ctx) error {
	payments, err := repository.GetAllPayments()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to fetch payments",
			"error":   err.Error(),
		})
	}
	return c.JSON(payments)
}

func parseObjectIDs(hexIDs []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, h := range hexIDs {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

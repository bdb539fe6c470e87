package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MdAsraful56/FoodHut-Server/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{30, 3000},
		{0.01, 1},
		{2.5, 250},
		{100.5, 10050},
		{1.125, 113},
	}
	for _, tt := range tests {
		got := toMinorUnits(tt.price)
		if got != tt.want {
			t.Errorf("toMinorUnits(%v) = %d, want %d", tt.price, got, tt.want)
		}
	}
}

func newIntentApp() *fiber.App {
	app := fiber.New()
	app.Post("/create-payment-intent", CreatePaymentIntent)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func TestCreatePaymentIntent(t *testing.T) {
	orig := createIntent
	defer func() { createIntent = orig }()

	var gotAmount int64
	createIntent = func(amount int64) (string, error) {
		gotAmount = amount
		return "cs_test_secret", nil
	}

	app := newIntentApp()
	resp := postJSON(t, app, "/create-payment-intent", fiber.Map{"price": 19.99})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1999), gotAmount)

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "cs_test_secret", body["clientSecret"])
}

func TestCreatePaymentIntentInvalidPrice(t *testing.T) {
	app := newIntentApp()

	resp := postJSON(t, app, "/create-payment-intent", fiber.Map{"price": 0})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/create-payment-intent", fiber.Map{"price": -5})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreatePaymentIntentProviderFailure(t *testing.T) {
	orig := createIntent
	defer func() { createIntent = orig }()

	createIntent = func(amount int64) (string, error) {
		return "", errors.New("provider down")
	}

	app := newIntentApp()
	resp := postJSON(t, app, "/create-payment-intent", fiber.Map{"price": 10})
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

// newPaymentApp injects the claimed email the way JWTMiddleware would.
func newPaymentApp(email string) *fiber.App {
	app := fiber.New()
	app.Post("/payments", func(c *fiber.Ctx) error {
		c.Locals("userEmail", email)
		return RecordPayment(c)
	})
	return app
}

func TestRecordPaymentRejectsInvalidBody(t *testing.T) {
	app := newPaymentApp("a@b.com")

	resp := postJSON(t, app, "/payments", fiber.Map{"email": "a@b.com"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/payments", fiber.Map{
		"email":      "a@b.com",
		"price":      30,
		"cartItems":  []string{"not-hex"},
		"foodItemId": []string{"also-not-hex"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRecordPaymentRejectsForeignEmail(t *testing.T) {
	app := newPaymentApp("someone-else@b.com")

	resp := postJSON(t, app, "/payments", fiber.Map{
		"email":      "a@b.com",
		"price":      30,
		"cartItems":  []string{primitive.NewObjectID().Hex()},
		"foodItemId": []string{primitive.NewObjectID().Hex()},
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRecordPaymentSuccess(t *testing.T) {
	origInsert, origDelete := insertPayment, deleteCartItems
	defer func() { insertPayment, deleteCartItems = origInsert, origDelete }()

	paymentID := primitive.NewObjectID()
	var gotPayment *models.Payment
	insertPayment = func(p *models.Payment) (*mongo.InsertOneResult, error) {
		gotPayment = p
		return &mongo.InsertOneResult{InsertedID: paymentID}, nil
	}
	var gotCartIDs []primitive.ObjectID
	deleteCartItems = func(ids []primitive.ObjectID) (*mongo.DeleteResult, error) {
		gotCartIDs = ids
		return &mongo.DeleteResult{DeletedCount: int64(len(ids))}, nil
	}

	cartA := primitive.NewObjectID()
	cartB := primitive.NewObjectID()
	app := newPaymentApp("a@b.com")
	resp := postJSON(t, app, "/payments", fiber.Map{
		"email":      "a@b.com",
		"price":      30,
		"cartItems":  []string{cartA.Hex(), cartB.Hex()},
		"foodItemId": []string{primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex()},
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// The cleanup must target exactly the submitted cart ids.
	assert.Equal(t, []primitive.ObjectID{cartA, cartB}, gotCartIDs)
	assert.Equal(t, "a@b.com", gotPayment.Email)
	assert.Equal(t, float64(30), gotPayment.Price)

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		PaymentResult struct {
			InsertedID string `json:"insertedId"`
		} `json:"paymentResult"`
		DeleteResult struct {
			DeletedCount int64 `json:"deletedCount"`
		} `json:"deleteResult"`
	}
	assert.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, paymentID.Hex(), body.PaymentResult.InsertedID)
	assert.Equal(t, int64(2), body.DeleteResult.DeletedCount)
}

func TestRecordPaymentCleanupFailure(t *testing.T) {
	origInsert, origDelete := insertPayment, deleteCartItems
	defer func() { insertPayment, deleteCartItems = origInsert, origDelete }()

	paymentID := primitive.NewObjectID()
	insertPayment = func(p *models.Payment) (*mongo.InsertOneResult, error) {
		return &mongo.InsertOneResult{InsertedID: paymentID}, nil
	}
	deleteCartItems = func(ids []primitive.ObjectID) (*mongo.DeleteResult, error) {
		return nil, errors.New("carts unreachable")
	}

	app := newPaymentApp("a@b.com")
	resp := postJSON(t, app, "/payments", fiber.Map{
		"email":      "a@b.com",
		"price":      30,
		"cartItems":  []string{primitive.NewObjectID().Hex()},
		"foodItemId": []string{primitive.NewObjectID().Hex()},
	})
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	// The payment is already stored; the response must carry its id so
	// the cleanup can be retried.
	raw, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, paymentID.Hex(), body["insertedId"])
}

func TestParseObjectIDs(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	ids, err := parseObjectIDs([]string{a.Hex(), b.Hex()})
	assert.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{a, b}, ids)

	_, err = parseObjectIDs([]string{a.Hex(), "bogus"})
	assert.Error(t, err)
}

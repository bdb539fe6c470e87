package controllers

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/MdAsraful56/FoodHut-Server/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	app := fiber.New()
	app.Post("/jwt", CreateToken)

	resp := postJSON(t, app, "/jwt", fiber.Map{"email": "user@example.com"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(raw, &body))

	claims, err := utils.ParseToken(body["token"])
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestCreateTokenRejectsBadEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	app := fiber.New()
	app.Post("/jwt", CreateToken)

	resp := postJSON(t, app, "/jwt", fiber.Map{"email": "not-an-email"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/jwt", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHealthRoute(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "FoodHut Server is Running", string(body))
}

// Gated routes must reject unauthenticated requests before any handler
// (and therefore any store access) runs.
func TestGatedRoutesRejectAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	app := fiber.New()
	SetupRoutes(app)

	gated := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodDelete, "/users/656e6f7567682062797465"},
		{http.MethodPatch, "/users/admin/656e6f7567682062797465"},
		{http.MethodPost, "/menus"},
		{http.MethodDelete, "/menus/656e6f7567682062797465"},
		{http.MethodGet, "/carts"},
		{http.MethodPost, "/carts"},
		{http.MethodDelete, "/carts/656e6f7567682062797465"},
		{http.MethodPost, "/create-payment-intent"},
		{http.MethodPost, "/payments"},
		{http.MethodGet, "/payments"},
		{http.MethodGet, "/payments/a@b.com"},
		{http.MethodGet, "/admin-stats"},
		{http.MethodGet, "/order-stats"},
		{http.MethodGet, "/order-stats/export"},
	}

	for _, tt := range gated {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", tt.method, tt.path)
	}
}

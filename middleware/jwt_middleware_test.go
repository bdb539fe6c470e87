package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MdAsraful56/FoodHut-Server/models"
	"github.com/MdAsraful56/FoodHut-Server/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func newProtectedApp(extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{JWTMiddleware}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": ClaimedEmail(c)})
	})
	app.Get("/protected", handlers...)
	return app
}

func TestJWTMiddlewareNoToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := newProtectedApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := newProtectedApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := newProtectedApp()

	token, err := utils.GenerateToken("user@example.com", -time.Minute)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := newProtectedApp()

	token, err := utils.GenerateToken("user@example.com", time.Hour)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestVerifyAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	orig := findUserByEmail
	defer func() { findUserByEmail = orig }()

	tests := []struct {
		name       string
		lookup     func(email string) (*models.User, error)
		wantStatus int
	}{
		{
			name: "admin passes",
			lookup: func(email string) (*models.User, error) {
				return &models.User{Email: email, Role: models.RoleAdmin}, nil
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name: "customer forbidden",
			lookup: func(email string) (*models.User, error) {
				return &models.User{Email: email, Role: models.RoleCustomer}, nil
			},
			wantStatus: fiber.StatusForbidden,
		},
		{
			name: "unknown user forbidden",
			lookup: func(email string) (*models.User, error) {
				return nil, mongo.ErrNoDocuments
			},
			wantStatus: fiber.StatusForbidden,
		},
	}

	token, err := utils.GenerateToken("user@example.com", time.Hour)
	assert.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findUserByEmail = tt.lookup
			app := newProtectedApp(VerifyAdmin)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

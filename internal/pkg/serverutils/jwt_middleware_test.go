package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test_secret"

func signToken(t *testing.T, role, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"email": "admin@example.com",
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestJwtMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", NewJwtMiddleware(testSecret), func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid admin token", "Bearer " + signToken(t, "admin", testSecret), fiber.StatusOK},
		{"missing token", "", fiber.StatusUnauthorized},
		{"malformed header", "Basic abc", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "admin", "other_secret"), fiber.StatusUnauthorized},
		{"non-admin role", "Bearer " + signToken(t, "user", testSecret), fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

// The middleware must accept tokens signed by the login flow with the
// same configured secret, whatever the process environment holds.
func TestJwtMiddlewareUsesConfiguredSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "unrelated_env_value")

	app := fiber.New()
	app.Get("/protected", NewJwtMiddleware(testSecret), func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin", testSecret))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}

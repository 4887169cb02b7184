package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"Restaurant-Management-Backend/domain"
	"Restaurant-Management-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newProtectedApp(t *testing.T) (*fiber.App, jwt.JWTService) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	jwtService := jwt.NewJWTService()
	m := NewMiddleware()

	app := fiber.New()
	app.Get("/purchase/:email",
		m.AuthMiddleware(jwtService),
		m.RequireOwnEmail(),
		func(c *fiber.Ctx) error {
			return c.JSON([]string{})
		},
	)
	return app, jwtService
}

func decodeMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	body := map[string]string{}
	assert.NoError(t, json.Unmarshal(raw, &body))
	return body["message"]
}

func TestAuthMiddlewareRejectsMissingCookie(t *testing.T) {
	app, _ := newProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/purchase/diner@example.com", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, domain.MessageUnauthorized, decodeMessage(t, resp))
}

func TestAuthMiddlewareRejectsTamperedCookie(t *testing.T) {
	app, jwtService := newProtectedApp(t)

	token, err := jwtService.IssueToken(domain.Identity{"email": "diner@example.com"})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/purchase/diner@example.com", nil)
	req.AddCookie(&http.Cookie{Name: jwt.CookieName, Value: token + "x"})
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireOwnEmailRejectsMismatch(t *testing.T) {
	app, jwtService := newProtectedApp(t)

	token, err := jwtService.IssueToken(domain.Identity{"email": "diner@example.com"})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/purchase/someone-else@example.com", nil)
	req.AddCookie(&http.Cookie{Name: jwt.CookieName, Value: token})
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, domain.MessageForbidden, decodeMessage(t, resp))
}

func TestRequireOwnEmailAllowsOwner(t *testing.T) {
	app, jwtService := newProtectedApp(t)

	token, err := jwtService.IssueToken(domain.Identity{"email": "diner@example.com"})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/purchase/diner@example.com", nil)
	req.AddCookie(&http.Cookie{Name: jwt.CookieName, Value: token})
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireOwnEmailDecodesEscapedParam(t *testing.T) {
	app, jwtService := newProtectedApp(t)

	token, err := jwtService.IssueToken(domain.Identity{"email": "diner@example.com"})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/purchase/diner%40example.com", nil)
	req.AddCookie(&http.Cookie{Name: jwt.CookieName, Value: token})
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

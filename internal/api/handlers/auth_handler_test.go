package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Restaurant-Management-Backend/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	h := NewAuthHandler(jwt.NewJWTService(), validator.New())

	app := fiber.New()
	app.Post("/jwt", h.IssueToken)
	app.Post("/logout", h.Logout)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func TestIssueTokenSetsCookie(t *testing.T) {
	app := newAuthApp(t)

	resp := postJSON(t, app, "/jwt", `{"email":"diner@example.com","name":"Diner"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	body := map[string]bool{}
	assert.NoError(t, json.Unmarshal(raw, &body))
	assert.True(t, body["success"])

	var tokenCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == jwt.CookieName {
			tokenCookie = cookie
		}
	}
	assert.NotNil(t, tokenCookie)
	assert.NotEmpty(t, tokenCookie.Value)
	assert.True(t, tokenCookie.HttpOnly)
}

func TestIssueTokenRequiresEmail(t *testing.T) {
	app := newAuthApp(t)

	resp := postJSON(t, app, "/jwt", `{"name":"Diner"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestIssueTokenRejectsMalformedBody(t *testing.T) {
	app := newAuthApp(t)

	resp := postJSON(t, app, "/jwt", `{"email":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newAuthApp(t)

	resp := postJSON(t, app, "/logout", `{}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var tokenCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == jwt.CookieName {
			tokenCookie = cookie
		}
	}
	assert.NotNil(t, tokenCookie)
	assert.Empty(t, tokenCookie.Value)
}

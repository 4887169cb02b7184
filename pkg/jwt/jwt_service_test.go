package jwt

import (
	"testing"
	"time"

	"Restaurant-Management-Backend/domain"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestIssueTokenVerifyTokenRoundTrip(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	svc := NewJWTService()

	token, err := svc.IssueToken(domain.Identity{
		"email": "diner@example.com",
		"name":  "Diner",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := svc.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "diner@example.com", identity.Email())
	assert.Equal(t, "Diner", identity["name"])
}

func TestVerifyTokenRejectsWrongSignature(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "secret-one")
	issuer := NewJWTService()
	token, err := issuer.IssueToken(domain.Identity{"email": "diner@example.com"})
	assert.NoError(t, err)

	t.Setenv("ACCESS_TOKEN_SECRET", "secret-two")
	verifier := NewJWTService()

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyTokenRejectsExpiredToken(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	svc := NewJWTService()

	claims := gojwt.MapClaims{
		"email": "diner@example.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
	}
	expired, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = svc.VerifyToken(expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	svc := NewJWTService()

	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestAuthCookieFlags(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	t.Run("development", func(t *testing.T) {
		t.Setenv("NODE_ENV", "development")
		cookie := NewJWTService().AuthCookie("abc")

		assert.Equal(t, CookieName, cookie.Name)
		assert.True(t, cookie.HTTPOnly)
		assert.False(t, cookie.Secure)
		assert.Equal(t, fiber.CookieSameSiteStrictMode, cookie.SameSite)
	})

	t.Run("production", func(t *testing.T) {
		t.Setenv("NODE_ENV", "production")
		cookie := NewJWTService().AuthCookie("abc")

		assert.True(t, cookie.HTTPOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, fiber.CookieSameSiteNoneMode, cookie.SameSite)
	})
}

func TestClearCookieInvalidatesToken(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	cookie := NewJWTService().ClearCookie()

	assert.Equal(t, CookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.Expires.Before(time.Now()))
}

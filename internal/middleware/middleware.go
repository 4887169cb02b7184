package middleware

import (
	"net/url"

	"Restaurant-Management-Backend/domain"
	"Restaurant-Management-Backend/internal/api/presenters"
	"Restaurant-Management-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// allowedOrigins are the known front-end deployments; credentials stay
// enabled so the identity cookie flows cross-origin.
const allowedOrigins = "http://localhost:5173," +
	"https://restaurant-management-89e37.web.app," +
	"https://restaurant-management-89e37.firebaseapp.com"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		RequireOwnEmail() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
	})
}

// AuthMiddleware gates identity-scoped routes on the cookie token. Any
// missing, malformed, expired or mis-signed token answers 401.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(jwt.CookieName)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, domain.ErrTokenNotFound)
		}

		identity, err := jwtService.VerifyToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, err)
		}

		c.Locals("identity", identity)
		c.Locals("email", identity.Email())
		return c.Next()
	}
}

// RequireOwnEmail is the single ownership predicate: the :email path
// parameter must exactly equal the verified identity's email.
func (m *middleware) RequireOwnEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requested := c.Params("email")
		if decoded, err := url.PathUnescape(requested); err == nil {
			requested = decoded
		}

		email, _ := c.Locals("email").(string)
		if email == "" || email != requested {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageForbidden, nil)
		}
		return c.Next()
	}
}

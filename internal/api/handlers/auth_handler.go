package handlers

import (
	"Restaurant-Management-Backend/domain"
	"Restaurant-Management-Backend/internal/api/presenters"
	"Restaurant-Management-Backend/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		IssueToken(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
	}

	authHandler struct {
		jwtService jwt.JWTService
		validator  *validator.Validate
	}
)

func NewAuthHandler(jwtService jwt.JWTService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		jwtService: jwtService,
		validator:  validator,
	}
}

// IssueToken signs the caller-supplied identity payload and delivers it
// in the identity cookie.
func (h *authHandler) IssueToken(c *fiber.Ctx) error {
	identity := domain.Identity{}
	if err := c.BodyParser(&identity); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Var(identity.Email(), "required,email"); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingIdentity, err)
	}

	token, err := h.jwtService.IssueToken(identity)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedIssueToken, err)
	}

	c.Cookie(h.jwtService.AuthCookie(token))
	return presenters.SuccessResponse(c, fiber.Map{"success": true}, fiber.StatusOK)
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(h.jwtService.ClearCookie())
	return presenters.SuccessResponse(c, fiber.Map{"success": true}, fiber.StatusOK)
}

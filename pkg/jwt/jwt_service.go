package jwt

import (
	"errors"
	"fmt"
	"time"

	"Restaurant-Management-Backend/domain"
	"Restaurant-Management-Backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// CookieName is the cookie carrying the identity token.
const CookieName = "token"

const tokenTTL = time.Hour

type (
	JWTService interface {
		IssueToken(identity domain.Identity) (string, error)
		VerifyToken(token string) (domain.Identity, error)
		AuthCookie(token string) *fiber.Cookie
		ClearCookie() *fiber.Cookie
	}

	jwtService struct {
		secretKey  string
		production bool
	}
)

func NewJWTService() JWTService {
	return &jwtService{
		secretKey:  utils.GetConfig("ACCESS_TOKEN_SECRET"),
		production: utils.IsProduction(),
	}
}

func (j *jwtService) IssueToken(identity domain.Identity) (string, error) {
	claims := jwt.MapClaims{}
	for key, value := range identity {
		claims[key] = value
	}
	claims["exp"] = time.Now().Add(tokenTTL).Unix()
	claims["iat"] = time.Now().Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) VerifyToken(token string) (domain.Identity, error) {
	t_Token, err := jwt.Parse(token, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(jwt.MapClaims)
	identity := domain.Identity{}
	for key, value := range claims {
		identity[key] = value
	}
	return identity, nil
}

// AuthCookie wraps a signed token in the identity cookie. In production
// the cookie must cross sites from the hosted front-ends, hence
// SameSite=None with Secure; elsewhere it stays Strict over plain HTTP.
func (j *jwtService) AuthCookie(token string) *fiber.Cookie {
	cookie := &fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(tokenTTL),
		HTTPOnly: true,
		Secure:   j.production,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
	if j.production {
		cookie.SameSite = fiber.CookieSameSiteNoneMode
	}
	return cookie
}

func (j *jwtService) ClearCookie() *fiber.Cookie {
	cookie := j.AuthCookie("")
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	return cookie
}

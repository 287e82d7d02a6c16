package middleware

import (
	"fmt"
	"log"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
)

// Locals keys populated by AuthRequired for downstream handlers.
const (
	LocalUsername    = "username"
	LocalRoles       = "roles"
	LocalPermissions = "permissions"
	LocalClientIP    = "client_ip"
)

// AuthRequired is a Fiber middleware that validates the bearer token and
// resolves the caller identity. It stores username, roles, permissions and
// the client IP in the request locals; it makes no authorization decision
// itself.
func AuthRequired(jwtSecret string) fiber.Handler {
	secret := []byte(jwtSecret)
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := validateToken(parts[1], secret)
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		c.Locals(LocalUsername, stringClaim(claims, "username"))
		c.Locals(LocalRoles, stringListClaim(claims, "roles"))
		c.Locals(LocalPermissions, stringListClaim(claims, "permissions"))
		c.Locals(LocalClientIP, ClientIP(c))

		return c.Next()
	}
}

// validateToken parses and validates an HS256 JWT, returning its claims.
func validateToken(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// ClientIP resolves the caller address, honoring X-Forwarded-For when set.
func ClientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); strings.TrimSpace(forwarded) != "" {
		return forwarded
	}
	return c.IP()
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}
	return ""
}

func stringListClaim(claims jwt.MapClaims, key string) []string {
	raw, ok := claims[key].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if value, ok := item.(string); ok {
			values = append(values, value)
		}
	}
	return values
}

// Package middleware provides HTTP middleware for the application.
package middleware

import (
	"log"
	"strings"

	"paisa/internal/models"
	"paisa/internal/repositories"
	"paisa/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates bearer tokens and loads the calling user.
type AuthMiddleware struct {
	users repositories.UserRepository
}

func NewAuthMiddleware(users repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{users: users}
}

// Handler checks the Authorization header, verifies the JWT and stores the
// claims and the loaded user in the request context.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		log.Printf("token validation error: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	user, err := m.users.GetByID(claims.UserID)
	if err != nil {
		log.Printf("user %d from token not found", claims.UserID)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals("claims", claims)
	c.Locals("user", user)

	return c.Next()
}

// CurrentUser returns the authenticated user stored by Handler.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok
}

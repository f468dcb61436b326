package middleware

import (
	"errors"
	"strings"

	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token and attaches the signed identity
// (email, fname, lname) to the request.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"err": "Missing authorization token", "code": 401})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"err": "Invalid authorization format. Use: Bearer <token>", "code": 401})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"err": "Invalid or expired token", "code": 401})
		}

		c.Locals("user_email", claims.Email)
		c.Locals("user_fname", claims.Fname)
		c.Locals("user_lname", claims.Lname)

		return c.Next()
	}
}

// RequireAdmin additionally demands the admin capability: the caller must
// own a business or sit on one's admin list.
func RequireAdmin(userRepo repository.UserRepository, businessRepo repository.BusinessRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("user_email").(string)
		if !ok || email == "" {
			return c.Status(401).JSON(fiber.Map{"err": "Missing authorization token", "code": 401})
		}

		user, err := userRepo.FindByEmail(c.Context(), email)
		if err != nil {
			return c.Status(403).JSON(fiber.Map{"err": "User does not exist", "code": 403})
		}

		if _, err := businessRepo.FindByOwner(c.Context(), user.ID); err == nil {
			return c.Next()
		} else if !errors.Is(err, repository.ErrNotFound) {
			return c.Status(500).JSON(fiber.Map{"err": "Internal Server Error", "code": 500})
		}

		if _, err := businessRepo.FindByAdmin(c.Context(), user.ID); err == nil {
			return c.Next()
		} else if !errors.Is(err, repository.ErrNotFound) {
			return c.Status(500).JSON(fiber.Map{"err": "Internal Server Error", "code": 500})
		}

		return c.Status(403).JSON(fiber.Map{"err": "Admin rights required", "code": 403})
	}
}

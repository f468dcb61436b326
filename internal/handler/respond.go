package handler

import (
	"errors"
	"strings"

	"go-pos-backend/internal/service"
	"go-pos-backend/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// fail writes the {err, code} error envelope; code mirrors the HTTP status.
func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"err": msg, "code": status})
}

// failErr renders a service error; anything unexpected becomes a 500.
func failErr(c *fiber.Ctx, err error) error {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		return fail(c, svcErr.Code, svcErr.Message)
	}
	return fail(c, fiber.StatusInternalServerError, "Internal Server Error")
}

// parseBody enforces the shared request-boundary rules: a non-empty JSON
// body that decodes into the endpoint's schema and passes its validate tags.
// On failure it writes the 400 envelope and returns false.
func parseBody(c *fiber.Ctx, req interface{}) bool {
	if len(c.Body()) == 0 {
		fail(c, fiber.StatusBadRequest, "No request body")
		return false
	}
	if err := c.BodyParser(req); err != nil {
		fail(c, fiber.StatusBadRequest, "Invalid JSON")
		return false
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		fail(c, fiber.StatusBadRequest, invalidFieldMsg(errs[0]))
		return false
	}
	return true
}

func invalidFieldMsg(e *validator.ErrorResponse) string {
	field := e.FailedField
	if i := strings.LastIndex(field, "."); i >= 0 {
		field = field[i+1:]
	}
	if e.Tag == "objectid" {
		return "Id is not a valid ObjectId"
	}
	return "Invalid " + strings.ToLower(field[:1]) + field[1:] + " input"
}

// userEmail returns the authenticated identity's email set by RequireAuth.
func userEmail(c *fiber.Ctx) string {
	if email, ok := c.Locals("user_email").(string); ok {
		return email
	}
	return ""
}

package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserHandler struct {
	authService service.AuthService
}

func NewUserHandler(authService service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Fname      string `json:"fname" validate:"required"`
	Lname      string `json:"lname" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	BusinessID string `json:"businessId" validate:"omitempty,objectid"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// Login authenticates and returns the signed token as "Bearer <token>"
// POST /user/login
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if !parseBody(c, &req) {
		return nil
	}

	token, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"token": token, "code": 200})
}

// Register creates a new user account
// POST /user/register
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if !parseBody(c, &req) {
		return nil
	}

	var businessID *primitive.ObjectID
	if req.BusinessID != "" {
		id, err := model.ParseID(req.BusinessID)
		if err != nil {
			return fail(c, 400, "Id is not a valid ObjectId")
		}
		businessID = &id
	}

	err := h.authService.Register(c.Context(), service.RegisterInput{
		Fname:      req.Fname,
		Lname:      req.Lname,
		Email:      req.Email,
		Password:   req.Password,
		BusinessID: businessID,
	})
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(201).JSON(true)
}

// Business reports whether the caller has a linked business
// POST /user/business
func (h *UserHandler) Business(c *fiber.Ctx) error {
	has, err := h.authService.HasBusiness(c.Context(), userEmail(c))
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"business": has, "code": 201})
}

// Name returns the caller's first and last name
// POST /user/name
func (h *UserHandler) Name(c *fiber.Ctx) error {
	formatted, err := h.authService.Name(c.Context(), userEmail(c))
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"formattedUser": formatted, "code": 201})
}

// Password updates the caller's password after verifying the old one
// POST /user/password
func (h *UserHandler) Password(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if !parseBody(c, &req) {
		return nil
	}

	if err := h.authService.ChangePassword(c.Context(), userEmail(c), req.OldPassword, req.NewPassword); err != nil {
		return failErr(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"updated": true, "code": 200})
}

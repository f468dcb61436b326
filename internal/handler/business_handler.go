package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type BusinessHandler struct {
	businessService service.BusinessService
}

func NewBusinessHandler(businessService service.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

type CreateBusinessRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type"`
}

type EditBusinessRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type"`
}

type AddAdminsRequest struct {
	Name   string   `json:"name" validate:"required"`
	Admins []string `json:"admins" validate:"required,min=1,dive,objectid"`
}

type EditTillsRequest struct {
	Tills []string `json:"tills" validate:"dive,objectid"`
}

// Create persists a business and links it to the caller
// POST /business/create
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var req CreateBusinessRequest
	if !parseBody(c, &req) {
		return nil
	}

	formatted, err := h.businessService.Create(c.Context(), userEmail(c), service.CreateBusinessInput{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"formattedBus": formatted, "code": 201})
}

// Get returns the business owned by the caller
// POST /business/get
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	formatted, err := h.businessService.GetByOwner(c.Context(), userEmail(c))
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"formattedBus": formatted, "code": 201})
}

// Edit renames/retypes the caller's business
// POST /business/edit
func (h *BusinessHandler) Edit(c *fiber.Ctx) error {
	var req EditBusinessRequest
	if !parseBody(c, &req) {
		return nil
	}

	updated, err := h.businessService.Edit(c.Context(), userEmail(c), req.Name, req.Type)
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"updatedBusiness": updated, "code": 200})
}

// Admins unions user ids into the business's admin list
// POST /business/admins
func (h *BusinessHandler) Admins(c *fiber.Ctx) error {
	var req AddAdminsRequest
	if !parseBody(c, &req) {
		return nil
	}

	ids, err := model.ParseIDs(req.Admins)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}

	formatted, err := h.businessService.AddAdmins(c.Context(), req.Name, ids)
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"formattedBus": formatted, "code": 201})
}

// Tills lists the tills attached to the caller's business
// POST /business/tills
func (h *BusinessHandler) Tills(c *fiber.Ctx) error {
	tills, err := h.businessService.Tills(c.Context(), userEmail(c))
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"tills": tills, "code": 200})
}

// EditTills replaces the business's till list with validated till ids
// POST /business/edittills
func (h *BusinessHandler) EditTills(c *fiber.Ctx) error {
	var req EditTillsRequest
	if !parseBody(c, &req) {
		return nil
	}

	ids, err := model.ParseIDs(req.Tills)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}

	formatted, err := h.businessService.EditTills(c.Context(), userEmail(c), ids)
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"formattedBus": formatted, "code": 200})
}

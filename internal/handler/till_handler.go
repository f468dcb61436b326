package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TillHandler struct {
	tillService service.TillService
}

func NewTillHandler(tillService service.TillService) *TillHandler {
	return &TillHandler{tillService: tillService}
}

type CreateTillRequest struct {
	Attach bool `json:"attach"`
}

type GetTillRequest struct {
	TillID string `json:"tillId" validate:"required,objectid"`
}

type AddTillEmployeesRequest struct {
	TillID    string   `json:"tillId" validate:"required,objectid"`
	Employees []string `json:"employees" validate:"required,min=1,dive,email"`
}

type CreateEmployeeRequest struct {
	Email     string `json:"email" validate:"required,email"`
	IsManager bool   `json:"isManager"`
}

// Create opens a new till, optionally attaching it to the caller's business
// POST /till/create
func (h *TillHandler) Create(c *fiber.Ctx) error {
	var req CreateTillRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fail(c, 400, "Invalid JSON")
		}
	}

	formatted, err := h.tillService.Create(c.Context(), userEmail(c), req.Attach)
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"formattedTill": formatted, "code": 201})
}

// Get returns a till by id
// POST /till/get
func (h *TillHandler) Get(c *fiber.Ctx) error {
	var req GetTillRequest
	if !parseBody(c, &req) {
		return nil
	}
	tillID, err := model.ParseID(req.TillID)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}

	formatted, err := h.tillService.Get(c.Context(), tillID)
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"formattedTill": formatted, "code": 200})
}

// Employees unions employee emails onto the till's staff list
// POST /till/employees
func (h *TillHandler) Employees(c *fiber.Ctx) error {
	var req AddTillEmployeesRequest
	if !parseBody(c, &req) {
		return nil
	}
	tillID, err := model.ParseID(req.TillID)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}

	formatted, err := h.tillService.AddEmployees(c.Context(), tillID, req.Employees)
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"formattedTill": formatted, "code": 201})
}

// CreateEmployee registers an employee that tills can then list
// POST /employee/create
func (h *TillHandler) CreateEmployee(c *fiber.Ctx) error {
	var req CreateEmployeeRequest
	if !parseBody(c, &req) {
		return nil
	}

	formatted, err := h.tillService.CreateEmployee(c.Context(), req.Email, req.IsManager)
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"formattedEmployee": formatted, "code": 201})
}

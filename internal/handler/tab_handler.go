package handler

import (
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TabHandler struct {
	layoutService service.LayoutService
}

func NewTabHandler(layoutService service.LayoutService) *TabHandler {
	return &TabHandler{layoutService: layoutService}
}

type CreateTabRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

// Create adds a new empty tab to the layout
// POST /tab/create
func (h *TabHandler) Create(c *fiber.Ctx) error {
	var req CreateTabRequest
	if !parseBody(c, &req) {
		return nil
	}

	formatted, err := h.layoutService.CreateTab(c.Context(), req.Name, req.Color)
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"formattedTab": formatted, "code": 201})
}

// GetAll lists every tab with its card ids
// POST /tab/getall
func (h *TabHandler) GetAll(c *fiber.Ctx) error {
	tabs, err := h.layoutService.GetAllTabs(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"tabs": tabs, "code": 200})
}

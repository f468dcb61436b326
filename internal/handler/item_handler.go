package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	layoutService service.LayoutService
}

func NewItemHandler(layoutService service.LayoutService) *ItemHandler {
	return &ItemHandler{layoutService: layoutService}
}

type CreateItemRequest struct {
	Name   string            `json:"name" validate:"required"`
	Price  float64           `json:"price" validate:"required,gt=0"`
	Image  string            `json:"image"`
	Props  map[string]string `json:"props"`
	Stock  int               `json:"stock" validate:"gte=0"`
	CardID string            `json:"cardId" validate:"omitempty,objectid"`
}

type UpdateItemRequest struct {
	ItemID string            `json:"itemId" validate:"required,objectid"`
	Name   string            `json:"name" validate:"required"`
	Price  float64           `json:"price" validate:"required,gt=0"`
	Image  string            `json:"image"`
	Props  map[string]string `json:"props"`
	Stock  int               `json:"stock" validate:"gte=0"`
}

// Create persists an item, optionally linking it onto a card
// POST /item/create
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var req CreateItemRequest
	if !parseBody(c, &req) {
		return nil
	}

	input := service.CreateItemInput{
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
		Props: req.Props,
		Stock: req.Stock,
	}
	if req.CardID != "" {
		cardID, err := model.ParseID(req.CardID)
		if err != nil {
			return fail(c, 400, "Id is not a valid ObjectId")
		}
		input.CardID = &cardID
	}

	formatted, err := h.layoutService.CreateItem(c.Context(), input)
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"formattedItem": formatted, "code": 201})
}

// Update replaces an item's details
// POST /item/update
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var req UpdateItemRequest
	if !parseBody(c, &req) {
		return nil
	}
	itemID, err := model.ParseID(req.ItemID)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}

	err = h.layoutService.UpdateItem(c.Context(), service.UpdateItemInput{
		ID:    itemID,
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
		Props: req.Props,
		Stock: req.Stock,
	})
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"updated": true, "code": 200})
}

package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	layoutService service.LayoutService
}

func NewCardHandler(layoutService service.LayoutService) *CardHandler {
	return &CardHandler{layoutService: layoutService}
}

type GetCardRequest struct {
	ID string `json:"id" validate:"required,objectid"`
}

type GetAllCardsRequest struct {
	TabID string `json:"tabId" validate:"required,objectid"`
}

type DimensionsRequest struct {
	X      *int `json:"x" validate:"required"`
	Y      *int `json:"y" validate:"required"`
	Width  *int `json:"width" validate:"required,gt=0"`
	Height *int `json:"height" validate:"required,gt=0"`
}

type CreateCardRequest struct {
	Name       string             `json:"name" validate:"required"`
	Color      string             `json:"color"`
	Dimensions *DimensionsRequest `json:"dimensions" validate:"required"`
	TabID      string             `json:"tabId" validate:"required,objectid"`
	Static     bool               `json:"static"`
}

type ModifyPositionRequest struct {
	CardID string `json:"cardId" validate:"required,objectid"`
	X      *int   `json:"x" validate:"required"`
	Y      *int   `json:"y" validate:"required"`
	Width  *int   `json:"width" validate:"required,gt=0"`
	Height *int   `json:"height" validate:"required,gt=0"`
	Static *bool  `json:"static" validate:"required"`
}

type UpdateCardRequest struct {
	CardID string `json:"cardId" validate:"required,objectid"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

type DeleteCardRequest struct {
	CardID string `json:"cardId" validate:"required,objectid"`
	TabID  string `json:"tabId" validate:"required,objectid"`
}

// Get returns a card by id
// POST /card/get
func (h *CardHandler) Get(c *fiber.Ctx) error {
	var req GetCardRequest
	if !parseBody(c, &req) {
		return nil
	}
	id, err := model.ParseID(req.ID)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}

	formatted, err := h.layoutService.GetCard(c.Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"formattedCard": formatted, "code": 200})
}

// GetAll returns every card on a tab with its items resolved
// POST /card/getall
func (h *CardHandler) GetAll(c *fiber.Ctx) error {
	var req GetAllCardsRequest
	if !parseBody(c, &req) {
		return nil
	}
	tabID, err := model.ParseID(req.TabID)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}

	cards, err := h.layoutService.GetAllCards(c.Context(), tabID)
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"cards": cards, "code": 200})
}

// Create persists a card and appends it to its tab
// POST /card/create
func (h *CardHandler) Create(c *fiber.Ctx) error {
	var req CreateCardRequest
	if !parseBody(c, &req) {
		return nil
	}
	tabID, err := model.ParseID(req.TabID)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}

	formatted, err := h.layoutService.CreateCard(c.Context(), service.CreateCardInput{
		Name:  req.Name,
		Color: req.Color,
		Dimensions: model.Dimensions{
			X:      *req.Dimensions.X,
			Y:      *req.Dimensions.Y,
			Width:  *req.Dimensions.Width,
			Height: *req.Dimensions.Height,
		},
		Static: req.Static,
		TabID:  tabID,
	})
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"formattedCard": formatted, "code": 201})
}

// ModifyPosition moves/resizes a card on the layout grid
// POST /card/modifyposition
func (h *CardHandler) ModifyPosition(c *fiber.Ctx) error {
	var req ModifyPositionRequest
	if !parseBody(c, &req) {
		return nil
	}
	cardID, err := model.ParseID(req.CardID)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}

	dims := model.Dimensions{X: *req.X, Y: *req.Y, Width: *req.Width, Height: *req.Height}
	if err := h.layoutService.ModifyPosition(c.Context(), cardID, dims, *req.Static); err != nil {
		return failErr(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"updated": true, "code": 200})
}

// Update sets a card's name and color
// POST /card/update
func (h *CardHandler) Update(c *fiber.Ctx) error {
	var req UpdateCardRequest
	if !parseBody(c, &req) {
		return nil
	}
	cardID, err := model.ParseID(req.CardID)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}

	if err := h.layoutService.UpdateCard(c.Context(), cardID, req.Name, req.Color); err != nil {
		return failErr(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"updated": true, "code": 200})
}

// Delete removes a card, its items, and the tab's reference to it
// POST /card/delete
func (h *CardHandler) Delete(c *fiber.Ctx) error {
	var req DeleteCardRequest
	if !parseBody(c, &req) {
		return nil
	}
	cardID, err := model.ParseID(req.CardID)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}
	tabID, err := model.ParseID(req.TabID)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}

	if err := h.layoutService.DeleteCard(c.Context(), cardID, tabID); err != nil {
		return failErr(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"deleted": true, "code": 200})
}

package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	transactionService service.TransactionService
}

func NewTransactionHandler(transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

type TransactionLineRequest struct {
	ID       string `json:"id" validate:"required,objectid"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type CreateTransactionRequest struct {
	EmployeeID string                   `json:"employeeId" validate:"required,objectid"`
	TillID     string                   `json:"tillId" validate:"required,objectid"`
	Items      []TransactionLineRequest `json:"items" validate:"required,min=1,dive"`
	Price      float64                  `json:"price" validate:"required,gt=0"`
}

type GetTransactionRequest struct {
	TransactionID string `json:"transactionId" validate:"required,objectid"`
}

// Create records a sale against a till
// POST /transaction/create
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req CreateTransactionRequest
	if !parseBody(c, &req) {
		return nil
	}

	employeeID, err := model.ParseID(req.EmployeeID)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}
	tillID, err := model.ParseID(req.TillID)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}

	lines := make([]model.TransactionLine, 0, len(req.Items))
	for _, item := range req.Items {
		id, err := model.ParseID(item.ID)
		if err != nil {
			return fail(c, 400, "Id is not a valid ObjectId")
		}
		lines = append(lines, model.TransactionLine{ID: id, Quantity: item.Quantity})
	}

	formatted, err := h.transactionService.Create(c.Context(), service.CreateTransactionInput{
		EmployeeID: employeeID,
		TillID:     tillID,
		Items:      lines,
		Price:      req.Price,
	})
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"formattedTransaction": formatted, "code": 201})
}

// Get returns a transaction enriched with employee and item details
// POST /transaction/get
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	var req GetTransactionRequest
	if !parseBody(c, &req) {
		return nil
	}
	transactionID, err := model.ParseID(req.TransactionID)
	if err != nil {
		return fail(c, 400, "Id is not a valid ObjectId")
	}

	detail, err := h.transactionService.Get(c.Context(), transactionID)
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"formattedTransaction": detail, "code": 200})
}

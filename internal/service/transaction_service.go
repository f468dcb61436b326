package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransactionService interface {
	Create(ctx context.Context, input CreateTransactionInput) (*model.FormattedTransaction, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.TransactionDetail, error)
}

type CreateTransactionInput struct {
	EmployeeID primitive.ObjectID
	TillID     primitive.ObjectID
	Items      []model.TransactionLine
	Price      float64
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	tillRepo        repository.TillRepository
	employeeRepo    repository.EmployeeRepository
	itemRepo        repository.ItemRepository
	store           repository.Store
	wsHub           *ws.Hub
}

func NewTransactionService(transactionRepo repository.TransactionRepository, tillRepo repository.TillRepository, employeeRepo repository.EmployeeRepository, itemRepo repository.ItemRepository, store repository.Store, hub *ws.Hub) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		tillRepo:        tillRepo,
		employeeRepo:    employeeRepo,
		itemRepo:        itemRepo,
		store:           store,
		wsHub:           hub,
	}
}

// Create records a sale on a till. Every check (till exists, employee exists
// and staffs the till, each item exists with a positive quantity) runs before
// anything is written; the transaction insert and the till update then commit
// together.
func (s *transactionService) Create(ctx context.Context, input CreateTransactionInput) (*model.FormattedTransaction, error) {
	till, err := s.tillRepo.FindByID(ctx, input.TillID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Till not found")
		}
		return nil, Internal("Internal Server Error")
	}

	employee, err := s.employeeRepo.FindByID(ctx, input.EmployeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Employee not found")
		}
		return nil, Internal("Internal Server Error")
	}
	if !till.HasEmployee(employee.Email) {
		return nil, Unauthorized("Unauthorized to create Transactions for Till")
	}

	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, BadRequest(fmt.Sprintf("Invalid quantity for item %s", line.ID.Hex()))
		}
		if _, err := s.itemRepo.FindByID(ctx, line.ID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, NotFound("Item not found")
			}
			return nil, Internal("Internal Server Error")
		}
	}

	transaction := &model.Transaction{
		EmployeeID: input.EmployeeID,
		Items:      input.Items,
		Price:      input.Price,
		Date:       time.Now(),
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.transactionRepo.Create(ctx, transaction); err != nil {
			return err
		}
		return s.tillRepo.AddTransaction(ctx, input.TillID, transaction.ID)
	})
	if err != nil {
		return nil, Internal("Internal Server Error")
	}

	s.broadcastSale(transaction, employee.Email, input.TillID)
	formatted := transaction.ToFormatted()
	return &formatted, nil
}

// Get resolves a transaction and joins in the employee summary and each
// line's item name and price.
func (s *transactionService) Get(ctx context.Context, id primitive.ObjectID) (*model.TransactionDetail, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Transaction not found")
		}
		return nil, Internal("Internal Server Error")
	}

	employee, err := s.employeeRepo.FindByID(ctx, transaction.EmployeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Employee not found")
		}
		return nil, Internal("Internal Server Error")
	}

	lines := make([]model.TransactionLineDetail, 0, len(transaction.Items))
	for _, line := range transaction.Items {
		item, err := s.itemRepo.FindByID(ctx, line.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, NotFound("Item not found")
			}
			return nil, Internal("Internal Server Error")
		}
		lines = append(lines, model.TransactionLineDetail{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: line.Quantity,
		})
	}

	return &model.TransactionDetail{
		ID:       transaction.ID,
		Employee: employee.ToFormatted(),
		Items:    lines,
		Price:    transaction.Price,
		Date:     transaction.Date.Format(time.RFC1123),
	}, nil
}

func (s *transactionService) broadcastSale(t *model.Transaction, employeeEmail string, tillID primitive.ObjectID) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type": "sale_recorded",
			"transaction": map[string]interface{}{
				"id":     t.ID.Hex(),
				"price":  t.Price,
				"tillId": tillID.Hex(),
				"date":   t.Date,
			},
			"employee": employeeEmail,
			"message":  fmt.Sprintf("%s recorded a sale of %.2f", employeeEmail, t.Price),
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}

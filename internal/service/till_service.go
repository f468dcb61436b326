package service

import (
	"context"
	"errors"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TillService manages tills and the employees that staff them.
type TillService interface {
	Create(ctx context.Context, ownerEmail string, attach bool) (*model.FormattedTill, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.FormattedTill, error)
	AddEmployees(ctx context.Context, tillID primitive.ObjectID, emails []string) (*model.FormattedTill, error)
	CreateEmployee(ctx context.Context, email string, isManager bool) (*model.FormattedEmployee, error)
}

type tillService struct {
	tillRepo     repository.TillRepository
	employeeRepo repository.EmployeeRepository
	businessRepo repository.BusinessRepository
	userRepo     repository.UserRepository
	store        repository.Store
}

func NewTillService(tillRepo repository.TillRepository, employeeRepo repository.EmployeeRepository, businessRepo repository.BusinessRepository, userRepo repository.UserRepository, store repository.Store) TillService {
	return &tillService{
		tillRepo:     tillRepo,
		employeeRepo: employeeRepo,
		businessRepo: businessRepo,
		userRepo:     userRepo,
		store:        store,
	}
}

// Create adds an empty till. With attach set, the till is also appended to
// the caller's business in the same transaction.
func (s *tillService) Create(ctx context.Context, ownerEmail string, attach bool) (*model.FormattedTill, error) {
	till := &model.Till{
		Employees:    []string{},
		Transactions: []primitive.ObjectID{},
	}

	if !attach {
		if err := s.tillRepo.Create(ctx, till); err != nil {
			return nil, Internal("Internal Server Error")
		}
		formatted := till.ToFormatted()
		return &formatted, nil
	}

	owner, err := s.userRepo.FindByEmail(ctx, ownerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Forbidden("User does not exist")
		}
		return nil, Internal("Error finding user from jwt")
	}
	business, err := s.businessRepo.FindByOwner(ctx, owner.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Business does not exist")
		}
		return nil, Internal("Internal Server Error")
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.tillRepo.Create(ctx, till); err != nil {
			return err
		}
		return s.businessRepo.AddTill(ctx, business.ID, till.ID)
	})
	if err != nil {
		return nil, Internal("Internal Server Error")
	}

	formatted := till.ToFormatted()
	return &formatted, nil
}

func (s *tillService) Get(ctx context.Context, id primitive.ObjectID) (*model.FormattedTill, error) {
	till, err := s.tillRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Till not found")
		}
		return nil, Internal("Internal Server Error")
	}
	formatted := till.ToFormatted()
	return &formatted, nil
}

// AddEmployees unions known employee emails onto the till's staff list.
func (s *tillService) AddEmployees(ctx context.Context, tillID primitive.ObjectID, emails []string) (*model.FormattedTill, error) {
	employees, err := s.employeeRepo.FindByEmails(ctx, emails)
	if err != nil {
		return nil, Internal("Internal Server Error")
	}
	if len(employees) != len(uniqueStrings(emails)) {
		return nil, BadRequest("Unable to find employee(s)")
	}

	till, err := s.tillRepo.AddEmployees(ctx, tillID, emails)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Till not found")
		}
		return nil, Internal("Internal Server Error")
	}
	formatted := till.ToFormatted()
	return &formatted, nil
}

func (s *tillService) CreateEmployee(ctx context.Context, email string, isManager bool) (*model.FormattedEmployee, error) {
	_, err := s.employeeRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, Forbidden("Employee already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, Internal("Internal Server Error")
	}

	employee := &model.Employee{Email: email, IsManager: isManager}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, Internal("Internal Server Error")
	}
	formatted := employee.ToFormatted()
	return &formatted, nil
}

func uniqueStrings(ss []string) []string {
	seen := make(map[string]struct{}, len(ss))
	out := ss[:0:0]
	for _, s := range ss {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

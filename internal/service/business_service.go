package service

import (
	"context"
	"errors"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BusinessService interface {
	Create(ctx context.Context, ownerEmail string, input CreateBusinessInput) (*model.FormattedBusiness, error)
	GetByOwner(ctx context.Context, ownerEmail string) (*model.FormattedBusiness, error)
	Edit(ctx context.Context, ownerEmail, name, businessType string) (*model.FormattedBusiness, error)
	AddAdmins(ctx context.Context, name string, adminIDs []primitive.ObjectID) (*model.FormattedBusiness, error)
	Tills(ctx context.Context, ownerEmail string) ([]model.FormattedTill, error)
	EditTills(ctx context.Context, ownerEmail string, tillIDs []primitive.ObjectID) (*model.FormattedBusiness, error)
}

type CreateBusinessInput struct {
	Name string
	Type string
}

type businessService struct {
	businessRepo repository.BusinessRepository
	userRepo     repository.UserRepository
	tillRepo     repository.TillRepository
	store        repository.Store
}

func NewBusinessService(businessRepo repository.BusinessRepository, userRepo repository.UserRepository, tillRepo repository.TillRepository, store repository.Store) BusinessService {
	return &businessService{
		businessRepo: businessRepo,
		userRepo:     userRepo,
		tillRepo:     tillRepo,
		store:        store,
	}
}

// Create persists the business and links it to its owner in one transaction,
// so a failed user update cannot leave an unowned business behind.
func (s *businessService) Create(ctx context.Context, ownerEmail string, input CreateBusinessInput) (*model.FormattedBusiness, error) {
	owner, err := s.findOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	if owner.BusinessID != nil {
		return nil, Forbidden("User has a business ID")
	}

	if _, err := s.businessRepo.FindByName(ctx, input.Name); err == nil {
		return nil, Forbidden("Business already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, Internal("Internal server error")
	}

	business := &model.Business{
		Name:    input.Name,
		OwnerID: owner.ID,
		Type:    input.Type,
		Admins:  []primitive.ObjectID{},
		Tills:   []primitive.ObjectID{},
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.businessRepo.Create(ctx, business); err != nil {
			return err
		}
		return s.userRepo.SetBusinessID(ctx, owner.ID, business.ID)
	})
	if err != nil {
		return nil, Internal("Error saving Business")
	}

	formatted := business.ToFormatted()
	return &formatted, nil
}

func (s *businessService) GetByOwner(ctx context.Context, ownerEmail string) (*model.FormattedBusiness, error) {
	business, err := s.findByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	formatted := business.ToFormatted()
	return &formatted, nil
}

func (s *businessService) Edit(ctx context.Context, ownerEmail, name, businessType string) (*model.FormattedBusiness, error) {
	business, err := s.findByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	// A rename may not collide with another business's name; keeping the
	// current name is allowed.
	if dup, err := s.businessRepo.FindByName(ctx, name); err == nil {
		if dup.ID != business.ID {
			return nil, Forbidden("Business already exists")
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, Internal("Internal server error")
	}

	updated, err := s.businessRepo.UpdateNameType(ctx, business.ID, name, businessType)
	if err != nil {
		return nil, Internal("Internal server error")
	}
	formatted := updated.ToFormatted()
	return &formatted, nil
}

// AddAdmins unions the requested user ids into the admin list. Every id must
// belong to an existing user; ids already present are ignored, so repeated
// requests are idempotent.
func (s *businessService) AddAdmins(ctx context.Context, name string, adminIDs []primitive.ObjectID) (*model.FormattedBusiness, error) {
	users, err := s.userRepo.FindByIDs(ctx, adminIDs)
	if err != nil {
		return nil, Internal("Internal server error")
	}
	if len(users) != len(uniqueIDs(adminIDs)) {
		return nil, BadRequest("Unable to find admin(s)")
	}

	business, err := s.businessRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Business does not exist")
		}
		return nil, Internal("Internal server error")
	}

	updated, err := s.businessRepo.AddAdmins(ctx, business.ID, adminIDs)
	if err != nil {
		return nil, Internal("Unable to update businesses admins")
	}
	formatted := updated.ToFormatted()
	return &formatted, nil
}

func (s *businessService) Tills(ctx context.Context, ownerEmail string) ([]model.FormattedTill, error) {
	business, err := s.findByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	tills, err := s.tillRepo.FindByIDs(ctx, business.Tills)
	if err != nil {
		return nil, Internal("Internal server error")
	}

	formatted := make([]model.FormattedTill, 0, len(tills))
	for i := range tills {
		formatted = append(formatted, tills[i].ToFormatted())
	}
	return formatted, nil
}

func (s *businessService) EditTills(ctx context.Context, ownerEmail string, tillIDs []primitive.ObjectID) (*model.FormattedBusiness, error) {
	business, err := s.findByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	tills, err := s.tillRepo.FindByIDs(ctx, tillIDs)
	if err != nil {
		return nil, Internal("Internal server error")
	}
	if len(tills) != len(uniqueIDs(tillIDs)) {
		return nil, BadRequest("Unable to find till(s)")
	}

	updated, err := s.businessRepo.SetTills(ctx, business.ID, tillIDs)
	if err != nil {
		return nil, Internal("Internal server error")
	}
	formatted := updated.ToFormatted()
	return &formatted, nil
}

func (s *businessService) findOwner(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Forbidden("User does not exist")
		}
		return nil, Internal("Error finding user from jwt")
	}
	return user, nil
}

func (s *businessService) findByOwner(ctx context.Context, ownerEmail string) (*model.Business, error) {
	owner, err := s.findOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	business, err := s.businessRepo.FindByOwner(ctx, owner.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Business does not exist")
		}
		return nil, Internal("Unable to get business")
	}
	return business, nil
}

func uniqueIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

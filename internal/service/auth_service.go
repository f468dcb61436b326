package service

import (
	"context"
	"errors"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/jwt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, input RegisterInput) error
	HasBusiness(ctx context.Context, email string) (bool, error)
	Name(ctx context.Context, email string) (*model.FormattedUser, error)
	ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error
}

// RegisterInput carries a validated registration request. BusinessID stays
// nil for a fresh account and is only set when seeding linked accounts.
type RegisterInput struct {
	Fname      string
	Lname      string
	Email      string
	Password   string
	BusinessID *primitive.ObjectID
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login checks credentials and issues a signed token. Unknown email and wrong
// password return the same message so emails cannot be enumerated.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", BadRequest("Invalid email or password")
		}
		return "", Internal("Error finding user")
	}

	if !user.CheckPassword(password) {
		return "", BadRequest("Invalid email or password")
	}

	token, err := jwt.GenerateToken(user.Email, user.Fname, user.Lname)
	if err != nil {
		return "", Internal("Internal server error")
	}
	return "Bearer " + token, nil
}

func (s *authService) Register(ctx context.Context, input RegisterInput) error {
	_, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return Forbidden("User already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return Internal("Error attempting to check if user exists")
	}

	user := &model.User{
		Fname:      input.Fname,
		Lname:      input.Lname,
		Email:      input.Email,
		BusinessID: input.BusinessID,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return Internal("Internal server error")
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return Internal("Internal server error")
	}
	return nil
}

// HasBusiness reports whether the authenticated user has a linked business.
func (s *authService) HasBusiness(ctx context.Context, email string) (bool, error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return false, err
	}
	return user.BusinessID != nil, nil
}

func (s *authService) Name(ctx context.Context, email string) (*model.FormattedUser, error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return nil, err
	}
	formatted := user.ToFormatted()
	return &formatted, nil
}

func (s *authService) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return err
	}

	if !user.CheckPassword(oldPassword) {
		return Forbidden("Invalid password")
	}

	if err := user.SetPassword(newPassword); err != nil {
		return Internal("Internal server error")
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, user.Password); err != nil {
		return Internal("Internal server error")
	}
	return nil
}

// findUser resolves the token's user record. A valid token whose user was
// deleted surfaces as 403, matching the /user route contract.
func (s *authService) findUser(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Forbidden("User does not exist")
		}
		return nil, Internal("Error finding user")
	}
	return user, nil
}

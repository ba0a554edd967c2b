package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Common errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Service handles user business logic
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService creates a new user service with repository dependency injected
func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// List retrieves all users
func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// Create validates the request and creates a new user.
// Name and email are trimmed; blank values are rejected with ErrInvalidInput.
func (s *Service) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	clean := &CreateUserRequest{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
	}

	if err := s.validate.StructCtx(ctx, clean); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, describe(err))
	}

	return s.repo.Create(ctx, clean)
}

// Delete removes a user
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

// describe turns validator errors into "name is required, email is required".
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, strings.ToLower(fe.Field())+" is "+fe.Tag())
	}
	return strings.Join(msgs, ", ")
}

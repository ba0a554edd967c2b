package user

import (
	"context"
	"errors"
	"testing"
)

func TestService_Create_TrimsAndPersists(t *testing.T) {
	repo := newMemoryRepository()
	svc := NewService(repo)

	u, err := svc.Create(context.Background(), &CreateUserRequest{Name: "  Jane Smith ", Email: " jane@example.com"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if u.Name != "Jane Smith" || u.Email != "jane@example.com" {
		t.Errorf("expected trimmed fields, got %q / %q", u.Name, u.Email)
	}
	if u.ID == 0 {
		t.Error("expected assigned ID")
	}
}

func TestService_Create_RejectsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  CreateUserRequest
	}{
		{"empty name", CreateUserRequest{Email: "a@example.com"}},
		{"empty email", CreateUserRequest{Name: "A"}},
		{"blank name", CreateUserRequest{Name: "   ", Email: "a@example.com"}},
		{"both empty", CreateUserRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepository()
			svc := NewService(repo)

			_, err := svc.Create(context.Background(), &tt.req)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if repo.calls != 0 {
				t.Errorf("repository called %d times, want 0", repo.calls)
			}
		})
	}
}

func TestService_Create_DuplicatesAllowed(t *testing.T) {
	svc := NewService(newMemoryRepository())
	ctx := context.Background()

	first, err := svc.Create(ctx, &CreateUserRequest{Name: "Dup", Email: "dup@example.com"})
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}
	second, err := svc.Create(ctx, &CreateUserRequest{Name: "Dup", Email: "dup@example.com"})
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("expected distinct IDs, both %d", first.ID)
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := NewService(newMemoryRepository())

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

package user

import (
	"errors"
	"strings"
	"testing"
)

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	created, err := svc.Register(User{Name: "Admin", Email: "admin@hidestyle.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Password == "password123" || !strings.HasPrefix(created.Password, "$2") {
		t.Fatal("password must be stored as a bcrypt hash")
	}
	if created.Role != RoleCustomer {
		t.Fatalf("expected default role, got %q", created.Role)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	if _, err := svc.Register(User{Email: "admin@hidestyle.com", Password: "x"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(User{Email: "Admin@Hidestyle.com", Password: "y"}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	if _, err := svc.Register(User{Email: "admin@hidestyle.com", Password: "password123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Authenticate("admin@hidestyle.com", "password123"); err != nil {
		t.Fatalf("expected successful login, got %v", err)
	}
	if _, err := svc.Authenticate("admin@hidestyle.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@hidestyle.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	svc := NewService(repo)

	if err := svc.EnsureAdmin("admin@hidestyle.com", "password123"); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}
	seeded, err := repo.GetByEmail("admin@hidestyle.com")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if seeded.Role != RoleAdmin {
		t.Fatalf("expected admin role, got %q", seeded.Role)
	}

	// second call is a no-op
	if err := svc.EnsureAdmin("admin@hidestyle.com", "password123"); err != nil {
		t.Fatalf("repeat ensure admin: %v", err)
	}

	// blank config skips seeding
	if err := svc.EnsureAdmin("", ""); err != nil {
		t.Fatalf("blank ensure admin: %v", err)
	}
}

package service

import (
	"errors"
	"testing"

	"github.com/hance08/cybank/internal/store"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())

	user, err := svc.User.Register("juan", "secret1", "  Juan Dela Cruz ", "juan@example.com")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash == "secret1" || user.PasswordHash == "" {
		t.Errorf("password stored as %q, want a hash", user.PasswordHash)
	}
	if user.FullName != "Juan Dela Cruz" {
		t.Errorf("full name = %q, want trimmed", user.FullName)
	}

	got, err := svc.User.Authenticate("juan", "secret1")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated %s, want %s", got.ID, user.ID)
	}

	if _, err := svc.User.Authenticate("juan", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.User.Authenticate("maria", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterRejectsDuplicatesAndBadInput(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())

	if _, err := svc.User.Register("juan", "secret1", "Juan", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.User.Register("juan", "secret2", "Other Juan", ""); !errors.Is(err, store.ErrUserExists) {
		t.Errorf("duplicate err = %v, want ErrUserExists", err)
	}

	bad := []struct {
		username, password, fullName, email string
	}{
		{"ju", "secret1", "Juan", ""},
		{"maria", "123", "Maria", ""},
		{"maria", "secret1", "M", ""},
		{"maria", "secret1", "Maria", "not-an-email"},
	}
	for _, in := range bad {
		if _, err := svc.User.Register(in.username, in.password, in.fullName, in.email); err == nil {
			t.Errorf("Register(%+v) expected validation error", in)
		}
	}
}

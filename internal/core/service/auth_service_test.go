package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/token"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) { return u, nil }
func (r *stubUserRepo) Update(context.Context, *domain.User) error                     { return nil }
func (r *stubUserRepo) FindByID(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubUserRepo) List(context.Context) ([]domain.User, error)                  { return nil, nil }
func (r *stubUserRepo) ListByBranch(context.Context, string) ([]domain.User, error)  { return nil, nil }
func (r *stubUserRepo) ListByRole(context.Context, string) ([]domain.User, error)    { return nil, nil }
func (r *stubUserRepo) SetPasswordHash(context.Context, string, string) error        { return nil }

func repoWithUser(t *testing.T, password string) *stubUserRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing: %v", err)
	}
	return &stubUserRepo{users: map[string]*domain.User{
		"sara@example.com": {
			ID:                  "u-77",
			FirstName:           "Sara",
			LastName:            "Mostafa",
			Email:               "sara@example.com",
			PasswordHash:        string(hash),
			Role:                "manager",
			BranchID:            "br-2",
			NotificationEnabled: true,
			Permissions:         []string{domain.PermCustomersCreate},
		},
	}}
}

func TestLoginIssuesDecodableToken(t *testing.T) {
	svc := NewAuthService(repoWithUser(t, "s3cret-pw"), "signing-secret", time.Hour)

	signed, user, err := svc.Login(context.Background(), "sara@example.com", "s3cret-pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != "u-77" {
		t.Fatalf("user = %+v", user)
	}

	// The issued credential must round-trip through the client-side decoder.
	sess := token.Decode(signed)
	if sess == nil {
		t.Fatal("issued token is not decodable")
	}
	if sess.UserID != "u-77" || sess.Role != "manager" || sess.BranchID != "br-2" {
		t.Errorf("decoded session = %+v", sess)
	}
	if sess.FullName != "Sara Mostafa" {
		t.Errorf("FullName = %q", sess.FullName)
	}
	if !sess.NotificationEnabled {
		t.Error("NotificationEnabled lost in transit")
	}
	if !sess.HasPermission(domain.PermCustomersCreate) {
		t.Errorf("permissions lost: %v", sess.Permissions)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(repoWithUser(t, "right"), "signing-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "sara@example.com", "wrong")
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(repoWithUser(t, "pw"), "signing-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	if err != domain.ErrUserNotFound {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestLoginEmptyInputs(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, "signing-secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "pw"); err != domain.ErrInvalidCredentials {
		t.Fatalf("empty email: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.c", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("empty password: %v", err)
	}
}

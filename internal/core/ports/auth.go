package ports

import (
	"context"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

// AuthService authenticates operators and issues bearer credentials.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// UserRepository defines persistence operations for operator accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByBranch(ctx context.Context, branchID string) ([]domain.User, error)
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	SetPasswordHash(ctx context.Context, id, hash string) error
}

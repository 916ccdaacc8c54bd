package ports

import (
	"context"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

// RoleService defines role and permission use cases.
type RoleService interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	ListAll(ctx context.Context) ([]domain.Role, error)
	Permissions(ctx context.Context) []string
	GrantPermission(ctx context.Context, userID, permission string) error
	RevokePermission(ctx context.Context, userID, permission string) error
	UserPermissions(ctx context.Context, userID string) ([]string, error)
}

// RoleRepository defines persistence operations for roles.
type RoleRepository interface {
	Insert(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
}

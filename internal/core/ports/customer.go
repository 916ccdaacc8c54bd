package ports

import (
	"context"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

// CustomerService defines the customer use cases. List operations return the
// whole collection: filtering and pagination happen client-side over the
// full dataset.
type CustomerService interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context, branchID string) ([]domain.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	AddComment(ctx context.Context, comment *domain.CustomerComment) error
	Comments(ctx context.Context, customerID string) ([]domain.CustomerComment, error)
}

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	Insert(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	List(ctx context.Context, branchID string) ([]domain.Customer, error)
	InsertComment(ctx context.Context, comment *domain.CustomerComment) error
	ListComments(ctx context.Context, customerID string) ([]domain.CustomerComment, error)
}

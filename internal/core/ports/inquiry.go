package ports

import (
	"context"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

// InquiryService defines the inquiry use cases.
type InquiryService interface {
	Create(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error)
	ListAll(ctx context.Context, branchID string) ([]domain.Inquiry, error)
	Workscopes(ctx context.Context) ([]string, error)
}

// InquiryRepository defines persistence operations for inquiries.
type InquiryRepository interface {
	Insert(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error)
	List(ctx context.Context, branchID string) ([]domain.Inquiry, error)
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/ports"
)

// CustomerService implements the customer use cases on top of the
// repository. Business rules are deliberately thin: lifecycle and
// escalation decisions belong to the operators, not this service.
type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if c.ContactStatus == "" {
		c.ContactStatus = domain.StatusNeedToContact
	}
	c.CreatedDate = time.Now().UTC()

	created, err := s.repo.Insert(ctx, c)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create customer")
		return nil, err
	}

	s.logger.Info().Str("customer_id", created.ID).Str("branch_id", created.BranchID).Msg("customer created")
	return created, nil
}

func (s *CustomerService) Update(ctx context.Context, c *domain.Customer) error {
	if _, err := s.repo.FindByID(ctx, c.ID); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error().Err(err).Str("customer_id", c.ID).Msg("failed to update customer")
		return err
	}
	return nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("customer_id", id).Msg("failed to delete customer")
		return err
	}
	s.logger.Info().Str("customer_id", id).Msg("customer deleted")
	return nil
}

// ListAll returns the entire customer collection, optionally scoped to a
// branch. Pagination is a client concern.
func (s *CustomerService) ListAll(ctx context.Context, branchID string) ([]domain.Customer, error) {
	return s.repo.List(ctx, branchID)
}

func (s *CustomerService) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	return s.repo.FindByPhone(ctx, phone)
}

func (s *CustomerService) AddComment(ctx context.Context, comment *domain.CustomerComment) error {
	if _, err := s.repo.FindByID(ctx, comment.CustomerID); err != nil {
		return err
	}
	comment.CreatedDate = time.Now().UTC()
	return s.repo.InsertComment(ctx, comment)
}

func (s *CustomerService) Comments(ctx context.Context, customerID string) ([]domain.CustomerComment, error) {
	return s.repo.ListComments(ctx, customerID)
}

package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/ports"
)

// defaultWorkscopes is the catalogue offered when building an inquiry.
var defaultWorkscopes = []string{
	"Joinery", "Flooring", "Painting", "Electrical", "Plumbing",
	"Gypsum", "Landscaping", "Full Fit-Out",
}

type InquiryService struct {
	repo   ports.InquiryRepository
	logger zerolog.Logger
}

func NewInquiryService(repo ports.InquiryRepository, logger zerolog.Logger) *InquiryService {
	return &InquiryService{repo: repo, logger: logger}
}

func (s *InquiryService) Create(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error) {
	inq.Code = generateInquiryCode()
	inq.CreatedDate = time.Now().UTC()
	if inq.StatusName == "" {
		inq.StatusName = "Open"
	}

	created, err := s.repo.Insert(ctx, inq)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create inquiry")
		return nil, err
	}

	s.logger.Info().Str("inquiry_code", created.Code).Str("customer", created.CustomerName).Msg("inquiry created")
	return created, nil
}

func (s *InquiryService) ListAll(ctx context.Context, branchID string) ([]domain.Inquiry, error) {
	return s.repo.List(ctx, branchID)
}

func (s *InquiryService) Workscopes(_ context.Context) ([]string, error) {
	out := make([]string, len(defaultWorkscopes))
	copy(out, defaultWorkscopes)
	return out, nil
}

// generateInquiryCode returns a code in the format INQ-XXXXXXXX.
func generateInquiryCode() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("INQ-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("INQ-%08X", b)
}

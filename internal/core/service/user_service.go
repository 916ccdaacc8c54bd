package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/ports"
)

// CreateUserInput carries a new operator account with its plain password.
type CreateUserInput struct {
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	Password            string
	Role                string
	BranchID            string
	NotificationEnabled bool
	Permissions         []string
}

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Email:               in.Email,
		Phone:               in.Phone,
		PasswordHash:        string(hash),
		Role:                in.Role,
		BranchID:            in.BranchID,
		NotificationEnabled: in.NotificationEnabled,
		Permissions:         in.Permissions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, user *domain.User) error {
	existing, err := s.repo.FindByID(ctx, user.ID)
	if err != nil {
		return err
	}
	user.PasswordHash = existing.PasswordHash
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, user)
}

func (s *UserService) ResetPassword(ctx context.Context, userID, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidCredentials
	}
	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.SetPasswordHash(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("password reset")
	return nil
}

func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) ListByBranch(ctx context.Context, branchID string) ([]domain.User, error) {
	return s.repo.ListByBranch(ctx, branchID)
}

func (s *UserService) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	return s.repo.ListByRole(ctx, role)
}

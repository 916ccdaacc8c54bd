package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/ports"
)

type RoleService struct {
	roles  ports.RoleRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, users ports.UserRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, users: users, logger: logger}
}

func (s *RoleService) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	if existing, err := s.roles.FindByName(ctx, role.Name); err == nil && existing != nil {
		return nil, domain.ErrRoleExists
	}

	role.CreatedAt = time.Now().UTC()
	created, err := s.roles.Insert(ctx, role)
	if err != nil {
		s.logger.Error().Err(err).Str("role", role.Name).Msg("failed to create role")
		return nil, err
	}

	s.logger.Info().Str("role", created.Name).Msg("role created")
	return created, nil
}

func (s *RoleService) ListAll(ctx context.Context) ([]domain.Role, error) {
	return s.roles.List(ctx)
}

func (s *RoleService) Permissions(_ context.Context) []string {
	return domain.AllPermissions()
}

// GrantPermission adds a capability to the user's claim set. The change
// takes effect in the token on the user's next login.
func (s *RoleService) GrantPermission(ctx context.Context, userID, permission string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	for _, p := range user.Permissions {
		if p == permission {
			return nil
		}
	}
	user.Permissions = append(user.Permissions, permission)
	return s.users.Update(ctx, user)
}

func (s *RoleService) RevokePermission(ctx context.Context, userID, permission string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	kept := user.Permissions[:0]
	for _, p := range user.Permissions {
		if p != permission {
			kept = append(kept, p)
		}
	}
	user.Permissions = kept
	return s.users.Update(ctx, user)
}

func (s *RoleService) UserPermissions(ctx context.Context, userID string) ([]string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Permissions, nil
}

package service

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/ports"
	"github.com/mhd-interiors/crm-console/internal/core/token"
)

// AuthService implements login and token issuance.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return signed, user, nil
}

// generateToken signs a credential carrying the claim names the console has
// historically shipped: the role under the WS-2008 URI, the permission set
// under "Permission", and the notification flag as the string "true"/"false".
func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":                   user.ID,
		"Name":                  user.FullName(),
		"FirstName":             user.FirstName,
		"LastName":              user.LastName,
		"email":                 user.Email,
		"Phone":                 user.Phone,
		token.RoleClaimURI:      user.Role,
		"BranchId":              user.BranchID,
		"UserImageUrl":          user.ImageURL,
		"IsNotificationEnabled": strconv.FormatBool(user.NotificationEnabled),
		"Permission":            user.Permissions,
		"exp":                   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

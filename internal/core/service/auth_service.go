package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/acmecorp/invoicing-dashboard/internal/core/domain"
	"github.com/acmecorp/invoicing-dashboard/internal/core/ports"
)

// credentials is the required shape of a login submission, checked before any
// database lookup is attempted.
type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

var credentialValidator = validator.New()

// AuthService implements credential verification and session token issuance.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login verifies email and password and returns a signed session token.
// A malformed email, a short password, an unknown email and a wrong password
// all fail with the same domain.ErrInvalidCredentials; callers must not be
// able to distinguish a missing account from a bad password. A lookup outage
// is not a credential failure and propagates wrapped.
//
// bcrypt comparison is not constant-time across the found/not-found branches;
// accepted as a hardening gap rather than a behavioral requirement.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if err := credentialValidator.Struct(credentials{Email: email, Password: password}); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("fetch user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

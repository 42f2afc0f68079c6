package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"saasquatch/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type jwtService interface {
	GenerateToken(userID int64, email string) (string, error)
}

// Service contains all business logic for registration and login
type Service struct {
	users UserRepositoryInterface
	jwt   jwtService
}

func NewService(users UserRepositoryInterface, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	exists, err := s.users.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	requireContact := true
	if req.RequireContactInfo != nil {
		requireContact = *req.RequireContactInfo
	}

	user := &domain.User{
		Email:                  strings.ToLower(strings.TrimSpace(req.Email)),
		Username:               strings.TrimSpace(req.Username),
		PasswordHash:           string(hashed),
		LinkedinURL:            req.LinkedinURL,
		TargetIndustries:       req.TargetIndustries,
		MinEmployees:           req.MinEmployees,
		MaxEmployees:           req.MaxEmployees,
		MinRevenue:             req.MinRevenue,
		MaxRevenue:             req.MaxRevenue,
		BusinessTypePreference: req.BusinessTypePreference,
		RequireContactInfo:     requireContact,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password collapse into the same error so callers cannot tell which
// one occurred.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, "", err
	}
	user.LastLogin = &now

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

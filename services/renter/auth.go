package renter

import (
	"errors"
	"fmt"
	"time"

	renterRepo "rentride/database/repository/renter"
	"rentride/models"
	"rentride/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService authenticates renters and issues session tokens.
type AuthService interface {
	Register(input RegisterInput) (*models.Renter, string, error)
	Authenticate(email, password string) (*models.Renter, string, error)
}

// RegisterInput is the signup payload.
type RegisterInput struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"licenseNumber"`
	LicenseExpiry string `json:"licenseExpiry"`
}

// DefaultAuthService implements AuthService against the renter repository.
type DefaultAuthService struct {
	Repo     renterRepo.RenterRepository
	Logger   *zap.Logger
	TokenTTL time.Duration
}

// Register creates an account and returns it with a fresh token.
func (s *DefaultAuthService) Register(input RegisterInput) (*models.Renter, string, error) {
	if input.Email == "" || input.Password == "" {
		return nil, "", errors.New("email and password are required")
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("an account with email %s already exists", input.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	renter := &models.Renter{
		ID:            uuid.New().String(),
		Email:         input.Email,
		PasswordHash:  string(hash),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Phone:         input.Phone,
		LicenseNumber: input.LicenseNumber,
		LicenseExpiry: input.LicenseExpiry,
	}
	if err := s.Repo.Create(renter); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(renter.ID, renter.Email, s.tokenTTL())
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.Logger.Info("renter registered", zap.String("renterId", renter.ID))
	return renter, token, nil
}

// Authenticate verifies credentials and returns the account with a token.
func (s *DefaultAuthService) Authenticate(email, password string) (*models.Renter, string, error) {
	renter, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up account: %w", err)
	}
	if renter == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(renter.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(renter.ID, renter.Email, s.tokenTTL())
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return renter, token, nil
}

func (s *DefaultAuthService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

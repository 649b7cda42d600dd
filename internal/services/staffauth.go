package services

import (
	"context"
	"fmt"
	"strings"

	"visitorregistry/internal/domain"
)

type staffAuthService struct {
	staffEmail   string
	passwordHash string
	hasher       domain.PasswordHasher
	tokens       domain.TokenIssuer
}

// NewStaffAuthService creates a StaffAuthService that authenticates against
// the single staff account configured at process start. staffEmail and
// passwordHash come from config; when either is empty every login fails.
func NewStaffAuthService(staffEmail, passwordHash string, hasher domain.PasswordHasher, tokens domain.TokenIssuer) domain.StaffAuthService {
	return &staffAuthService{
		staffEmail:   strings.TrimSpace(strings.ToLower(staffEmail)),
		passwordHash: passwordHash,
		hasher:       hasher,
		tokens:       tokens,
	}
}

func (s *staffAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if s.staffEmail == "" || s.passwordHash == "" {
		return "", domain.ErrInvalidCredentials
	}
	if strings.TrimSpace(strings.ToLower(email)) != s.staffEmail {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(s.passwordHash, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.tokens.Issue("staff", s.staffEmail)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

package services

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"visitorregistry/internal/domain"
)

type registrationService struct {
	visitors domain.VisitorRepository
	emails   domain.EmailService
	logger   *slog.Logger
}

// NewRegistrationService creates a RegistrationService. visitors may be nil
// when the database connection string is not configured; every call then
// fails with domain.ErrNotConfigured. emails may be nil to disable
// confirmation emails.
func NewRegistrationService(visitors domain.VisitorRepository, emails domain.EmailService, logger *slog.Logger) domain.RegistrationService {
	return &registrationService{
		visitors: visitors,
		emails:   emails,
		logger:   logger,
	}
}

// validEmailAddress reports whether s is a bare RFC 5322 mailbox address.
// Syntax only; no deliverability check.
func validEmailAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Name == "" && addr.Address == s
}

func (s *registrationService) Register(ctx context.Context, sub domain.VisitorSubmission) (*domain.Visitor, error) {
	if s.visitors == nil {
		s.logger.ErrorContext(ctx, "registration rejected: visitor store not configured")
		return nil, domain.ErrNotConfigured
	}

	first := strings.TrimSpace(sub.FirstName)
	surname := strings.TrimSpace(sub.Surname)
	email := strings.TrimSpace(sub.Email)

	if first == "" || surname == "" || email == "" {
		s.logger.WarnContext(ctx, "registration rejected: missing required fields")
		return nil, domain.ErrMissingRequiredFields
	}
	if !validEmailAddress(email) {
		s.logger.WarnContext(ctx, "registration rejected: invalid email address")
		return nil, domain.ErrInvalidEmail
	}

	// Company is optional and stored as empty string, never NULL.
	visitor := &domain.Visitor{
		FirstName: first,
		Surname:   surname,
		Company:   sub.Company,
		Email:     email,
	}
	if err := s.visitors.Save(ctx, visitor); err != nil {
		s.logger.ErrorContext(ctx, "failed to save visitor", "err", err)
		return nil, &domain.StoreError{Op: "save visitor", Err: err}
	}
	s.logger.InfoContext(ctx, "visitor registered", "id", visitor.ID, "email", visitor.Email)

	// Best-effort confirmation: a send failure never changes the outcome.
	if s.emails != nil {
		data := &domain.RegistrationConfirmationData{
			Email:     visitor.Email,
			FirstName: visitor.FirstName,
			Surname:   visitor.Surname,
			Company:   visitor.Company,
			VisitDate: visitor.VisitDate.Format("January 2, 2006"),
		}
		if err := s.emails.SendRegistrationConfirmation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "confirmation email failed", "email", visitor.Email, "err", err)
		}
	}

	return visitor, nil
}

func (s *registrationService) ListRegistrations(ctx context.Context, limit, offset int) ([]*domain.Visitor, int, error) {
	if s.visitors == nil {
		return nil, 0, domain.ErrNotConfigured
	}
	visitors, err := s.visitors.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, &domain.StoreError{Op: "list visitors", Err: err}
	}
	total, err := s.visitors.Count(ctx)
	if err != nil {
		return nil, 0, &domain.StoreError{Op: "count visitors", Err: err}
	}
	return visitors, total, nil
}

package domain

import (
	"context"
	"errors"
	"time"
)

// Validation and configuration errors surfaced by the registration service.
// Controllers map these to user-facing messages; the values themselves are
// internal and never written to a response verbatim.
var (
	ErrMissingRequiredFields = errors.New("firstname, surname, and email are required")
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrNotConfigured         = errors.New("visitor store is not configured")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)

// StoreError wraps a database failure (connect, schema, insert, query).
// Controllers use errors.As to distinguish store failures from unexpected ones.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// VisitorSubmission is the DTO for a registration submission from the public
// form. Field names match the form's JSON keys; encoding/json matches them
// case-insensitively.
type VisitorSubmission struct {
	FirstName string `json:"firstname"`
	Surname   string `json:"surname"`
	Company   string `json:"company"`
	Email     string `json:"email"`
}

// Visitor is a persisted visitor registration.
// swagger:model Visitor
type Visitor struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	Surname   string    `json:"surname"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	VisitDate time.Time `json:"visit_date"`
	CreatedAt time.Time `json:"created_at"`
}

// VisitorRepository defines storage operations for visitor registrations.
// The visitors table is created lazily on first use; Save must be safe to
// run concurrently against a fresh store.
type VisitorRepository interface {
	// Save ensures the visitors table exists and inserts the visitor,
	// both on the same connection. On success it fills in ID, VisitDate,
	// and CreatedAt from the inserted row.
	Save(ctx context.Context, v *Visitor) error
	List(ctx context.Context, limit, offset int) ([]*Visitor, error)
	Count(ctx context.Context) (int, error)
}

// RegistrationService defines the visitor registration operations.
type RegistrationService interface {
	// Register validates the submission and persists it. It returns
	// ErrNotConfigured when no store is wired, ErrMissingRequiredFields or
	// ErrInvalidEmail on validation failure, and a *StoreError on any
	// database failure.
	Register(ctx context.Context, sub VisitorSubmission) (*Visitor, error)
	// ListRegistrations returns persisted visitors, newest first, plus the
	// total count for pagination.
	ListRegistrations(ctx context.Context, limit, offset int) ([]*Visitor, int, error)
}

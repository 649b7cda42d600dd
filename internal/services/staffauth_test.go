package services

import (
	"context"
	"errors"
	"testing"

	"visitorregistry/internal/domain"
)

type mockHasher struct {
	err error
}

func (m *mockHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (m *mockHasher) Compare(hash, password string) error { return m.err }

type mockTokenIssuer struct {
	token string
	err   error
}

func (m *mockTokenIssuer) Issue(subject, email string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

func TestStaffAuthService_Login(t *testing.T) {
	tests := []struct {
		name       string
		staffEmail string
		hash       string
		email      string
		compareErr error
		issueErr   error
		wantToken  string
		wantErr    error
	}{
		{
			name:       "valid credentials",
			staffEmail: "staff@example.com",
			hash:       "$2a$10$hash",
			email:      "staff@example.com",
			wantToken:  "token-1",
		},
		{
			name:       "email is case insensitive",
			staffEmail: "Staff@Example.com",
			hash:       "$2a$10$hash",
			email:      " STAFF@example.COM ",
			wantToken:  "token-1",
		},
		{
			name:       "wrong email",
			staffEmail: "staff@example.com",
			hash:       "$2a$10$hash",
			email:      "intruder@example.com",
			wantErr:    domain.ErrInvalidCredentials,
		},
		{
			name:       "wrong password",
			staffEmail: "staff@example.com",
			hash:       "$2a$10$hash",
			email:      "staff@example.com",
			compareErr: errors.New("mismatch"),
			wantErr:    domain.ErrInvalidCredentials,
		},
		{
			name:    "no staff account configured",
			email:   "staff@example.com",
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:       "issuer failure",
			staffEmail: "staff@example.com",
			hash:       "$2a$10$hash",
			email:      "staff@example.com",
			issueErr:   errors.New("sign failed"),
			wantErr:    nil, // wrapped, checked below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewStaffAuthService(tt.staffEmail, tt.hash,
				&mockHasher{err: tt.compareErr},
				&mockTokenIssuer{token: "token-1", err: tt.issueErr})
			token, err := svc.Login(context.Background(), tt.email, "secret")
			if tt.issueErr != nil {
				if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
					t.Fatalf("expected wrapped issuer error, got %v", err)
				}
				return
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if token != tt.wantToken {
				t.Fatalf("expected token %q, got %q", tt.wantToken, token)
			}
		})
	}
}

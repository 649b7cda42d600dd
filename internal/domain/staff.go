package domain

import "context"

// TokenIssuer signs access tokens for the staff API.
type TokenIssuer interface {
	Issue(subject, email string) (string, error)
}

// TokenVerifier validates an access token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// PasswordHasher hashes and compares staff passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// StaffAuthService authenticates staff members against the configured
// credentials and issues bearer tokens for the registrations API.
type StaffAuthService interface {
	// Login returns a signed token, or ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
}

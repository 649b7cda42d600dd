package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"visitorregistry/internal/delivery/http/helpers"
	"visitorregistry/internal/domain"
)

type mockRegistrationService struct {
	registered  []domain.VisitorSubmission
	registerErr error
	visitors    []*domain.Visitor
	total       int
	listErr     error
}

func (m *mockRegistrationService) Register(ctx context.Context, sub domain.VisitorSubmission) (*domain.Visitor, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	m.registered = append(m.registered, sub)
	return &domain.Visitor{ID: 1, FirstName: sub.FirstName, Surname: sub.Surname, Company: sub.Company, Email: sub.Email}, nil
}

func (m *mockRegistrationService) ListRegistrations(ctx context.Context, limit, offset int) ([]*domain.Visitor, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	return m.visitors, m.total, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func postContact(ctrl *VisitorController, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.Register(w, req)
	return w
}

func TestVisitorController_Register_Success(t *testing.T) {
	svc := &mockRegistrationService{}
	ctrl := NewVisitorController(discardLogger(), svc)

	w := postContact(ctrl, `{"firstname":"Ada","surname":"Lovelace","email":"ada@example.com"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if got := w.Body.String(); got != msgRegistered {
		t.Fatalf("expected body %q, got %q", msgRegistered, got)
	}
	if len(svc.registered) != 1 {
		t.Fatalf("expected 1 registration, got %d", len(svc.registered))
	}
	if svc.registered[0].Company != "" {
		t.Fatalf("expected empty company, got %q", svc.registered[0].Company)
	}
}

func TestVisitorController_Register_CaseInsensitiveKeys(t *testing.T) {
	svc := &mockRegistrationService{}
	ctrl := NewVisitorController(discardLogger(), svc)

	w := postContact(ctrl, `{"FirstName":"Ada","SURNAME":"Lovelace","Email":"ada@example.com","Company":"Babbage & Co"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body %q)", http.StatusOK, w.Code, w.Body.String())
	}
	sub := svc.registered[0]
	if sub.FirstName != "Ada" || sub.Surname != "Lovelace" || sub.Email != "ada@example.com" || sub.Company != "Babbage & Co" {
		t.Fatalf("fields not matched case-insensitively: %+v", sub)
	}
}

func TestVisitorController_Register_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "malformed JSON",
			body:       `{"firstname":"Ada"`,
			wantStatus: http.StatusBadRequest,
			wantBody:   msgInvalidJSON,
		},
		{
			name:       "empty body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantBody:   msgInvalidJSON,
		},
		{
			name:       "null body",
			body:       `null`,
			wantStatus: http.StatusBadRequest,
			wantBody:   msgInvalidFormat,
		},
		{
			name:       "missing required fields",
			body:       `{"firstname":"","surname":"Lovelace","email":"ada@example.com"}`,
			serviceErr: domain.ErrMissingRequiredFields,
			wantStatus: http.StatusBadRequest,
			wantBody:   msgRequiredFields,
		},
		{
			name:       "invalid email",
			body:       `{"firstname":"Ada","surname":"Lovelace","email":"not-an-email"}`,
			serviceErr: domain.ErrInvalidEmail,
			wantStatus: http.StatusBadRequest,
			wantBody:   msgInvalidEmail,
		},
		{
			name:       "store not configured",
			body:       `{"firstname":"Ada","surname":"Lovelace","email":"ada@example.com"}`,
			serviceErr: domain.ErrNotConfigured,
			wantStatus: http.StatusInternalServerError,
			wantBody:   msgConfigError,
		},
		{
			name:       "database failure",
			body:       `{"firstname":"Ada","surname":"Lovelace","email":"ada@example.com"}`,
			serviceErr: &domain.StoreError{Op: "save visitor", Err: errors.New("connection refused")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   msgDatabaseError,
		},
		{
			name:       "unexpected failure",
			body:       `{"firstname":"Ada","surname":"Lovelace","email":"ada@example.com"}`,
			serviceErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   msgUnexpectedError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRegistrationService{registerErr: tt.serviceErr}
			ctrl := NewVisitorController(discardLogger(), svc)

			w := postContact(ctrl, tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if got := w.Body.String(); got != tt.wantBody {
				t.Fatalf("expected body %q, got %q", tt.wantBody, got)
			}
			if tt.serviceErr == nil && len(svc.registered) != 0 {
				t.Fatalf("service must not be called for undecodable bodies")
			}
		})
	}
}

func TestVisitorController_ListRegistrations_Success(t *testing.T) {
	svc := &mockRegistrationService{
		visitors: []*domain.Visitor{
			{ID: 2, FirstName: "Grace", Surname: "Hopper", Email: "grace@example.com"},
			{ID: 1, FirstName: "Ada", Surname: "Lovelace", Email: "ada@example.com"},
		},
		total: 2,
	}
	ctrl := NewVisitorController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/registrations?page=1&page_size=20", nil)
	w := httptest.NewRecorder()
	ctrl.ListRegistrations(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
}

func TestVisitorController_ListRegistrations_Error(t *testing.T) {
	svc := &mockRegistrationService{listErr: errors.New("service error")}
	ctrl := NewVisitorController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/registrations", nil)
	w := httptest.NewRecorder()
	ctrl.ListRegistrations(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

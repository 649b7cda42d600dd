package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"visitorregistry/internal/delivery/http/helpers"
	"visitorregistry/internal/domain"
)

// User-facing messages for the public registration endpoint. The endpoint
// answers plain text; internal error detail is logged, never returned.
const (
	msgInvalidJSON     = "Invalid JSON data received."
	msgInvalidFormat   = "Invalid data format received."
	msgRequiredFields  = "First name, surname, and email are required fields."
	msgInvalidEmail    = "Please provide a valid email address."
	msgConfigError     = "Database configuration error. Please contact support."
	msgDatabaseError   = "Database error occurred. Please try again later."
	msgUnexpectedError = "An unexpected error occurred. Please try again."
	msgRegistered      = "Visitor registration completed successfully."
)

type VisitorController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewVisitorController(logger *slog.Logger, svc domain.RegistrationService) *VisitorController {
	return &VisitorController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a visitor
// @Description Accepts a visitor registration submission from the public web form and persists it. Field names are matched case-insensitively; company is optional and stored as empty string when absent. Responses are plain text.
// @Tags visitors
// @Accept json
// @Produce plain
// @Param body body domain.VisitorSubmission true "Visitor registration data"
// @Success 200 {string} string "Visitor registration completed successfully."
// @Failure 400 {string} string "Invalid JSON, missing required fields, or invalid email"
// @Failure 500 {string} string "Configuration or database error"
// @Router /contact [post]
func (c *VisitorController) Register(w http.ResponseWriter, r *http.Request) {
	c.Logger.DebugContext(r.Context(), "visitor registration received")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "failed to read request body", "err", err)
		helpers.WriteText(w, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	// Decoding into a pointer distinguishes malformed JSON from a body
	// that is valid JSON but carries no object (e.g. literal null).
	var sub *domain.VisitorSubmission
	if err := json.Unmarshal(body, &sub); err != nil {
		c.Logger.WarnContext(r.Context(), "malformed registration body", "err", err)
		helpers.WriteText(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if sub == nil {
		helpers.WriteText(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	if _, err := c.Service.Register(r.Context(), *sub); err != nil {
		var serr *domain.StoreError
		switch {
		case errors.Is(err, domain.ErrMissingRequiredFields):
			helpers.WriteText(w, http.StatusBadRequest, msgRequiredFields)
		case errors.Is(err, domain.ErrInvalidEmail):
			helpers.WriteText(w, http.StatusBadRequest, msgInvalidEmail)
		case errors.Is(err, domain.ErrNotConfigured):
			c.Logger.ErrorContext(r.Context(), "database connection string not configured")
			helpers.WriteText(w, http.StatusInternalServerError, msgConfigError)
		case errors.As(err, &serr):
			c.Logger.ErrorContext(r.Context(), "database failure", "op", serr.Op, "err", serr.Err)
			helpers.WriteText(w, http.StatusInternalServerError, msgDatabaseError)
		default:
			c.Logger.ErrorContext(r.Context(), "unexpected registration failure", "err", err)
			helpers.WriteText(w, http.StatusInternalServerError, msgUnexpectedError)
		}
		return
	}

	helpers.WriteText(w, http.StatusOK, msgRegistered)
}

// RegistrationsPage is the data payload for GET /registrations.
type RegistrationsPage struct {
	Visitors   []*domain.Visitor      `json:"visitors"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListRegistrationsSuccessResponse is the success response envelope for GET /registrations (200).
type ListRegistrationsSuccessResponse struct {
	Data  *RegistrationsPage `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ListRegistrations godoc
// @Summary List visitor registrations
// @Description Returns persisted visitor registrations, newest first. Staff only.
// @Tags visitors
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListRegistrationsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations [get]
func (c *VisitorController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := helpers.ParsePagination(r)

	visitors, total, err := c.Service.ListRegistrations(r.Context(), limit, offset)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list registrations")
		return
	}
	if visitors == nil {
		visitors = []*domain.Visitor{}
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, &RegistrationsPage{
		Visitors:   visitors,
		Pagination: helpers.NewPaginationMeta(page, limit, total),
	})
}

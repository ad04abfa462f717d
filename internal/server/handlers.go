package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/maauso/guardjobs-api/internal/application"
	"github.com/maauso/guardjobs-api/internal/catalog"
	"github.com/maauso/guardjobs-api/internal/employer"
	"github.com/maauso/guardjobs-api/internal/listing"
	"github.com/maauso/guardjobs-api/internal/submission"
)

// CatalogSource provides the catalog snapshot to serve.
type CatalogSource interface {
	Current() *catalog.Catalog
}

// Submitter simulates the round trip of a form submission.
type Submitter interface {
	Submit(ctx context.Context, kind submission.Kind) (submission.Receipt, error)
}

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	catalog      CatalogSource
	applications *application.Service
	employer     *employer.Service
	submitter    Submitter
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	cat CatalogSource,
	applications *application.Service,
	emp *employer.Service,
	submitter Submitter,
	logger *slog.Logger,
) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		catalog:      cat,
		applications: applications,
		employer:     emp,
		submitter:    submitter,
		validator:    newValidator(),
		logger:       logger,
	}
}

// newValidator returns a validator that knows the board's option lists.
func newValidator() *validator.Validate {
	v := validator.New()
	options := map[string][]string{
		"city":         listing.Cities,
		"experience":   listing.ExperienceLevels,
		"industry":     employer.IndustryTypes,
		"company_size": employer.CompanySizes,
	}
	for tag, allowed := range options {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return slices.Contains(allowed, fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}
	return v
}

// Health handles GET /health requests.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Jobs: h.catalog.Current().Len()})
}

// decode reads a JSON body into dst and validates it. It writes the error
// response and returns false if either step fails.
func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Warn("failed to decode request body",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadRequest, "invalid JSON body", "INVALID_JSON")
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		h.logger.Warn("request validation failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
		return false
	}
	return true
}

// writeServiceError maps domain errors to the error envelope.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrJobNotFound):
		writeError(w, http.StatusNotFound, "job not found", "JOB_NOT_FOUND")
	case errors.Is(err, application.ErrApplicationNotFound):
		writeError(w, http.StatusNotFound, "application not found", "APPLICATION_NOT_FOUND")
	case errors.Is(err, application.ErrInvalidTransition), errors.Is(err, employer.ErrListingClosed):
		writeError(w, http.StatusConflict, err.Error(), "INVALID_TRANSITION")
	case errors.Is(err, employer.ErrPasswordMismatch):
		writeError(w, http.StatusBadRequest, err.Error(), "PASSWORD_MISMATCH")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("submission interrupted",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusServiceUnavailable, "submission did not complete", "SUBMISSION_FAILED")
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

// submit runs a simulated submission and writes its receipt.
func (h *Handlers) submit(w http.ResponseWriter, r *http.Request, kind submission.Kind) {
	receipt, err := h.submitter.Submit(r.Context(), kind)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ReceiptResponse{Receipt: receipt})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}

// writeError writes an error response in the standard format.
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

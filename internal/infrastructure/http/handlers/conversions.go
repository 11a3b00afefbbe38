package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/miambidi/mealplan/internal/ports/inbound"
	"go.uber.org/zap"
)

// ConversionHandlers handles unit conversion requests
type ConversionHandlers struct {
	service inbound.ConversionService
	logger  *zap.Logger
}

// NewConversionHandlers creates a new conversion handlers instance
func NewConversionHandlers(service inbound.ConversionService, logger *zap.Logger) *ConversionHandlers {
	return &ConversionHandlers{
		service: service,
		logger:  logger,
	}
}

// Convert handles POST /api/v1/conversions
func (h *ConversionHandlers) Convert(w http.ResponseWriter, r *http.Request) {
	var query inbound.ConversionQuery
	if err := decodeJSON(r, &query); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.service.Convert(r.Context(), query)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if result == nil {
		// No equivalence path is a valid answer, not an error.
		writeJSON(w, h.logger, http.StatusOK, APIResponse{
			Success: true,
			Data:    nil,
			Message: "No known equivalence",
		})
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
	})
}

// ListEquivalences handles GET /api/v1/ingredients/{name}/equivalences
func (h *ConversionHandlers) ListEquivalences(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	equivalences, err := h.service.ListEquivalences(r.Context(), name)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    equivalences,
	})
}

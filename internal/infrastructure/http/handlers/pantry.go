package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/miambidi/mealplan/internal/ports/inbound"
	"go.uber.org/zap"
)

// PantryHandlers handles pantry stock requests
type PantryHandlers struct {
	service inbound.PantryService
	logger  *zap.Logger
}

// NewPantryHandlers creates a new pantry handlers instance
func NewPantryHandlers(service inbound.PantryService, logger *zap.Logger) *PantryHandlers {
	return &PantryHandlers{
		service: service,
		logger:  logger,
	}
}

// ListItems handles GET /api/v1/pantry
func (h *PantryHandlers) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
	})
}

// GetItem handles GET /api/v1/pantry/{id}
func (h *PantryHandlers) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    item,
	})
}

// AddItem handles POST /api/v1/pantry
func (h *PantryHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.AddPantryItemCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, h.logger, err)
		return
	}

	item, err := h.service.AddItem(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    item,
		Message: "Pantry item added",
	})
}

// UpdateItem handles PUT /api/v1/pantry/{id}
func (h *PantryHandlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var cmd inbound.UpdatePantryItemCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, h.logger, err)
		return
	}
	cmd.ItemID = id

	item, err := h.service.UpdateItem(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    item,
		Message: "Pantry item updated",
	})
}

// RemoveItem handles DELETE /api/v1/pantry/{id}
func (h *PantryHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.service.RemoveItem(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Pantry item removed",
	})
}

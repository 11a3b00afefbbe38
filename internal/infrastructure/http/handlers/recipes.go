package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/miambidi/mealplan/internal/ports/inbound"
	"go.uber.org/zap"
)

// RecipeHandlers handles recipe catalog requests
type RecipeHandlers struct {
	service inbound.RecipeService
	logger  *zap.Logger
}

// NewRecipeHandlers creates a new recipe handlers instance
func NewRecipeHandlers(service inbound.RecipeService, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{
		service: service,
		logger:  logger,
	}
}

// ListRecipes handles GET /api/v1/recipes
func (h *RecipeHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	params := paginationFromQuery(r)

	list, err := h.service.ListRecipes(r.Context(), params)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    list,
	})
}

// SearchRecipes handles GET /api/v1/recipes/search
func (h *RecipeHandlers) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	query := inbound.SearchQuery{
		Text:       r.URL.Query().Get("q"),
		Ingredient: r.URL.Query().Get("ingredient"),
		Pagination: paginationFromQuery(r),
	}
	if raw := r.URL.Query().Get("min_rating"); raw != "" {
		if minRating, err := strconv.ParseFloat(raw, 64); err == nil {
			query.MinRating = &minRating
		}
	}

	list, err := h.service.SearchRecipes(r.Context(), query)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    list,
	})
}

// GetRecipe handles GET /api/v1/recipes/{id}
func (h *RecipeHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	recipe, err := h.service.GetRecipeByID(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    recipe,
	})
}

// CreateRecipe handles POST /api/v1/recipes
func (h *RecipeHandlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.CreateRecipeCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, h.logger, err)
		return
	}

	recipe, err := h.service.CreateRecipe(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    recipe,
		Message: "Recipe created",
	})
}

// UpdateRecipe handles PUT /api/v1/recipes/{id}
func (h *RecipeHandlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var cmd inbound.UpdateRecipeCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, h.logger, err)
		return
	}
	cmd.RecipeID = id

	recipe, err := h.service.UpdateRecipe(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    recipe,
		Message: "Recipe updated",
	})
}

// RateRecipe handles POST /api/v1/recipes/{id}/rating
func (h *RecipeHandlers) RateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var body struct {
		Rating float64 `json:"rating"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.service.RateRecipe(r.Context(), id, body.Rating); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Recipe rated",
	})
}

// DeleteRecipe handles DELETE /api/v1/recipes/{id}
func (h *RecipeHandlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteRecipe(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Recipe deleted",
	})
}

func paginationFromQuery(r *http.Request) inbound.PaginationParams {
	params := inbound.PaginationParams{
		OrderBy: r.URL.Query().Get("order_by"),
		Order:   r.URL.Query().Get("order"),
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		params.Page = page
	}
	if pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil {
		params.PageSize = pageSize
	}
	return params
}

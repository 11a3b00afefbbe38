package handlers

import (
	"net/http"
	"strconv"

	"github.com/miambidi/mealplan/internal/ports/inbound"
	"go.uber.org/zap"
)

// RecommendationHandlers handles recommendation requests
type RecommendationHandlers struct {
	service inbound.RecommendationService
	logger  *zap.Logger
}

// NewRecommendationHandlers creates a new recommendation handlers instance
func NewRecommendationHandlers(service inbound.RecommendationService, logger *zap.Logger) *RecommendationHandlers {
	return &RecommendationHandlers{
		service: service,
		logger:  logger,
	}
}

// GetRecommendations handles GET /api/v1/recommendations
func (h *RecommendationHandlers) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var query inbound.RecommendationQuery
	if topN, err := strconv.Atoi(r.URL.Query().Get("top_n")); err == nil {
		query.TopN = topN
	}

	recommendations, err := h.service.Recommend(r.Context(), query)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    recommendations,
	})
}

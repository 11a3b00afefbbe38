package inbound

import (
	"context"

	"github.com/google/uuid"
)

// RecommendationService ranks catalog recipes against the current pantry
type RecommendationService interface {
	// Recommend scores every recipe against the pantry and returns the
	// top matches, best first. A topN of zero applies the default limit.
	Recommend(ctx context.Context, query RecommendationQuery) ([]RecommendationDTO, error)
}

// RecommendationQuery defines recommendation parameters
type RecommendationQuery struct {
	TopN int `json:"top_n" validate:"omitempty,gte=1,lte=100"`
}

// RecommendationDTO is a scored recipe with its availability breakdown
type RecommendationDTO struct {
	RecipeID           uuid.UUID `json:"recipe_id"`
	Name               string    `json:"name"`
	Rating             float64   `json:"rating"`
	MatchCount         int       `json:"match_count"`
	MissingCount       int       `json:"missing_count"`
	MatchedIngredients []string  `json:"matched_ingredients"`
	MissingIngredients []string  `json:"missing_ingredients"`
	MatchPercentage    float64   `json:"match_percentage"`
	AvailabilityRatio  float64   `json:"availability_ratio"`
	PriorityScore      float64   `json:"priority_score"`
}

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	appconversion "github.com/miambidi/mealplan/internal/application/conversion"
	apppantry "github.com/miambidi/mealplan/internal/application/pantry"
	apprecipe "github.com/miambidi/mealplan/internal/application/recipe"
	apprecommendation "github.com/miambidi/mealplan/internal/application/recommendation"
	"github.com/miambidi/mealplan/internal/infrastructure/config"
	"github.com/miambidi/mealplan/internal/infrastructure/http/apiserver"
	"github.com/miambidi/mealplan/internal/infrastructure/monitoring"
	gormRepo "github.com/miambidi/mealplan/internal/infrastructure/persistence/gorm"
	"github.com/miambidi/mealplan/internal/infrastructure/persistence/memory"
	"github.com/miambidi/mealplan/internal/infrastructure/persistence/sqlite"
	"github.com/miambidi/mealplan/pkg/healthcheck"
)

// apiEnvelope mirrors the handler response wrapper.
type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

type APITestSuite struct {
	suite.Suite
	router http.Handler
}

func (s *APITestSuite) SetupTest() {
	log := zap.NewNop()

	db, err := sqlite.SetupDatabase("", gormlogger.Silent)
	s.Require().NoError(err)

	cfg := &config.Config{}
	cfg.App.Name = "miambidi-test"
	cfg.Monitoring.EnableMetrics = true
	cfg.Monitoring.MetricsPath = "/metrics"
	cfg.Monitoring.HealthCheckPath = "/health"
	cfg.Monitoring.ReadinessPath = "/ready"

	pantryRepo := gormRepo.NewPantryRepository(db)
	recipeRepo := gormRepo.NewRecipeRepository(db)
	cache := memory.NewCacheRepository()
	metrics := monitoring.NewMetricsCollector(log)

	health := healthcheck.New("test", log)
	health.Register("database", healthcheck.DatabaseChecker(db))

	server := apiserver.NewAPIServer(
		cfg, log, health, metrics,
		apppantry.NewPantryService(pantryRepo, cache, metrics, log),
		apprecipe.NewRecipeService(recipeRepo, cache, metrics, log),
		apprecommendation.NewRecommendationService(pantryRepo, recipeRepo, cache, metrics, log),
		appconversion.NewConversionService(metrics, log),
	)
	s.router = server.Router()
}

func (s *APITestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *APITestSuite) decode(rec *httptest.ResponseRecorder, data interface{}) apiEnvelope {
	var envelope apiEnvelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	if data != nil && envelope.Data != nil {
		s.Require().NoError(json.Unmarshal(envelope.Data, data))
	}
	return envelope
}

func (s *APITestSuite) TestPantryLifecycle() {
	rec := s.do(http.MethodPost, "/api/v1/pantry", map[string]interface{}{
		"name": "Tomate", "quantity": 6, "unit": "pièce",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
	}
	envelope := s.decode(rec, &created)
	s.True(envelope.Success)
	s.Equal("Tomate", created.Name)

	rec = s.do(http.MethodPut, "/api/v1/pantry/"+created.ID, map[string]interface{}{"quantity": 12})
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated struct {
		Quantity float64 `json:"quantity"`
	}
	s.decode(rec, &updated)
	s.Equal(12.0, updated.Quantity)

	rec = s.do(http.MethodGet, "/api/v1/pantry", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var items []json.RawMessage
	s.decode(rec, &items)
	s.Len(items, 1)

	rec = s.do(http.MethodDelete, "/api/v1/pantry/"+created.ID, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/pantry/"+created.ID, nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *APITestSuite) TestPantryRejectsDuplicate() {
	rec := s.do(http.MethodPost, "/api/v1/pantry", map[string]interface{}{"name": "Sel", "quantity": 500, "unit": "g"})
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/pantry", map[string]interface{}{"name": " SEL ", "quantity": 1, "unit": "kg"})
	s.Equal(http.StatusConflict, rec.Code)

	envelope := s.decode(rec, nil)
	s.False(envelope.Success)
	s.NotEmpty(envelope.Error)
}

func (s *APITestSuite) TestRecipeLifecycle() {
	rec := s.do(http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"name":        "Riz sauté aux légumes",
		"description": "Riz sauté rapide",
		"servings":    4,
		"ingredients": []map[string]interface{}{
			{"name": "Riz", "quantity": 500, "unit": "g"},
			{"name": "Tomate", "quantity": 3, "unit": "pièce"},
		},
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Ingredients []struct {
			Name string `json:"name"`
		} `json:"ingredients"`
	}
	s.decode(rec, &created)
	s.Equal("Riz sauté aux légumes", created.Name)
	s.Len(created.Ingredients, 2)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/v1/recipes/%s/rating", created.ID), map[string]interface{}{"rating": 4.5})
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/recipes/"+created.ID, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var fetched struct {
		Rating float64 `json:"rating"`
	}
	s.decode(rec, &fetched)
	s.Equal(4.5, fetched.Rating)

	rec = s.do(http.MethodGet, "/api/v1/recipes/search?q=riz", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var results struct {
		Recipes []json.RawMessage `json:"recipes"`
		Total   int               `json:"total"`
	}
	s.decode(rec, &results)
	s.Equal(1, results.Total)
}

func (s *APITestSuite) TestRecipeValidationFailure() {
	rec := s.do(http.MethodPost, "/api/v1/recipes", map[string]interface{}{"name": "X"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APITestSuite) TestRecommendationsFlow() {
	for _, item := range []map[string]interface{}{
		{"name": "Tomate", "quantity": 10, "unit": "pièce"},
		{"name": "Oignon", "quantity": 10, "unit": "pièce"},
	} {
		rec := s.do(http.MethodPost, "/api/v1/pantry", item)
		s.Require().Equal(http.StatusCreated, rec.Code)
	}

	rec := s.do(http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"name": "Sauce tomate",
		"ingredients": []map[string]interface{}{
			{"name": "Tomate", "quantity": 5, "unit": "pièce"},
			{"name": "Oignon", "quantity": 1, "unit": "pièce"},
		},
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/recommendations?top_n=5", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var recommendations []struct {
		Name            string  `json:"name"`
		MatchCount      int     `json:"match_count"`
		MatchPercentage float64 `json:"match_percentage"`
	}
	s.decode(rec, &recommendations)
	s.Require().Len(recommendations, 1)
	s.Equal("Sauce tomate", recommendations[0].Name)
	s.Equal(2, recommendations[0].MatchCount)
	s.Equal(100.0, recommendations[0].MatchPercentage)
}

func (s *APITestSuite) TestConversionEndpoint() {
	rec := s.do(http.MethodPost, "/api/v1/conversions", map[string]interface{}{
		"ingredient": "farine", "quantity": 2, "from_unit": "kg", "to_unit": "g",
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	var conv struct {
		Quantity   float64 `json:"quantity"`
		Unit       string  `json:"unit"`
		Confidence string  `json:"confidence"`
	}
	s.decode(rec, &conv)
	s.Equal(2000.0, conv.Quantity)
	s.Equal("g", conv.Unit)
	s.Equal("exact", conv.Confidence)
}

func (s *APITestSuite) TestConversionUnknownPair() {
	rec := s.do(http.MethodPost, "/api/v1/conversions", map[string]interface{}{
		"ingredient": "licorne", "quantity": 1, "from_unit": "pièce", "to_unit": "g",
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	envelope := s.decode(rec, nil)
	s.True(envelope.Success)
	s.Equal("No known equivalence", envelope.Message)
}

func (s *APITestSuite) TestEquivalencesEndpoint() {
	rec := s.do(http.MethodGet, "/api/v1/ingredients/tomate/equivalences", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var equivalences []struct {
		Unit string `json:"unit"`
	}
	s.decode(rec, &equivalences)
	s.NotEmpty(equivalences)
}

func (s *APITestSuite) TestJSONOnlyRejectsOtherContentTypes() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversions", bytes.NewBufferString("ingredient=farine"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
}

func (s *APITestSuite) TestOperationalEndpoints() {
	rec := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/live", nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "go_goroutines")
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

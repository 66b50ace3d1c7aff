package fdc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrilog/backend/internal/domain"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com")

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://api.example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
}

func TestSearchFoods_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/foods/search", r.URL.Path)
		assert.Equal(t, "oatcakes", r.URL.Query().Get("query"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("api_key"))

		response := domain.FDCSearchResponse{
			Foods: []domain.FDCSearchFood{
				{
					FDCID:       123456,
					Description: "Oatcakes",
					DataType:    "Branded",
					FoodNutrients: []domain.FDCSearchNutrient{
						{NutrientID: 1008, NutrientName: "Energy", Value: 440},
					},
				},
			},
			TotalHits: 1,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	result, err := client.SearchFoods(context.Background(), "oatcakes")

	require.NoError(t, err)
	require.Len(t, result.Foods, 1)
	assert.Equal(t, int64(123456), result.Foods[0].FDCID)
	assert.Equal(t, "Oatcakes", result.Foods[0].Description)
}

func TestSearchFoods_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.FDCSearchResponse{Foods: []domain.FDCSearchFood{}})
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	_, err := client.SearchFoods(context.Background(), "nonexistent")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestSearchFoods_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	_, err := client.SearchFoods(context.Background(), "anything")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetFood_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/food/123456", r.URL.Path)

		food := domain.FDCFood{
			FDCID:       123456,
			Description: "Whole Milk",
			FoodNutrients: []domain.FDCNutrient{
				{Nutrient: domain.FDCNutrientRef{ID: 1008, Name: "Energy", UnitName: "kcal"}, Amount: 61},
				{Nutrient: domain.FDCNutrientRef{ID: 1003, Name: "Protein", UnitName: "g"}, Amount: 3.2},
			},
			FoodPortions: []domain.FDCPortion{
				{GramWeight: 244, Modifier: "1 cup"},
			},
		}
		json.NewEncoder(w).Encode(food)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	food, err := client.GetFood(context.Background(), "123456")

	require.NoError(t, err)
	assert.Equal(t, int64(123456), food.FDCID)
	assert.Len(t, food.FoodNutrients, 2)
	assert.Equal(t, "Energy", food.FoodNutrients[0].Nutrient.Name)
	require.Len(t, food.FoodPortions, 1)
	assert.Equal(t, 244.0, food.FoodPortions[0].GramWeight)
}

func TestGetFood_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	_, err := client.GetFood(context.Background(), "999999")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetFood_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	_, err := client.GetFood(context.Background(), "123456")

	assert.ErrorIs(t, err, domain.ErrProviderFailure)
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, "500ms", backoff(1).String())
	assert.Equal(t, "1s", backoff(2).String())
	assert.Equal(t, "1.5s", backoff(3).String())
}

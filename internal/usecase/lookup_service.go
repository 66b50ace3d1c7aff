package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nutrilog/backend/internal/domain"
	"github.com/nutrilog/backend/internal/infrastructure/fdc"
)

// LookupServiceConfig holds configuration for the lookup service
type LookupServiceConfig struct {
	CacheTTL time.Duration
}

// LookupService resolves barcodes and food-database lookups with caching.
type LookupService struct {
	cache    domain.CacheRepository
	barcode  domain.BarcodeClient
	foodData domain.FoodDataClient
	cacheTTL time.Duration
}

// NewLookupService creates a new lookup service with dependencies
func NewLookupService(
	cache domain.CacheRepository,
	barcode domain.BarcodeClient,
	foodData domain.FoodDataClient,
	config LookupServiceConfig,
) *LookupService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 168 * time.Hour // Default 7 days
	}

	return &LookupService{
		cache:    cache,
		barcode:  barcode,
		foodData: foodData,
		cacheTTL: cacheTTL,
	}
}

// LookupBarcode resolves a barcode to canonical nutrients.
// Flow: check cache -> fetch product -> resolve -> cache -> return
func (s *LookupService) LookupBarcode(ctx context.Context, code string) (*domain.ResolvedNutrients, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := "barcode:" + code

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil && cached != nil {
		return cached, nil
	}

	product, err := s.barcode.LookupBarcode(ctx, code)
	if err != nil {
		return nil, err
	}

	resolved := ResolveBarcodeProduct(product, code)

	// Best-effort cache write; a failed Set never fails the lookup.
	_ = s.cache.Set(ctx, cacheKey, resolved, s.cacheTTL)

	return resolved, nil
}

// SearchFoods queries the food-composition database and maps the hits to
// per-100g macro summaries.
func (s *LookupService) SearchFoods(ctx context.Context, query string) ([]domain.FoodSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidRequest
	}

	resp, err := s.foodData.SearchFoods(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]domain.FoodSearchResult, 0, len(resp.Foods))
	for i := range resp.Foods {
		results = append(results, *fdc.MapSearchFood(&resp.Foods[i]))
	}
	if len(results) == 0 {
		return nil, domain.ErrProductNotFound
	}
	return results, nil
}

// GetFoodMacros fetches a food-database detail record and resolves its macro
// summary.
func (s *LookupService) GetFoodMacros(ctx context.Context, fdcID string) (*domain.MacroSummary, error) {
	fdcID = strings.TrimSpace(fdcID)
	if fdcID == "" {
		return nil, domain.ErrInvalidRequest
	}

	food, err := s.foodData.GetFood(ctx, fdcID)
	if err != nil {
		return nil, err
	}

	summary := ResolveFDCFood(food)
	return &summary, nil
}

// getFromCache retrieves a resolved record from cache. Cached values come
// back as generic JSON structures, so they are re-marshaled into the typed
// record.
func (s *LookupService) getFromCache(ctx context.Context, key string) (*domain.ResolvedNutrients, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if typed, ok := value.(*domain.ResolvedNutrients); ok {
		return typed, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheMiss, err)
	}
	var resolved domain.ResolvedNutrients
	if err := json.Unmarshal(raw, &resolved); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheMiss, err)
	}
	return &resolved, nil
}

package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// BarcodeClient defines the interface for the barcode product database
type BarcodeClient interface {
	LookupBarcode(ctx context.Context, code string) (*BarcodeProduct, error)
}

// FoodDataClient defines the interface for the USDA FoodData Central API
type FoodDataClient interface {
	SearchFoods(ctx context.Context, query string) (*FDCSearchResponse, error)
	GetFood(ctx context.Context, fdcID string) (*FDCFood, error)
}

// ProfileRepository persists the single per-installation user profile
type ProfileRepository interface {
	Save(ctx context.Context, profile *UserProfile) error
	Get(ctx context.Context) (*UserProfile, error)
}

// FoodLogRepository persists diary entries
type FoodLogRepository interface {
	Add(ctx context.Context, entry *FoodLogEntry) (int64, error)
	ListByDate(ctx context.Context, date string) ([]FoodLogEntry, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context, date string) (*DaySummary, error)
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nutrilog/backend/config"
	httpDelivery "github.com/nutrilog/backend/internal/delivery/http"
	"github.com/nutrilog/backend/internal/infrastructure/cache"
	"github.com/nutrilog/backend/internal/infrastructure/fdc"
	"github.com/nutrilog/backend/internal/infrastructure/openfoodfacts"
	"github.com/nutrilog/backend/internal/infrastructure/store"
	"github.com/nutrilog/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting NutriLog Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Store: %s", cfg.Store.Path)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer db.Close()

	if err := store.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate store: %v", err)
	}

	memoryCache := cache.NewMemoryCache()
	offClient := openfoodfacts.NewClient(cfg.OpenFoodFacts.BaseURL)
	fdcClient := fdc.NewClient(cfg.FDC.APIKey, cfg.FDC.BaseURL)

	if cfg.FDC.APIKey != "" {
		log.Printf("FDC API configured: %s", cfg.FDC.BaseURL)
	} else {
		log.Printf("WARNING: FDC API key not configured - food search will fail (set NUTRILOG_FDC_API_KEY)")
	}
	log.Printf("Open Food Facts configured: %s", cfg.OpenFoodFacts.BaseURL)

	lookupService := usecase.NewLookupService(
		memoryCache,
		offClient,
		fdcClient,
		usecase.LookupServiceConfig{
			CacheTTL: cfg.Cache.TTL,
		},
	)
	diaryService := usecase.NewDiaryService(
		store.NewProfileStore(db),
		store.NewFoodLogStore(db),
	)

	handler := httpDelivery.NewHandler(lookupService, diaryService)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

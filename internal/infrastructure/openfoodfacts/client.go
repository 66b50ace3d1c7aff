package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/nutrilog/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the Open Food Facts product API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new Open Food Facts client. The API is unauthenticated;
// the limiter keeps us inside its courtesy limits.
func NewClient(baseURL string) *Client {
	limiter := rate.NewLimiter(rate.Limit(2), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// LookupBarcode fetches the raw product payload for one barcode
func (c *Client) LookupBarcode(ctx context.Context, code string) (*domain.BarcodeProduct, error) {
	log.Printf("[OFF] LookupBarcode called with code: %q", code)

	reqURL := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, code)

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", "NutriLog/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Printf("[OFF] Request error (attempt %d): %v", attempt, err)
			lastErr = fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrProductNotFound
		}
		if resp.StatusCode != http.StatusOK {
			log.Printf("[OFF] API error (attempt %d) - Status: %d", attempt, resp.StatusCode)
			lastErr = fmt.Errorf("%w: status %d", domain.ErrProviderFailure, resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var parsed domain.BarcodeLookupResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if parsed.Status != 1 {
			log.Printf("[OFF] No product found for code: %q", code)
			return nil, domain.ErrProductNotFound
		}

		if parsed.Product.Code == "" {
			parsed.Product.Code = code
		}
		return &parsed.Product, nil
	}

	log.Printf("[OFF] All retries failed for code: %q", code)
	return nil, lastErr
}

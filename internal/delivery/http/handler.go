package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutrilog/backend/internal/domain"
	"github.com/nutrilog/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	lookup *usecase.LookupService
	diary  *usecase.DiaryService
}

// NewHandler creates a new HTTP handler
func NewHandler(lookup *usecase.LookupService, diary *usecase.DiaryService) *Handler {
	return &Handler{
		lookup: lookup,
		diary:  diary,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutrilog-backend",
		"version": "1.0.0",
	})
}

// LookupBarcode resolves a scanned barcode to canonical nutrients
func (h *Handler) LookupBarcode(c *gin.Context) {
	resolved, err := h.lookup.LookupBarcode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// SearchFoods searches the food-composition database
func (h *Handler) SearchFoods(c *gin.Context) {
	results, err := h.lookup.SearchFoods(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetFood returns the macro summary for one food-database record
func (h *Handler) GetFood(c *gin.Context) {
	summary, err := h.lookup.GetFoodMacros(c.Request.Context(), c.Param("fdcId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// profileRequest is the PUT /profile body.
type profileRequest struct {
	Age            int     `json:"age" binding:"required"`
	Sex            string  `json:"sex" binding:"required"`
	HeightCm       float64 `json:"heightCm" binding:"required"`
	WeightKg       float64 `json:"weightKg" binding:"required"`
	HeightImperial bool    `json:"heightImperial"`
	WeightImperial bool    `json:"weightImperial"`
	Goal           string  `json:"goal" binding:"required"`
	ActivityLevel  string  `json:"activityLevel" binding:"required"`
	DietType       string  `json:"dietType" binding:"required"`
}

// PutProfile saves the profile and recomputes its targets
func (h *Handler) PutProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := &domain.UserProfile{
		Age:            req.Age,
		Sex:            domain.Sex(req.Sex),
		HeightCm:       req.HeightCm,
		WeightKg:       req.WeightKg,
		HeightImperial: req.HeightImperial,
		WeightImperial: req.WeightImperial,
		Goal:           domain.Goal(req.Goal),
		ActivityLevel:  domain.ActivityLevel(req.ActivityLevel),
		DietType:       domain.DietType(req.DietType),
	}

	saved, err := h.diary.SaveProfile(c.Request.Context(), profile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetProfile returns the stored profile
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.diary.Profile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetTargets returns the stored daily targets
func (h *Handler) GetTargets(c *gin.Context) {
	targets, err := h.diary.Targets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, targets)
}

// entryRequest is the POST /diary/entries body: a canonical nutrient record
// plus optional date and timestamp.
type entryRequest struct {
	domain.ResolvedNutrients
	Date     string     `json:"date"`
	LoggedAt *time.Time `json:"loggedAt"`
}

// AddEntry logs a resolved food into the diary
func (h *Handler) AddEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	at := time.Time{}
	if req.LoggedAt != nil {
		at = *req.LoggedAt
	}
	entry, err := h.diary.LogResolved(c.Request.Context(), &req.ResolvedNutrients, req.Date, at)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListEntries returns the diary for one date
func (h *Handler) ListEntries(c *gin.Context) {
	entries, err := h.diary.Entries(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// DeleteEntry removes one diary entry
func (h *Handler) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}
	if err := h.diary.DeleteEntry(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DaySummary returns aggregated totals for one date
func (h *Handler) DaySummary(c *gin.Context) {
	summary, err := h.diary.Summary(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// respondError maps domain errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrProviderFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

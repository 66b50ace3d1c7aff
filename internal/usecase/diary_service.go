package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nutrilog/backend/internal/domain"
)

const dayFormat = "2006-01-02"

// DiaryService handles the user profile and the food log.
type DiaryService struct {
	profiles domain.ProfileRepository
	log      domain.FoodLogRepository
}

// NewDiaryService creates a new diary service with dependencies
func NewDiaryService(profiles domain.ProfileRepository, log domain.FoodLogRepository) *DiaryService {
	return &DiaryService{
		profiles: profiles,
		log:      log,
	}
}

// SaveProfile validates the profile, recomputes targets and persists the
// result. Targets are only ever written here: editing a biometric field
// without saving leaves the stored targets untouched.
func (s *DiaryService) SaveProfile(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	if profile == nil {
		return nil, domain.ErrInvalidRequest
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	profile.Targets = CalculateTargets(profile)
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// Profile returns the stored profile.
func (s *DiaryService) Profile(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}

// Targets returns the stored daily targets.
func (s *DiaryService) Targets(ctx context.Context) (*domain.MacroTargets, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &profile.Targets, nil
}

func validateProfile(p *domain.UserProfile) error {
	if p.Age < 15 || p.Age > 100 {
		return fmt.Errorf("%w: age must be between 15 and 100", domain.ErrInvalidRequest)
	}
	if p.Sex != domain.SexMale && p.Sex != domain.SexFemale {
		return fmt.Errorf("%w: sex must be male or female", domain.ErrInvalidRequest)
	}
	if p.HeightCm < 120 || p.HeightCm > 220 {
		return fmt.Errorf("%w: height must be between 120 and 220 cm", domain.ErrInvalidRequest)
	}
	if p.WeightKg < 30 || p.WeightKg > 200 {
		return fmt.Errorf("%w: weight must be between 30 and 200 kg", domain.ErrInvalidRequest)
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		return fmt.Errorf("%w: unknown activity level %q", domain.ErrInvalidRequest, p.ActivityLevel)
	}
	if _, ok := dietSplits[p.DietType]; !ok {
		return fmt.Errorf("%w: unknown diet type %q", domain.ErrInvalidRequest, p.DietType)
	}
	if _, ok := goalModifiers[p.Goal]; !ok {
		return fmt.Errorf("%w: unknown goal %q", domain.ErrInvalidRequest, p.Goal)
	}
	return nil
}

// LogResolved creates a diary entry from a canonical nutrient record. An
// empty date means today; the timestamp orders entries within the day.
func (s *DiaryService) LogResolved(ctx context.Context, resolved *domain.ResolvedNutrients, date string, at time.Time) (*domain.FoodLogEntry, error) {
	if resolved == nil {
		return nil, domain.ErrInvalidRequest
	}
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	if at.IsZero() {
		at = time.Now()
	}

	entry := &domain.FoodLogEntry{
		LogDate:     date,
		LoggedAt:    at,
		Name:        resolved.Name,
		Brand:       resolved.Brand,
		ServingSize: resolved.ServingSize,
		ServingUnit: resolved.ServingUnit,
		Calories:    resolved.Calories,
		Protein:     resolved.Protein,
		Carbs:       resolved.Carbs,
		Fat:         resolved.Fat,
		Extended:    resolved.Extended,
		SourceID:    resolved.SourceID,
	}

	id, err := s.log.Add(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("add diary entry: %w", err)
	}
	entry.ID = id
	return entry, nil
}

// Entries lists the diary for one date, ordered by log timestamp.
func (s *DiaryService) Entries(ctx context.Context, date string) ([]domain.FoodLogEntry, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	return s.log.ListByDate(ctx, date)
}

// DeleteEntry removes one diary entry.
func (s *DiaryService) DeleteEntry(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidRequest
	}
	return s.log.Delete(ctx, id)
}

// Summary aggregates calories and macros for one date.
func (s *DiaryService) Summary(ctx context.Context, date string) (*domain.DaySummary, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	return s.log.Summary(ctx, date)
}

func normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().Format(dayFormat), nil
	}
	if _, err := time.Parse(dayFormat, date); err != nil {
		return "", fmt.Errorf("%w: invalid date %q (expected YYYY-MM-DD)", domain.ErrInvalidRequest, date)
	}
	return date, nil
}

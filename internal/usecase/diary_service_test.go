package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nutrilog/backend/internal/domain"
)

// MockProfileRepository is a mock implementation of domain.ProfileRepository
type MockProfileRepository struct {
	profile *domain.UserProfile
	saveErr error
}

func (m *MockProfileRepository) Save(ctx context.Context, p *domain.UserProfile) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := *p
	m.profile = &copied
	return nil
}

func (m *MockProfileRepository) Get(ctx context.Context) (*domain.UserProfile, error) {
	if m.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return m.profile, nil
}

// MockFoodLogRepository is a mock implementation of domain.FoodLogRepository
type MockFoodLogRepository struct {
	entries []domain.FoodLogEntry
	nextID  int64
}

func (m *MockFoodLogRepository) Add(ctx context.Context, e *domain.FoodLogEntry) (int64, error) {
	m.nextID++
	entry := *e
	entry.ID = m.nextID
	m.entries = append(m.entries, entry)
	return m.nextID, nil
}

func (m *MockFoodLogRepository) ListByDate(ctx context.Context, date string) ([]domain.FoodLogEntry, error) {
	out := make([]domain.FoodLogEntry, 0)
	for _, e := range m.entries {
		if e.LogDate == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockFoodLogRepository) Delete(ctx context.Context, id int64) error {
	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

func (m *MockFoodLogRepository) Summary(ctx context.Context, date string) (*domain.DaySummary, error) {
	summary := &domain.DaySummary{Date: date}
	for _, e := range m.entries {
		if e.LogDate == date {
			summary.Entries++
			summary.Calories += e.Calories
			summary.Protein += e.Protein
			summary.Carbs += e.Carbs
			summary.Fat += e.Fat
		}
	}
	return summary, nil
}

func newDiaryFixture() (*DiaryService, *MockProfileRepository, *MockFoodLogRepository) {
	profiles := &MockProfileRepository{}
	log := &MockFoodLogRepository{}
	return NewDiaryService(profiles, log), profiles, log
}

func TestSaveProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("computes targets on save", func(t *testing.T) {
		svc, profiles, _ := newDiaryFixture()

		saved, err := svc.SaveProfile(ctx, referenceProfile())
		if err != nil {
			t.Fatalf("SaveProfile() error = %v", err)
		}
		if saved.Targets.DailyCalories != 2545 {
			t.Errorf("DailyCalories = %d, want 2545", saved.Targets.DailyCalories)
		}
		if profiles.profile == nil {
			t.Fatal("profile not persisted")
		}
		if profiles.profile.Targets != saved.Targets {
			t.Errorf("persisted targets %+v differ from returned %+v", profiles.profile.Targets, saved.Targets)
		}
	})

	t.Run("stale targets replaced on re-save", func(t *testing.T) {
		svc, profiles, _ := newDiaryFixture()

		p := referenceProfile()
		if _, err := svc.SaveProfile(ctx, p); err != nil {
			t.Fatalf("SaveProfile() error = %v", err)
		}
		first := profiles.profile.Targets

		p.WeightKg = 80
		if _, err := svc.SaveProfile(ctx, p); err != nil {
			t.Fatalf("SaveProfile() error = %v", err)
		}
		if profiles.profile.Targets == first {
			t.Error("targets unchanged after biometric edit and re-save")
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*domain.UserProfile)
		}{
			{"age too low", func(p *domain.UserProfile) { p.Age = 12 }},
			{"age too high", func(p *domain.UserProfile) { p.Age = 101 }},
			{"height too low", func(p *domain.UserProfile) { p.HeightCm = 100 }},
			{"weight too high", func(p *domain.UserProfile) { p.WeightKg = 250 }},
			{"bad sex", func(p *domain.UserProfile) { p.Sex = "robot" }},
			{"bad activity", func(p *domain.UserProfile) { p.ActivityLevel = "heroic" }},
			{"bad diet", func(p *domain.UserProfile) { p.DietType = "seefood" }},
			{"bad goal", func(p *domain.UserProfile) { p.Goal = "world domination" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, _, _ := newDiaryFixture()
				p := referenceProfile()
				tt.mutate(p)
				if _, err := svc.SaveProfile(ctx, p); !errors.Is(err, domain.ErrInvalidRequest) {
					t.Errorf("error = %v, want ErrInvalidRequest", err)
				}
			})
		}
	})
}

func TestTargets(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newDiaryFixture()

	t.Run("missing profile", func(t *testing.T) {
		if _, err := svc.Targets(ctx); !errors.Is(err, domain.ErrProfileNotFound) {
			t.Errorf("error = %v, want ErrProfileNotFound", err)
		}
	})

	t.Run("returns stored targets", func(t *testing.T) {
		if _, err := svc.SaveProfile(ctx, referenceProfile()); err != nil {
			t.Fatalf("SaveProfile() error = %v", err)
		}
		targets, err := svc.Targets(ctx)
		if err != nil {
			t.Fatalf("Targets() error = %v", err)
		}
		if targets.DailyCalories != 2545 {
			t.Errorf("DailyCalories = %d, want 2545", targets.DailyCalories)
		}
	})
}

func TestLogResolved(t *testing.T) {
	ctx := context.Background()

	resolved := &domain.ResolvedNutrients{
		Name:        "Nairn's Oatcakes",
		ServingSize: 30,
		ServingUnit: "g",
		Calories:    130,
		Protein:     3.1,
		Carbs:       17.9,
		Fat:         5.2,
		SourceID:    "5000169000001",
	}

	t.Run("logs with explicit date", func(t *testing.T) {
		svc, _, log := newDiaryFixture()

		at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
		entry, err := svc.LogResolved(ctx, resolved, "2025-06-01", at)
		if err != nil {
			t.Fatalf("LogResolved() error = %v", err)
		}
		if entry.ID == 0 {
			t.Error("entry id not assigned")
		}
		if entry.LogDate != "2025-06-01" {
			t.Errorf("LogDate = %q, want 2025-06-01", entry.LogDate)
		}
		if len(log.entries) != 1 {
			t.Errorf("stored %d entries, want 1", len(log.entries))
		}
	})

	t.Run("empty date defaults to today", func(t *testing.T) {
		svc, _, _ := newDiaryFixture()

		entry, err := svc.LogResolved(ctx, resolved, "", time.Time{})
		if err != nil {
			t.Fatalf("LogResolved() error = %v", err)
		}
		if entry.LogDate != time.Now().Format("2006-01-02") {
			t.Errorf("LogDate = %q, want today", entry.LogDate)
		}
		if entry.LoggedAt.IsZero() {
			t.Error("LoggedAt not defaulted")
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		svc, _, _ := newDiaryFixture()
		if _, err := svc.LogResolved(ctx, resolved, "June 1st", time.Time{}); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("rejects nil record", func(t *testing.T) {
		svc, _, _ := newDiaryFixture()
		if _, err := svc.LogResolved(ctx, nil, "", time.Time{}); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newDiaryFixture()

	resolved := &domain.ResolvedNutrients{Name: "A", ServingSize: 100, ServingUnit: "g", Calories: 100, Protein: 5, Carbs: 10, Fat: 2}
	other := &domain.ResolvedNutrients{Name: "B", ServingSize: 100, ServingUnit: "g", Calories: 250, Protein: 12, Carbs: 30, Fat: 8}

	for _, r := range []*domain.ResolvedNutrients{resolved, other} {
		if _, err := svc.LogResolved(ctx, r, "2025-06-01", time.Time{}); err != nil {
			t.Fatalf("LogResolved() error = %v", err)
		}
	}

	summary, err := svc.Summary(ctx, "2025-06-01")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.Entries != 2 {
		t.Errorf("Entries = %d, want 2", summary.Entries)
	}
	if summary.Calories != 350 {
		t.Errorf("Calories = %d, want 350", summary.Calories)
	}
	if summary.Protein != 17 {
		t.Errorf("Protein = %v, want 17", summary.Protein)
	}

	t.Run("delete removes from summary", func(t *testing.T) {
		entries, err := svc.Entries(ctx, "2025-06-01")
		if err != nil {
			t.Fatalf("Entries() error = %v", err)
		}
		if err := svc.DeleteEntry(ctx, entries[0].ID); err != nil {
			t.Fatalf("DeleteEntry() error = %v", err)
		}
		summary, err := svc.Summary(ctx, "2025-06-01")
		if err != nil {
			t.Fatalf("Summary() error = %v", err)
		}
		if summary.Entries != 1 {
			t.Errorf("Entries = %d, want 1", summary.Entries)
		}
	})
}

package usecase

import (
	"math"
	"testing"

	"github.com/nutrilog/backend/internal/domain"
)

func referenceProfile() *domain.UserProfile {
	return &domain.UserProfile{
		Age:           25,
		Sex:           domain.SexMale,
		HeightCm:      170,
		WeightKg:      70,
		Goal:          domain.GoalMaintain,
		ActivityLevel: domain.ActivityModerate,
		DietType:      domain.DietBalanced,
	}
}

func TestBasalMetabolicRate(t *testing.T) {
	p := referenceProfile()
	// 10×70 + 6.25×170 − 5×25 + 5 = 1642.5
	if got := BasalMetabolicRate(p); math.Abs(got-1642.5) > 1e-9 {
		t.Errorf("BMR = %v, want 1642.5", got)
	}

	p.Sex = domain.SexFemale
	if got := BasalMetabolicRate(p); math.Abs(got-1476.5) > 1e-9 {
		t.Errorf("female BMR = %v, want 1476.5", got)
	}
}

func TestTotalDailyEnergyExpenditure(t *testing.T) {
	p := referenceProfile()
	if got := TotalDailyEnergyExpenditure(p); math.Abs(got-2545.875) > 1e-9 {
		t.Errorf("TDEE = %v, want 2545.875", got)
	}

	p.ActivityLevel = "unknown"
	if got := TotalDailyEnergyExpenditure(p); math.Abs(got-1642.5*1.2) > 1e-9 {
		t.Errorf("TDEE with unknown activity = %v, want sedentary fallback", got)
	}
}

func TestCalculateTargets_Reference(t *testing.T) {
	got := CalculateTargets(referenceProfile())

	want := domain.MacroTargets{
		DailyCalories: 2545, // trunc(2545.875)
		CarbsGrams:    254,  // trunc(2545×0.40/4)
		ProteinGrams:  190,  // trunc(2545×0.30/4)
		FatGrams:      84,   // trunc(2545×0.30/9)
	}
	if got != want {
		t.Errorf("CalculateTargets() = %+v, want %+v", got, want)
	}
}

func TestCalculateTargets_GoalModifiers(t *testing.T) {
	tests := []struct {
		goal         domain.Goal
		wantCalories int
	}{
		{domain.GoalLose, 2045},        // 2545.875 − 500
		{domain.GoalMaintain, 2545},
		{domain.GoalGain, 2845},        // + 300
		{domain.GoalBuildMuscle, 2895}, // + 350
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			p := referenceProfile()
			p.Goal = tt.goal
			if got := CalculateTargets(p); got.DailyCalories != tt.wantCalories {
				t.Errorf("DailyCalories = %d, want %d", got.DailyCalories, tt.wantCalories)
			}
		})
	}
}

func TestCalculateTargets_DietSplits(t *testing.T) {
	tests := []struct {
		diet domain.DietType
		want domain.MacroTargets
	}{
		{domain.DietBalanced, domain.MacroTargets{DailyCalories: 2545, CarbsGrams: 254, ProteinGrams: 190, FatGrams: 84}},
		{domain.DietHighProtein, domain.MacroTargets{DailyCalories: 2545, CarbsGrams: 190, ProteinGrams: 254, FatGrams: 84}},
		{domain.DietKeto, domain.MacroTargets{DailyCalories: 2545, CarbsGrams: 31, ProteinGrams: 159, FatGrams: 197}},
		{domain.DietLowCarb, domain.MacroTargets{DailyCalories: 2545, CarbsGrams: 127, ProteinGrams: 222, FatGrams: 127}},
		{domain.DietLowFat, domain.MacroTargets{DailyCalories: 2545, CarbsGrams: 318, ProteinGrams: 190, FatGrams: 56}},
	}

	for _, tt := range tests {
		t.Run(string(tt.diet), func(t *testing.T) {
			p := referenceProfile()
			p.DietType = tt.diet
			if got := CalculateTargets(p); got != tt.want {
				t.Errorf("CalculateTargets() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateTargets_OutOfRangeDoesNotPanic(t *testing.T) {
	p := &domain.UserProfile{
		Age:      150,
		Sex:      "other",
		HeightCm: -10,
		WeightKg: 0,
	}

	// Mathematically consistent, possibly nonsensical, but no panic.
	got := CalculateTargets(p)
	if got.DailyCalories > 0 {
		t.Logf("targets for nonsense profile: %+v", got)
	}
}

func TestCalculateTargets_Deterministic(t *testing.T) {
	p := referenceProfile()
	first := CalculateTargets(p)
	second := CalculateTargets(p)
	if first != second {
		t.Errorf("repeated calculation differs: %+v vs %+v", first, second)
	}
}

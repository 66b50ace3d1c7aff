package usecase

import "github.com/nutrilog/backend/internal/domain"

// activityMultipliers maps activity levels to their TDEE multiplier. This is
// the single source of truth for valid levels; handlers validate against it.
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:       1.2,
	domain.ActivityLight:           1.375,
	domain.ActivityModerate:        1.55,
	domain.ActivityVeryActive:      1.725,
	domain.ActivityExtremelyActive: 1.9,
}

// goalModifiers is the daily calorie adjustment applied on top of TDEE.
var goalModifiers = map[domain.Goal]float64{
	domain.GoalLose:        -500,
	domain.GoalMaintain:    0,
	domain.GoalGain:        300,
	domain.GoalBuildMuscle: 350,
}

type macroSplit struct {
	Carb    float64
	Protein float64
	Fat     float64
}

// dietSplits maps each diet type to its (carb, protein, fat) calorie ratio
// triple. Each triple sums to 1.0.
var dietSplits = map[domain.DietType]macroSplit{
	domain.DietBalanced:    {Carb: 0.40, Protein: 0.30, Fat: 0.30},
	domain.DietHighProtein: {Carb: 0.30, Protein: 0.40, Fat: 0.30},
	domain.DietKeto:        {Carb: 0.05, Protein: 0.25, Fat: 0.70},
	domain.DietLowCarb:     {Carb: 0.20, Protein: 0.35, Fat: 0.45},
	domain.DietLowFat:      {Carb: 0.50, Protein: 0.30, Fat: 0.20},
}

const (
	kcalPerGramCarb    = 4
	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
)

// BasalMetabolicRate computes BMR via Mifflin-St Jeor.
func BasalMetabolicRate(p *domain.UserProfile) float64 {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Sex == domain.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr
}

// TotalDailyEnergyExpenditure scales BMR by the activity multiplier. An
// unrecognized activity level falls back to sedentary rather than failing.
func TotalDailyEnergyExpenditure(p *domain.UserProfile) float64 {
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = activityMultipliers[domain.ActivitySedentary]
	}
	return BasalMetabolicRate(p) * mult
}

// CalculateTargets derives daily calorie and macro targets from a profile.
// It is a pure function: the caller persists the returned value. Target
// calories and each macro's grams are truncated, never rounded.
//
// Inputs are assumed pre-constrained by the edit form; out-of-range values
// still produce a mathematically consistent result.
func CalculateTargets(p *domain.UserProfile) domain.MacroTargets {
	tdee := TotalDailyEnergyExpenditure(p)
	targetCalories := int(tdee + goalModifiers[p.Goal])

	split, ok := dietSplits[p.DietType]
	if !ok {
		split = dietSplits[domain.DietBalanced]
	}

	return domain.MacroTargets{
		DailyCalories: targetCalories,
		CarbsGrams:    int(float64(targetCalories) * split.Carb / kcalPerGramCarb),
		ProteinGrams:  int(float64(targetCalories) * split.Protein / kcalPerGramProtein),
		FatGrams:      int(float64(targetCalories) * split.Fat / kcalPerGramFat),
	}
}

package domain

import "time"

// Sex is the biological sex used by the BMR formula.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Goal selects the calorie adjustment applied on top of TDEE.
type Goal string

const (
	GoalLose        Goal = "lose"
	GoalMaintain    Goal = "maintain"
	GoalGain        Goal = "gain"
	GoalBuildMuscle Goal = "build_muscle"
)

// ActivityLevel selects the TDEE multiplier.
type ActivityLevel string

const (
	ActivitySedentary       ActivityLevel = "sedentary"
	ActivityLight           ActivityLevel = "light"
	ActivityModerate        ActivityLevel = "moderate"
	ActivityVeryActive      ActivityLevel = "very_active"
	ActivityExtremelyActive ActivityLevel = "extremely_active"
)

// DietType selects the macro ratio split.
type DietType string

const (
	DietBalanced    DietType = "balanced"
	DietHighProtein DietType = "high_protein"
	DietKeto        DietType = "keto"
	DietLowCarb     DietType = "low_carb"
	DietLowFat      DietType = "low_fat"
)

// UserProfile is the single per-installation profile: biometrics, display
// preferences and goal selections, plus the last computed targets. Targets are
// only written by the save flow after an explicit recalculation; they are not
// kept in sync with biometric edits automatically.
type UserProfile struct {
	Age      int     `json:"age"`
	Sex      Sex     `json:"sex"`
	HeightCm float64 `json:"heightCm"`
	WeightKg float64 `json:"weightKg"`

	// Display preferences for height and weight are independent toggles.
	HeightImperial bool `json:"heightImperial"`
	WeightImperial bool `json:"weightImperial"`

	Goal          Goal          `json:"goal"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	DietType      DietType      `json:"dietType"`

	Targets MacroTargets `json:"targets"`
}

// MacroTargets are the derived daily targets.
type MacroTargets struct {
	DailyCalories int `json:"dailyCalories"`
	ProteinGrams  int `json:"proteinGrams"`
	CarbsGrams    int `json:"carbsGrams"`
	FatGrams      int `json:"fatGrams"`
}

// FoodLogEntry is one logged food. LogDate is day-granular (YYYY-MM-DD);
// LoggedAt orders entries within a day. Nutrient fields mirror
// ResolvedNutrients and are per the logged serving.
type FoodLogEntry struct {
	ID       int64     `json:"id"`
	LogDate  string    `json:"logDate"`
	LoggedAt time.Time `json:"loggedAt"`

	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`

	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	Extended ExtendedNutrients `json:"extended"`

	SourceID string `json:"sourceId,omitempty"`
}

// DaySummary aggregates the diary for one date.
type DaySummary struct {
	Date     string  `json:"date"`
	Entries  int     `json:"entries"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

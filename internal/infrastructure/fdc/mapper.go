package fdc

import "github.com/nutrilog/backend/internal/domain"

// FDC nutrient IDs for the key macronutrients. Search hits carry these flat
// ids, unlike detail records which are resolved by nutrient name.
const (
	NutrientIDEnergy       = 1008 // Calories (kcal)
	NutrientIDProtein      = 1003 // Protein (g)
	NutrientIDCarbohydrate = 1005 // Carbohydrates (g)
	NutrientIDTotalFat     = 1004 // Total Fat (g)
)

// MapSearchFood converts an FDC search hit to a search result with per-100g
// macros. Nutrients missing from the hit default to zero.
func MapSearchFood(food *domain.FDCSearchFood) *domain.FoodSearchResult {
	result := &domain.FoodSearchResult{
		FDCID:       food.FDCID,
		Description: food.Description,
		BrandOwner:  food.BrandOwner,
		DataType:    food.DataType,
	}

	for _, nutrient := range food.FoodNutrients {
		switch nutrient.NutrientID {
		case NutrientIDEnergy:
			result.Calories = nutrient.Value
		case NutrientIDProtein:
			result.Protein = nutrient.Value
		case NutrientIDCarbohydrate:
			result.Carbs = nutrient.Value
		case NutrientIDTotalFat:
			result.Fat = nutrient.Value
		}
	}

	return result
}

// FindNutrientValue finds a specific nutrient value by id in a search hit.
func FindNutrientValue(nutrients []domain.FDCSearchNutrient, nutrientID int64) float64 {
	for _, nutrient := range nutrients {
		if nutrient.NutrientID == nutrientID {
			return nutrient.Value
		}
	}
	return 0.0
}

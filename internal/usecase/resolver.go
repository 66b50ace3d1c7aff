package usecase

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/nutrilog/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	parenGroupRegex = regexp.MustCompile(`\(([^)]*)\)`)
	amountUnitRegex = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(grams?|g|millilit(?:er|re)s?|ml)\b`)
	bareNumberRegex = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
)

// Label conversion constants for the salt/sodium cross-derivation. These are
// the standard EU label factors and are intentionally not reciprocal of each
// other; both are fixed policy values.
const (
	sodiumToSaltFactor = 2.5
	saltToSodiumFactor = 0.393
)

const unknownProductName = "Unknown Product"

// extendedNutrimentKeys maps Open Food Facts nutriment base keys onto the
// canonical extended-nutrient fields. OFF reports these values in grams, which
// is also the storage unit, so no scaling beyond the serving factor applies.
var extendedNutrimentKeys = []struct {
	key string
	dst func(*domain.ExtendedNutrients) **float64
}{
	{"sugars", func(e *domain.ExtendedNutrients) **float64 { return &e.Sugars }},
	{"fiber", func(e *domain.ExtendedNutrients) **float64 { return &e.Fiber }},
	{"saturated-fat", func(e *domain.ExtendedNutrients) **float64 { return &e.SaturatedFat }},
	{"trans-fat", func(e *domain.ExtendedNutrients) **float64 { return &e.TransFat }},
	{"monounsaturated-fat", func(e *domain.ExtendedNutrients) **float64 { return &e.MonounsaturatedFat }},
	{"polyunsaturated-fat", func(e *domain.ExtendedNutrients) **float64 { return &e.PolyunsaturatedFat }},
	{"cholesterol", func(e *domain.ExtendedNutrients) **float64 { return &e.Cholesterol }},
	{"sodium", func(e *domain.ExtendedNutrients) **float64 { return &e.Sodium }},
	{"salt", func(e *domain.ExtendedNutrients) **float64 { return &e.Salt }},
	{"potassium", func(e *domain.ExtendedNutrients) **float64 { return &e.Potassium }},
	{"calcium", func(e *domain.ExtendedNutrients) **float64 { return &e.Calcium }},
	{"iron", func(e *domain.ExtendedNutrients) **float64 { return &e.Iron }},
	{"magnesium", func(e *domain.ExtendedNutrients) **float64 { return &e.Magnesium }},
	{"phosphorus", func(e *domain.ExtendedNutrients) **float64 { return &e.Phosphorus }},
	{"zinc", func(e *domain.ExtendedNutrients) **float64 { return &e.Zinc }},
	{"selenium", func(e *domain.ExtendedNutrients) **float64 { return &e.Selenium }},
	{"copper", func(e *domain.ExtendedNutrients) **float64 { return &e.Copper }},
	{"manganese", func(e *domain.ExtendedNutrients) **float64 { return &e.Manganese }},
	{"chromium", func(e *domain.ExtendedNutrients) **float64 { return &e.Chromium }},
	{"molybdenum", func(e *domain.ExtendedNutrients) **float64 { return &e.Molybdenum }},
	{"iodine", func(e *domain.ExtendedNutrients) **float64 { return &e.Iodine }},
	{"chloride", func(e *domain.ExtendedNutrients) **float64 { return &e.Chloride }},
	{"vitamin-a", func(e *domain.ExtendedNutrients) **float64 { return &e.VitaminA }},
	{"vitamin-c", func(e *domain.ExtendedNutrients) **float64 { return &e.VitaminC }},
	{"vitamin-d", func(e *domain.ExtendedNutrients) **float64 { return &e.VitaminD }},
	{"vitamin-e", func(e *domain.ExtendedNutrients) **float64 { return &e.VitaminE }},
	{"vitamin-k", func(e *domain.ExtendedNutrients) **float64 { return &e.VitaminK }},
	{"vitamin-b1", func(e *domain.ExtendedNutrients) **float64 { return &e.Thiamin }},
	{"vitamin-b2", func(e *domain.ExtendedNutrients) **float64 { return &e.Riboflavin }},
	{"vitamin-pp", func(e *domain.ExtendedNutrients) **float64 { return &e.Niacin }},
	{"pantothenic-acid", func(e *domain.ExtendedNutrients) **float64 { return &e.PantothenicAcid }},
	{"vitamin-b6", func(e *domain.ExtendedNutrients) **float64 { return &e.VitaminB6 }},
	{"biotin", func(e *domain.ExtendedNutrients) **float64 { return &e.Biotin }},
	{"folates", func(e *domain.ExtendedNutrients) **float64 { return &e.Folate }},
	{"vitamin-b12", func(e *domain.ExtendedNutrients) **float64 { return &e.VitaminB12 }},
	{"choline", func(e *domain.ExtendedNutrients) **float64 { return &e.Choline }},
}

// ResolveBarcodeProduct converts a raw Open Food Facts payload into the
// canonical nutrient record. It never fails: missing fields degrade to zero
// (for the four mandatory macros), nil (for extended nutrients) or the
// 100g/"g" default serving. fallbackID is used as the source id when the
// payload carries no product code.
func ResolveBarcodeProduct(product *domain.BarcodeProduct, fallbackID string) *domain.ResolvedNutrients {
	if product == nil {
		product = &domain.BarcodeProduct{}
	}

	servingSize, servingUnit := parseServingText(product.ServingSize)
	factor := servingSize / 100

	resolved := &domain.ResolvedNutrients{
		Name:        resolveDisplayName(product.ProductName, product.Brands),
		Brand:       strings.TrimSpace(product.Brands),
		ServingSize: servingSize,
		ServingUnit: servingUnit,
		SourceID:    product.Code,
	}
	if resolved.SourceID == "" {
		resolved.SourceID = fallbackID
	}

	n := product.Nutriments
	resolved.Calories = int(math.Round(mandatoryNutriment(n, "energy-kcal", factor)))
	resolved.Protein = mandatoryNutriment(n, "proteins", factor)
	resolved.Carbs = mandatoryNutriment(n, "carbohydrates", factor)
	resolved.Fat = mandatoryNutriment(n, "fat", factor)

	for _, field := range extendedNutrimentKeys {
		*field.dst(&resolved.Extended) = nutrimentValue(n, field.key, factor)
	}
	deriveSaltSodium(&resolved.Extended)

	return resolved
}

// resolveDisplayName picks a display name from the product name and brand
// field. When both exist the name is prefixed with the first comma-separated
// brand token.
func resolveDisplayName(name, brands string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		if brands != "" {
			brand := strings.TrimSpace(strings.SplitN(brands, ",", 2)[0])
			if brand != "" {
				return brand + " " + name
			}
		}
		return name
	}
	if brands != "" {
		return brands
	}
	return unknownProductName
}

// parseServingText extracts a serving amount and unit from free text such as
// "30 g (1 piece)". Resolution order: number+unit inside parentheses, then
// number+unit against the whole string, then the first bare number with grams
// assumed, then the 100g default.
func parseServingText(text string) (float64, string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 100, "g"
	}

	for _, group := range parenGroupRegex.FindAllStringSubmatch(text, -1) {
		if amount, unit, ok := matchAmountUnit(group[1]); ok {
			return amount, unit
		}
	}
	if amount, unit, ok := matchAmountUnit(text); ok {
		return amount, unit
	}
	if m := bareNumberRegex.FindString(text); m != "" {
		if amount, ok := parseAmount(m); ok {
			return amount, "g"
		}
	}
	return 100, "g"
}

func matchAmountUnit(text string) (float64, string, bool) {
	m := amountUnitRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, "", false
	}
	amount, ok := parseAmount(m[1])
	if !ok {
		return 0, "", false
	}
	unit := "g"
	if strings.HasPrefix(strings.ToLower(m[2]), "m") {
		unit = "ml"
	}
	return amount, unit, true
}

func parseAmount(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// nutrimentValue resolves one nutrient from the three OFF key variants:
// explicit per-serving first, then per-100g and the bare value scaled by the
// serving factor. Returns nil when no variant is present.
func nutrimentValue(n map[string]any, key string, factor float64) *float64 {
	if v, ok := floatValue(n[key+"_serving"]); ok {
		return &v
	}
	if v, ok := floatValue(n[key+"_100g"]); ok {
		v *= factor
		return &v
	}
	if v, ok := floatValue(n[key]); ok {
		v *= factor
		return &v
	}
	return nil
}

// mandatoryNutriment is nutrimentValue with a zero default, for the four
// macros that are always populated on the canonical record. Energy falls back
// to kilojoules when no kcal variant exists.
func mandatoryNutriment(n map[string]any, key string, factor float64) float64 {
	if v := nutrimentValue(n, key, factor); v != nil {
		return *v
	}
	if key == "energy-kcal" {
		if v := nutrimentValue(n, "energy-kj", factor); v != nil {
			return *v / 4.184
		}
	}
	return 0
}

// deriveSaltSodium fills whichever of salt/sodium is missing from the other.
// Both stay as reported when both are present, and both stay absent when
// neither is.
func deriveSaltSodium(e *domain.ExtendedNutrients) {
	switch {
	case e.Sodium != nil && e.Salt == nil:
		v := *e.Sodium * sodiumToSaltFactor
		e.Salt = &v
	case e.Salt != nil && e.Sodium == nil:
		v := *e.Salt * saltToSodiumFactor
		e.Sodium = &v
	}
}

// floatValue coerces the loosely typed nutriment values OFF returns (numbers,
// json.Number, numeric strings) into a float64.
func floatValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// ResolveFDCFood extracts the four macros from an FDC detail record by
// nutrient-name matching. Missing categories resolve to zero, never an error.
// The serving fields pass through the first listed portion when one exists.
func ResolveFDCFood(food *domain.FDCFood) domain.MacroSummary {
	summary := domain.MacroSummary{}
	if food == nil {
		return summary
	}

	summary.Calories = int(math.Round(findNutrientAmount(food.FoodNutrients, "energy")))
	summary.Protein = findNutrientAmount(food.FoodNutrients, "protein")
	summary.Fat = findNutrientAmount(food.FoodNutrients, "total lipid")
	summary.Carbs = findCarbohydrateAmount(food.FoodNutrients)

	if len(food.FoodPortions) > 0 {
		portion := food.FoodPortions[0]
		grams := portion.GramWeight
		summary.ServingSize = &grams
		summary.ServingUnit = portionUnit(portion)
	}

	return summary
}

// findNutrientAmount returns the first nutrient whose name contains the given
// substring, case-insensitively.
func findNutrientAmount(nutrients []domain.FDCNutrient, substr string) float64 {
	for _, n := range nutrients {
		if strings.Contains(strings.ToLower(n.Nutrient.Name), substr) {
			return n.Amount
		}
	}
	return 0
}

// findCarbohydrateAmount prefers the exact "Carbohydrate, by difference"
// entry over any other name containing "carbohydrate".
func findCarbohydrateAmount(nutrients []domain.FDCNutrient) float64 {
	for _, n := range nutrients {
		if strings.EqualFold(n.Nutrient.Name, "Carbohydrate, by difference") {
			return n.Amount
		}
	}
	return findNutrientAmount(nutrients, "carbohydrate")
}

func portionUnit(p domain.FDCPortion) string {
	if m := strings.TrimSpace(p.Modifier); m != "" {
		return m
	}
	return strings.TrimSpace(p.MeasureUnit.Name)
}

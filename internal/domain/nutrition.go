package domain

// ResolvedNutrients is the canonical nutrient record produced from a raw
// provider payload. All values are per serving; extended nutrient amounts are
// stored in grams regardless of how a provider or the display layer units them.
type ResolvedNutrients struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`

	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	Extended ExtendedNutrients `json:"extended"`

	SourceID string `json:"sourceId"`
}

// ExtendedNutrients carries the optional nutrient fields. A nil pointer means
// the source did not report the nutrient; zero is a reported value of zero.
// Every amount is grams.
type ExtendedNutrients struct {
	Sugars             *float64 `json:"sugars,omitempty"`
	Fiber              *float64 `json:"fiber,omitempty"`
	SaturatedFat       *float64 `json:"saturatedFat,omitempty"`
	TransFat           *float64 `json:"transFat,omitempty"`
	MonounsaturatedFat *float64 `json:"monounsaturatedFat,omitempty"`
	PolyunsaturatedFat *float64 `json:"polyunsaturatedFat,omitempty"`
	Cholesterol        *float64 `json:"cholesterol,omitempty"`
	Sodium             *float64 `json:"sodium,omitempty"`
	Salt               *float64 `json:"salt,omitempty"`
	Potassium          *float64 `json:"potassium,omitempty"`
	Calcium            *float64 `json:"calcium,omitempty"`
	Iron               *float64 `json:"iron,omitempty"`
	Magnesium          *float64 `json:"magnesium,omitempty"`
	Phosphorus         *float64 `json:"phosphorus,omitempty"`
	Zinc               *float64 `json:"zinc,omitempty"`
	Selenium           *float64 `json:"selenium,omitempty"`
	Copper             *float64 `json:"copper,omitempty"`
	Manganese          *float64 `json:"manganese,omitempty"`
	Chromium           *float64 `json:"chromium,omitempty"`
	Molybdenum         *float64 `json:"molybdenum,omitempty"`
	Iodine             *float64 `json:"iodine,omitempty"`
	Chloride           *float64 `json:"chloride,omitempty"`
	VitaminA           *float64 `json:"vitaminA,omitempty"`
	VitaminC           *float64 `json:"vitaminC,omitempty"`
	VitaminD           *float64 `json:"vitaminD,omitempty"`
	VitaminE           *float64 `json:"vitaminE,omitempty"`
	VitaminK           *float64 `json:"vitaminK,omitempty"`
	Thiamin            *float64 `json:"thiamin,omitempty"`
	Riboflavin         *float64 `json:"riboflavin,omitempty"`
	Niacin             *float64 `json:"niacin,omitempty"`
	PantothenicAcid    *float64 `json:"pantothenicAcid,omitempty"`
	VitaminB6          *float64 `json:"vitaminB6,omitempty"`
	Biotin             *float64 `json:"biotin,omitempty"`
	Folate             *float64 `json:"folate,omitempty"`
	VitaminB12         *float64 `json:"vitaminB12,omitempty"`
	Choline            *float64 `json:"choline,omitempty"`
}

// BarcodeProduct is the raw Open Food Facts product payload for one barcode.
// Nutriments stays a loose map because every nutrient can appear as up to
// three key variants: a bare value, "<key>_100g" and "<key>_serving".
type BarcodeProduct struct {
	Code        string         `json:"code"`
	ProductName string         `json:"product_name"`
	Brands      string         `json:"brands"`
	ServingSize string         `json:"serving_size"`
	Nutriments  map[string]any `json:"nutriments"`
}

// BarcodeLookupResponse is the envelope returned by the Open Food Facts
// product endpoint. Status 1 means the barcode was found.
type BarcodeLookupResponse struct {
	Status  int            `json:"status"`
	Product BarcodeProduct `json:"product"`
}

// FDCFood is a detail record from the USDA FoodData Central API.
type FDCFood struct {
	FDCID         int64         `json:"fdcId"`
	Description   string        `json:"description"`
	BrandOwner    string        `json:"brandOwner,omitempty"`
	DataType      string        `json:"dataType,omitempty"`
	FoodNutrients []FDCNutrient `json:"foodNutrients"`
	FoodPortions  []FDCPortion  `json:"foodPortions"`
}

// FDCNutrient is one nutrient measurement on an FDC detail record.
type FDCNutrient struct {
	Nutrient FDCNutrientRef `json:"nutrient"`
	Amount   float64        `json:"amount"`
}

// FDCNutrientRef identifies the nutrient being measured.
type FDCNutrientRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	UnitName string `json:"unitName"`
}

// FDCPortion is a household portion definition on an FDC detail record.
type FDCPortion struct {
	GramWeight  float64        `json:"gramWeight"`
	Modifier    string         `json:"modifier"`
	MeasureUnit FDCMeasureUnit `json:"measureUnit"`
}

// FDCMeasureUnit names the measure a portion is expressed in (e.g. "cup").
type FDCMeasureUnit struct {
	Name string `json:"name"`
}

// FDCSearchFood is a search hit from the FDC search endpoint. Unlike detail
// records, search hits carry a flat nutrient list keyed by nutrient id.
type FDCSearchFood struct {
	FDCID         int64               `json:"fdcId"`
	Description   string              `json:"description"`
	BrandOwner    string              `json:"brandOwner,omitempty"`
	DataType      string              `json:"dataType,omitempty"`
	FoodNutrients []FDCSearchNutrient `json:"foodNutrients"`
}

// FDCSearchNutrient is one flat nutrient entry on a search hit.
type FDCSearchNutrient struct {
	NutrientID   int64   `json:"nutrientId"`
	NutrientName string  `json:"nutrientName"`
	UnitName     string  `json:"unitName"`
	Value        float64 `json:"value"`
}

// FDCSearchResponse is the envelope of the FDC search endpoint.
type FDCSearchResponse struct {
	Foods       []FDCSearchFood `json:"foods"`
	TotalHits   int             `json:"totalHits"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
}

// MacroSummary is the macro-only resolution of an FDC detail record. The
// serving fields come from the food's first listed portion and stay nil/empty
// when the record lists no portions.
type MacroSummary struct {
	Calories    int      `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	ServingSize *float64 `json:"servingSize,omitempty"`
	ServingUnit string   `json:"servingUnit,omitempty"`
}

// FoodSearchResult is a search hit mapped for API consumers: identity plus
// per-100g macros.
type FoodSearchResult struct {
	FDCID       int64   `json:"fdcId"`
	Description string  `json:"description"`
	BrandOwner  string  `json:"brandOwner,omitempty"`
	DataType    string  `json:"dataType,omitempty"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

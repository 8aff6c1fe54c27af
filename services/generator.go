package services

import "context"

// FoodLookupResult is the per-100g macro profile the generator returns
// for a named food. Never persisted; the caller scales it by
// amount_grams/100 to get entry-level values.
type FoodLookupResult struct {
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
}

// SuggestionRequest carries the remaining budget for a meal slot. The
// remaining values are target minus consumed and may be negative when a
// target has been exceeded. That is passed through as a signal to the
// generator, not clamped.
type SuggestionRequest struct {
	UserID             string   `json:"user_id"`
	Date               string   `json:"current_date"`
	RemainingCalories  float64  `json:"remaining_calories"`
	RemainingProtein   float64  `json:"remaining_protein"`
	RemainingCarbs     float64  `json:"remaining_carbs"`
	RemainingFat       float64  `json:"remaining_fat"`
	MealType           string   `json:"meal_type"`
	DietaryPreferences []string `json:"dietary_preferences"`
}

// Suggestion is one proposed food. Converted to a meal entry only by an
// explicit client submission, with these exact numbers.
type Suggestion struct {
	FoodName    string  `json:"food_name"`
	AmountGrams float64 `json:"amount_grams"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Reason      string  `json:"reason"`
}

// Generator is the narrow seam in front of the external AI service so
// everything above it can be tested with a deterministic stand-in.
// Suggestions come back in the order the generator produced them; any
// ranking is the generator's business.
type Generator interface {
	LookupFood(ctx context.Context, foodName string) (*FoodLookupResult, error)
	SuggestMeals(ctx context.Context, req SuggestionRequest) ([]Suggestion, error)
}

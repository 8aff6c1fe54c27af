package utils

import "math"

// Caloric density: kcal per gram of each macronutrient.
const (
	ProteinCaloriesPerGram = 4.0
	CarbCaloriesPerGram    = 4.0
	FatCaloriesPerGram     = 9.0
)

// MacroTargets converts a calorie target and macro split into gram
// targets: target_grams = (calorie_target * split_pct / 100) / density.
// The split percentages are used exactly as given, summing to 100 or not.
func MacroTargets(calorieTarget, proteinPct, carbsPct, fatPct int) (proteinG, carbsG, fatG float64) {
	ct := float64(calorieTarget)
	proteinG = ct * float64(proteinPct) / 100 / ProteinCaloriesPerGram
	carbsG = ct * float64(carbsPct) / 100 / CarbCaloriesPerGram
	fatG = ct * float64(fatPct) / 100 / FatCaloriesPerGram
	return
}

// PercentOfCalories reports how much of totalCalories a macro accounts
// for, rounded half away from zero. Zero when totalCalories is zero so
// an empty day never divides by zero.
func PercentOfCalories(macroGrams, density, totalCalories float64) int {
	if totalCalories <= 0 {
		return 0
	}
	return int(math.Round(macroGrams * density / totalCalories * 100))
}

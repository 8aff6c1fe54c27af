package services

import (
	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/config"
	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/models"

	"github.com/google/uuid"
)

type FoodInput struct {
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
}

func CreateFood(in FoodInput) (*models.FoodItem, error) {
	if in.Name == "" {
		return nil, validationErr("name is required")
	}
	food := &models.FoodItem{
		ID:              uuid.NewString(),
		Name:            in.Name,
		CaloriesPer100g: in.CaloriesPer100g,
		ProteinPer100g:  in.ProteinPer100g,
		CarbsPer100g:    in.CarbsPer100g,
		FatPer100g:      in.FatPer100g,
	}
	if err := config.DB.Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

func ListFoods() ([]models.FoodItem, error) {
	foods := []models.FoodItem{}
	err := config.DB.Order("name asc").Limit(100).Find(&foods).Error
	return foods, err
}

// SearchFoods matches food names case-insensitively on a substring.
func SearchFoods(query string) ([]models.FoodItem, error) {
	foods := []models.FoodItem{}
	err := config.DB.
		Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%").
		Limit(20).
		Find(&foods).Error
	return foods, err
}

// Per-100g macros for the common foods the frontend offers before any
// custom lookups happen.
var commonFoods = []FoodInput{
	{Name: "Chicken Breast", CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6},
	{Name: "Brown Rice", CaloriesPer100g: 111, ProteinPer100g: 2.6, CarbsPer100g: 23, FatPer100g: 0.9},
	{Name: "Avocado", CaloriesPer100g: 160, ProteinPer100g: 2, CarbsPer100g: 9, FatPer100g: 15},
	{Name: "Banana", CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 23, FatPer100g: 0.3},
	{Name: "Salmon", CaloriesPer100g: 208, ProteinPer100g: 25, CarbsPer100g: 0, FatPer100g: 12},
	{Name: "Greek Yogurt", CaloriesPer100g: 59, ProteinPer100g: 10, CarbsPer100g: 3.6, FatPer100g: 0.4},
	{Name: "Oats", CaloriesPer100g: 389, ProteinPer100g: 16.9, CarbsPer100g: 66, FatPer100g: 6.9},
	{Name: "Eggs", CaloriesPer100g: 155, ProteinPer100g: 13, CarbsPer100g: 1.1, FatPer100g: 11},
	{Name: "Broccoli", CaloriesPer100g: 34, ProteinPer100g: 2.8, CarbsPer100g: 7, FatPer100g: 0.4},
	{Name: "Sweet Potato", CaloriesPer100g: 86, ProteinPer100g: 1.6, CarbsPer100g: 20, FatPer100g: 0.1},
}

// PopulateFoodDatabase seeds the reference table. Returns how many foods
// were inserted.
func PopulateFoodDatabase() (int, error) {
	for _, f := range commonFoods {
		if _, err := CreateFood(f); err != nil {
			return 0, err
		}
	}
	return len(commonFoods), nil
}

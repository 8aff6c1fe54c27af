package models

import "time"

// A reference food with per-100g macros, used by the client to pre-fill
// meal entries without an AI round trip.
type FoodItem struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name            string    `gorm:"index;not null" json:"name"`
	CaloriesPer100g float64   `json:"calories_per_100g"`
	ProteinPer100g  float64   `json:"protein_per_100g"`
	CarbsPer100g    float64   `json:"carbs_per_100g"`
	FatPer100g      float64   `json:"fat_per_100g"`
	CreatedAt       time.Time `json:"created_at"`
}

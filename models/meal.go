package models

import "time"

// Recognized meal slots.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// MealEntry is one logged food with its nutrition snapshot. Entries are
// immutable once created: the stored macros are whatever the client
// submitted, never recomputed from a food record.
type MealEntry struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(36);index;not null" json:"user_id"`
	FoodName    string    `gorm:"not null" json:"food_name"`
	AmountGrams float64   `json:"amount_grams"`
	MealType    string    `json:"meal_type"` // breakfast|lunch|dinner|snack
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	Date        string    `gorm:"type:varchar(10);index" json:"date"` // YYYY-MM-DD, stamped at creation
	CreatedAt   time.Time `json:"created_at"`
}

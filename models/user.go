package models

import "time"

// MacroSplit is the percentage allocation of daily calories across the
// three macronutrients. Stored exactly as submitted; the split is not
// required to sum to 100.
type MacroSplit struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// User holds one profile: the daily targets and preferences every other
// endpoint reads from.
type User struct {
	ID                 string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name               string     `gorm:"not null" json:"name"`
	Age                int        `json:"age"`
	Gender             string     `json:"gender"`         // "male" | "female"
	ActivityLevel      string     `json:"activity_level"` // sedentary … very_active
	Goal               string     `json:"goal"`           // fat_loss | maintenance | muscle_gain
	DailyCalorieTarget int        `json:"daily_calorie_target"`
	MacroSplit         MacroSplit `gorm:"embedded;embeddedPrefix:split_" json:"macro_split"`
	DietaryPreferences []string   `gorm:"serializer:json" json:"dietary_preferences"`
	CreatedAt          time.Time  `json:"created_at"`
}

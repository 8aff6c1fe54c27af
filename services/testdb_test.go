package services

import (
	"fmt"
	"testing"

	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/config"
	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points config.DB at a fresh in-memory sqlite database,
// one per test so nothing leaks between them.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.FoodItem{}, &models.MealEntry{}))

	config.DB = db
}

func createTestUser(t *testing.T) *models.User {
	t.Helper()

	user, err := CreateUser(UserInput{
		Name:               "Jordan",
		Age:                30,
		Gender:             "male",
		ActivityLevel:      "moderate",
		Goal:               "fat_loss",
		DailyCalorieTarget: 2000,
		MacroSplit:         models.MacroSplit{Protein: 30, Carbs: 40, Fat: 30},
		DietaryPreferences: []string{"vegetarian"},
	})
	require.NoError(t, err)
	return user
}

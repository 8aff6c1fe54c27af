package services

import (
	"errors"

	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/config"
	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserInput struct {
	Name               string            `json:"name"`
	Age                int               `json:"age"`
	Gender             string            `json:"gender"`
	ActivityLevel      string            `json:"activity_level"`
	Goal               string            `json:"goal"`
	DailyCalorieTarget int               `json:"daily_calorie_target"`
	MacroSplit         models.MacroSplit `json:"macro_split"`
	DietaryPreferences []string          `json:"dietary_preferences"`
}

// CreateUser validates the numeric fields and persists a new profile.
// The macro split is stored as submitted; percentages that don't sum
// to 100 are a caller problem, target math just uses the values given.
func CreateUser(in UserInput) (*models.User, error) {
	if in.Name == "" {
		return nil, validationErr("name is required")
	}
	if in.Age <= 0 {
		return nil, validationErr("age must be positive")
	}
	if in.DailyCalorieTarget <= 0 {
		return nil, validationErr("daily_calorie_target must be positive")
	}

	prefs := in.DietaryPreferences
	if prefs == nil {
		prefs = []string{}
	}

	user := &models.User{
		ID:                 uuid.NewString(),
		Name:               in.Name,
		Age:                in.Age,
		Gender:             in.Gender,
		ActivityLevel:      in.ActivityLevel,
		Goal:               in.Goal,
		DailyCalorieTarget: in.DailyCalorieTarget,
		MacroSplit:         in.MacroSplit,
		DietaryPreferences: prefs,
	}
	if err := config.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func GetUser(id string) (*models.User, error) {
	var user models.User
	err := config.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every stored profile. The client uses this on load
// to find an existing profile instead of onboarding again.
func ListUsers() ([]models.User, error) {
	var users []models.User
	err := config.DB.Order("created_at asc").Find(&users).Error
	return users, err
}

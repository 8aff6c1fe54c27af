package config

import (
	"fmt"
	"os"

	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		zap.L().Warn("no .env file found, relying on process environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("failed to connect to database", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.MealEntry{},
	)
	if err != nil {
		zap.L().Fatal("AutoMigrate failed", zap.Error(err))
	}
}

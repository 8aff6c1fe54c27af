package main

import (
	"os"

	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/config"
	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/routes"
	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/services"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.InitDB()

	gen := services.NewGeminiService()
	r := routes.SetupRouter(gen)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		zap.L().Fatal("server exited", zap.Error(err))
	}
}

package routes

import (
	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/controllers"
	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/middlewares"
	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(gen services.Generator) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.CORS())

	ai := controllers.NewAIController(gen)

	api := r.Group("/api")
	{
		api.POST("/users", controllers.CreateUser)
		api.GET("/users", controllers.ListUsers)
		api.GET("/users/:id", controllers.GetUser)

		api.POST("/foods", controllers.CreateFood)
		api.GET("/foods", controllers.ListFoods)
		api.GET("/foods/search/:query", controllers.SearchFoods)
		api.POST("/populate-food-database", controllers.PopulateFoodDatabase)

		api.POST("/meals", controllers.LogMeal)
		api.GET("/meals/:userId/:date", controllers.ListMealsForDate)
		api.DELETE("/meals/:id", controllers.DeleteMeal)

		api.GET("/daily-summary/:userId/:date", controllers.GetDailySummary)

		api.POST("/ai-food-lookup", ai.LookupFood)
		api.POST("/ai-meal-suggestions", ai.SuggestMeals)
	}

	return r
}

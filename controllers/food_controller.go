package controllers

import (
	"fmt"
	"net/http"

	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/services"

	"github.com/gin-gonic/gin"
)

// POST /api/foods
func CreateFood(c *gin.Context) {
	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := services.CreateFood(input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// GET /api/foods
func ListFoods(c *gin.Context) {
	foods, err := services.ListFoods()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /api/foods/search/:query
func SearchFoods(c *gin.Context) {
	foods, err := services.SearchFoods(c.Param("query"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// POST /api/populate-food-database
func PopulateFoodDatabase(c *gin.Context) {
	n, err := services.PopulateFoodDatabase()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Added %d foods to database", n)})
}

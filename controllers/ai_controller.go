package controllers

import (
	"net/http"

	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/services"

	"github.com/gin-gonic/gin"
)

// AIController fronts the suggestion gateway. It holds the Generator so
// tests can swap in a deterministic stand-in.
type AIController struct {
	Gen services.Generator
}

func NewAIController(gen services.Generator) *AIController {
	return &AIController{Gen: gen}
}

// POST /api/ai-food-lookup  { "food_name": "paneer" }
func (a *AIController) LookupFood(c *gin.Context) {
	var req struct {
		FoodName string `json:"food_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_name is required"})
		return
	}

	result, err := a.Gen.LookupFood(c.Request.Context(), req.FoodName)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/ai-meal-suggestions
func (a *AIController) SuggestMeals(c *gin.Context) {
	var req services.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestions, err := a.Gen.SuggestMeals(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

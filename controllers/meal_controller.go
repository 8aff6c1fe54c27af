package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/services"

	"github.com/gin-gonic/gin"
)

// POST /api/meals
func LogMeal(c *gin.Context) {
	var body struct {
		UserID string `json:"user_id"`
		services.MealEntryInput
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mealSvc := services.NewMealService()
	entry, err := mealSvc.AddEntry(body.UserID, body.MealEntryInput)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GET /api/meals/:userId/:date
func ListMealsForDate(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	mealSvc := services.NewMealService()
	entries, err := mealSvc.ListForDate(c.Param("userId"), date)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DELETE /api/meals/:id
func DeleteMeal(c *gin.Context) {
	mealSvc := services.NewMealService()
	if err := mealSvc.DeleteEntry(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}

// GET /api/daily-summary/:userId/:date
func GetDailySummary(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	mealSvc := services.NewMealService()
	summary, err := mealSvc.GetDailySummary(c.Param("userId"), date)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// --- helpers ---

// handleServiceError maps the service error taxonomy onto HTTP statuses.
func handleServiceError(c *gin.Context, err error) {
	var (
		vErr *services.ValidationError
		lErr *services.LookupError
		sErr *services.SuggestionError
	)
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Msg})
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrMealNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &lErr), errors.As(err, &sErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

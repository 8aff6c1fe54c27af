package services

import (
	"time"

	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/config"
	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/models"
	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/utils"

	"github.com/google/uuid"
)

type MealService struct {
	now func() time.Time // stubbed in tests to pin the entry date
}

func NewMealService() *MealService {
	return &MealService{now: time.Now}
}

type MealEntryInput struct {
	FoodName    string  `json:"food_name"`
	AmountGrams float64 `json:"amount_grams"`
	MealType    string  `json:"meal_type"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

type MacroPercents struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// DailySummary is derived on every read; there is no stored summary
// state to go stale.
type DailySummary struct {
	Date          string             `json:"date"`
	TotalCalories float64            `json:"total_calories"`
	TotalProtein  float64            `json:"total_protein"`
	TotalCarbs    float64            `json:"total_carbs"`
	TotalFat      float64            `json:"total_fat"`
	CalorieTarget int                `json:"calorie_target"`
	ProteinTarget float64            `json:"protein_target"`
	CarbsTarget   float64            `json:"carbs_target"`
	FatTarget     float64            `json:"fat_target"`
	MacroPercents MacroPercents      `json:"macro_percentages"`
	Meals         []models.MealEntry `json:"meals"`
}

var mealTypes = map[string]bool{
	models.MealTypeBreakfast: true,
	models.MealTypeLunch:     true,
	models.MealTypeDinner:    true,
	models.MealTypeSnack:     true,
}

// AddEntry appends one immutable entry stamped with today's date. The
// macros are stored exactly as submitted, so an entry converted from an
// AI suggestion keeps the suggestion's numbers verbatim.
func (s *MealService) AddEntry(userID string, in MealEntryInput) (*models.MealEntry, error) {
	if _, err := GetUser(userID); err != nil {
		return nil, err
	}
	if in.FoodName == "" {
		return nil, validationErr("food_name is required")
	}
	if in.AmountGrams <= 0 {
		return nil, validationErr("amount_grams must be positive")
	}
	if !mealTypes[in.MealType] {
		return nil, validationErr("meal_type must be one of breakfast, lunch, dinner, snack")
	}
	if in.Calories < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 {
		return nil, validationErr("nutrition values must not be negative")
	}

	entry := &models.MealEntry{
		ID:          uuid.NewString(),
		UserID:      userID,
		FoodName:    in.FoodName,
		AmountGrams: in.AmountGrams,
		MealType:    in.MealType,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
		Date:        s.now().Format("2006-01-02"),
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ListForDate returns the entries for one profile and calendar date in
// creation order.
func (s *MealService) ListForDate(userID, date string) ([]models.MealEntry, error) {
	entries := []models.MealEntry{}
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at asc").
		Find(&entries).Error
	return entries, err
}

func (s *MealService) DeleteEntry(entryID string) error {
	res := config.DB.Delete(&models.MealEntry{}, "id = ?", entryID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

// GetDailySummary sums the day's entries and pairs them with the
// profile's targets. A day with no entries yields zero totals and an
// empty list, not an error.
func (s *MealService) GetDailySummary(userID, date string) (*DailySummary, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.ListForDate(userID, date)
	if err != nil {
		return nil, err
	}

	sum := &DailySummary{
		Date:          date,
		CalorieTarget: user.DailyCalorieTarget,
		Meals:         entries,
	}
	for _, e := range entries {
		sum.TotalCalories += e.Calories
		sum.TotalProtein += e.Protein
		sum.TotalCarbs += e.Carbs
		sum.TotalFat += e.Fat
	}

	sum.ProteinTarget, sum.CarbsTarget, sum.FatTarget = utils.MacroTargets(
		user.DailyCalorieTarget,
		user.MacroSplit.Protein,
		user.MacroSplit.Carbs,
		user.MacroSplit.Fat,
	)
	sum.MacroPercents = MacroPercents{
		Protein: utils.PercentOfCalories(sum.TotalProtein, utils.ProteinCaloriesPerGram, sum.TotalCalories),
		Carbs:   utils.PercentOfCalories(sum.TotalCarbs, utils.CarbCaloriesPerGram, sum.TotalCalories),
		Fat:     utils.PercentOfCalories(sum.TotalFat, utils.FatCaloriesPerGram, sum.TotalCalories),
	}

	return sum, nil
}

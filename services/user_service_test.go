package services

import (
	"testing"

	"github.com/garvgulati/Smart-Calorie-Tracker-with-Meal-Suggestions-using-AI/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t)
	require.NotEmpty(t, user.ID)
	assert.Equal(t, "Jordan", user.Name)
	assert.Equal(t, 2000, user.DailyCalorieTarget)
	assert.Equal(t, []string{"vegetarian"}, user.DietaryPreferences)

	got, err := GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, models.MacroSplit{Protein: 30, Carbs: 40, Fat: 30}, got.MacroSplit)
}

func TestCreateUserValidation(t *testing.T) {
	setupTestDB(t)

	cases := []struct {
		name  string
		input UserInput
	}{
		{"missing name", UserInput{Age: 25, DailyCalorieTarget: 1800}},
		{"zero age", UserInput{Name: "a", Age: 0, DailyCalorieTarget: 1800}},
		{"zero calorie target", UserInput{Name: "a", Age: 25, DailyCalorieTarget: 0}},
		{"negative calorie target", UserInput{Name: "a", Age: 25, DailyCalorieTarget: -100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CreateUser(tc.input)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}

	// Nothing persisted by the rejected requests.
	users, err := ListUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestCreateUserInconsistentSplitAccepted(t *testing.T) {
	setupTestDB(t)

	// The macro split is deliberately not validated to sum to 100.
	user, err := CreateUser(UserInput{
		Name:               "Sam",
		Age:                40,
		DailyCalorieTarget: 1500,
		MacroSplit:         models.MacroSplit{Protein: 60, Carbs: 60, Fat: 60},
	})
	require.NoError(t, err)
	assert.Equal(t, models.MacroSplit{Protein: 60, Carbs: 60, Fat: 60}, user.MacroSplit)
}

func TestGetUserNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := GetUser("no-such-id")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	setupTestDB(t)

	createTestUser(t)
	createTestUser(t)

	users, err := ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

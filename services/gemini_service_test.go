package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGemini serves a canned model reply in the generateContent wire
// shape the service parses in production.
func fakeGemini(t *testing.T, replyText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": replyText}}}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestLookupFood(t *testing.T) {
	srv := fakeGemini(t, `{"name":"Paneer","calories_per_100g":265,"protein_per_100g":18.3,"carbs_per_100g":1.2,"fat_per_100g":20.8}`)
	defer srv.Close()

	g := NewGeminiServiceWithURL("test-key", srv.URL)
	res, err := g.LookupFood(context.Background(), "paneer")
	require.NoError(t, err)
	assert.Equal(t, "Paneer", res.Name)
	assert.Equal(t, 265.0, res.CaloriesPer100g)
	assert.Equal(t, 18.3, res.ProteinPer100g)
}

func TestLookupFoodStripsMarkdownFences(t *testing.T) {
	srv := fakeGemini(t, "```json\n{\"name\":\"Oats\",\"calories_per_100g\":389,\"protein_per_100g\":16.9,\"carbs_per_100g\":66,\"fat_per_100g\":6.9}\n```")
	defer srv.Close()

	g := NewGeminiServiceWithURL("test-key", srv.URL)
	res, err := g.LookupFood(context.Background(), "oats")
	require.NoError(t, err)
	assert.Equal(t, "Oats", res.Name)
}

func TestLookupFoodRefused(t *testing.T) {
	srv := fakeGemini(t, `{"error":"not a recognizable food"}`)
	defer srv.Close()

	g := NewGeminiServiceWithURL("test-key", srv.URL)
	_, err := g.LookupFood(context.Background(), "asdfgh")

	var lErr *LookupError
	require.ErrorAs(t, err, &lErr)
	assert.Equal(t, "not a recognizable food", lErr.Reason)
}

func TestLookupFoodUnparseable(t *testing.T) {
	srv := fakeGemini(t, "I'm sorry, I can't help with that.")
	defer srv.Close()

	g := NewGeminiServiceWithURL("test-key", srv.URL)
	_, err := g.LookupFood(context.Background(), "paneer")

	var lErr *LookupError
	require.ErrorAs(t, err, &lErr)
}

func TestLookupFoodUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGeminiServiceWithURL("test-key", srv.URL)
	_, err := g.LookupFood(context.Background(), "paneer")

	var lErr *LookupError
	require.ErrorAs(t, err, &lErr)
}

func TestSuggestMeals(t *testing.T) {
	srv := fakeGemini(t, "```json\n"+`[
		{"food_name":"Grilled Chicken Breast","amount_grams":150,"calories":248,"protein":46,"carbs":0,"fat":5,"reason":"High protein"},
		{"food_name":"Brown Rice","amount_grams":100,"calories":111,"protein":2.6,"carbs":23,"fat":0.9,"reason":"Complex carbs"}
	]`+"\n```")
	defer srv.Close()

	g := NewGeminiServiceWithURL("test-key", srv.URL)
	out, err := g.SuggestMeals(context.Background(), SuggestionRequest{
		UserID:            "u1",
		Date:              "2024-03-01",
		RemainingCalories: 600,
		RemainingProtein:  50,
		MealType:          "dinner",
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Order received is the order returned.
	assert.Equal(t, "Grilled Chicken Breast", out[0].FoodName)
	assert.Equal(t, "Brown Rice", out[1].FoodName)
	assert.Equal(t, 46.0, out[0].Protein)
}

func TestSuggestMealsUnparseable(t *testing.T) {
	srv := fakeGemini(t, "here are some meal ideas: chicken, rice, beans")
	defer srv.Close()

	g := NewGeminiServiceWithURL("test-key", srv.URL)
	_, err := g.SuggestMeals(context.Background(), SuggestionRequest{MealType: "lunch"})

	var sErr *SuggestionError
	require.ErrorAs(t, err, &sErr)
}

func TestSuggestMealsCancelledContext(t *testing.T) {
	srv := fakeGemini(t, "[]")
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGeminiServiceWithURL("test-key", srv.URL)
	_, err := g.SuggestMeals(ctx, SuggestionRequest{MealType: "lunch"})

	var sErr *SuggestionError
	require.ErrorAs(t, err, &sErr)
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// GeminiService talks to the Gemini generateContent REST API. Both
// operations are stateless best-effort calls: no retry, no fallback,
// and nondeterministic output across identical requests is expected.
type GeminiService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGeminiService() *GeminiService {
	return &GeminiService{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: defaultGeminiURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NewGeminiServiceWithURL points the client at a different endpoint.
// Tests use it with an httptest server.
func NewGeminiServiceWithURL(apiKey, baseURL string) *GeminiService {
	return &GeminiService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	u := fmt.Sprintf("%s?key=%s", g.baseURL, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("failed to parse gemini JSON: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// extractJSON strips markdown fences from a model reply and trims it to
// the outermost open/close delimiter pair.
func extractJSON(s, open, closing string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	start := strings.Index(s, open)
	end := strings.LastIndex(s, closing)
	if start != -1 && end != -1 && end > start {
		s = s[start : end+1]
	}
	return s
}

// LookupFood asks the generator for a strict per-100g estimate of a
// named food. Unparseable or refused replies surface as a LookupError.
func (g *GeminiService) LookupFood(ctx context.Context, foodName string) (*FoodLookupResult, error) {
	prompt := fmt.Sprintf(`Please provide nutritional information for "%s" per 100g.
Return ONLY a JSON object with this exact format:
{
    "name": "exact food name",
    "calories_per_100g": 250,
    "protein_per_100g": 20,
    "carbs_per_100g": 30,
    "fat_per_100g": 8
}

If the food is not recognizable, return a JSON object with a single "error" field explaining why.`, foodName)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, &LookupError{Reason: "AI service unavailable", Err: err}
	}

	var out struct {
		FoodLookupResult
		Error string `json:"error"`
	}
	cleaned := extractJSON(text, "{", "}")
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		zap.L().Warn("unparseable food lookup reply", zap.String("food", foodName), zap.Error(err))
		return nil, &LookupError{Reason: "could not parse nutritional information for this food", Err: err}
	}
	if out.Error != "" {
		return nil, &LookupError{Reason: out.Error}
	}
	if out.Name == "" {
		return nil, &LookupError{Reason: "could not parse nutritional information for this food"}
	}
	return &out.FoodLookupResult, nil
}

// SuggestMeals asks the generator for suggestions that fit the remaining
// budget and returns them in the order received.
func (g *GeminiService) SuggestMeals(ctx context.Context, req SuggestionRequest) ([]Suggestion, error) {
	prefs := "no specific preferences"
	if len(req.DietaryPreferences) > 0 {
		prefs = strings.Join(req.DietaryPreferences, ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I need food suggestions for %s with the following nutritional requirements:\n", req.MealType)
	fmt.Fprintf(&sb, "- Remaining calories: %.1f\n", req.RemainingCalories)
	fmt.Fprintf(&sb, "- Remaining protein: %.1fg\n", req.RemainingProtein)
	fmt.Fprintf(&sb, "- Remaining carbs: %.1fg\n", req.RemainingCarbs)
	fmt.Fprintf(&sb, "- Remaining fat: %.1fg\n", req.RemainingFat)
	fmt.Fprintf(&sb, "- Dietary preferences: %s\n\n", prefs)
	sb.WriteString("A negative remaining value means that target has already been exceeded; in that case prefer smaller portions or zero-calorie options.\n")
	sb.WriteString("Suggest 3 foods with portion sizes in grams that would help reach these targets.\n\n")
	sb.WriteString(`Return ONLY a JSON array with this exact format:
[
    {
        "food_name": "Grilled Chicken Breast",
        "amount_grams": 150,
        "calories": 248,
        "protein": 46,
        "carbs": 0,
        "fat": 5,
        "reason": "High protein, low fat, fits the remaining calorie budget"
    }
]

Make sure each suggestion matches the dietary preferences and has realistic nutritional values for the stated amount.`)

	text, err := g.generate(ctx, sb.String())
	if err != nil {
		return nil, &SuggestionError{Reason: "AI service unavailable", Err: err}
	}

	var suggestions []Suggestion
	cleaned := extractJSON(text, "[", "]")
	if err := json.Unmarshal([]byte(cleaned), &suggestions); err != nil {
		zap.L().Warn("unparseable meal suggestion reply", zap.String("meal_type", req.MealType), zap.Error(err))
		return nil, &SuggestionError{Reason: "could not parse meal suggestions", Err: err}
	}
	if len(suggestions) == 0 {
		return nil, &SuggestionError{Reason: "AI returned no suggestions"}
	}
	return suggestions, nil
}

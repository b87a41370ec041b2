// Package prompts builds the chat messages sent to the completion API.
// Builders are pure functions of their inputs so the same profile and
// catalog always produce the same prompt.
package prompts

import (
	"fmt"
	"strings"

	"github.com/posturelab/coach-backend/internal/domain"
	"github.com/posturelab/coach-backend/internal/llm"
)

// MaxExercises and MaxProducts bound how many picks the model is asked for.
const (
	MaxExercises = 3
	MaxProducts  = 3
)

func ExerciseSelection(profile domain.UserProfile, exerciseNames []string) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: exerciseSystemPrompt()},
		{Role: "user", Content: exerciseUserPrompt(profile, exerciseNames)},
	}
}

func ProductSelection(exercises []domain.Exercise, productLabels []string) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: productSystemPrompt()},
		{Role: "user", Content: productUserPrompt(exercises, productLabels)},
	}
}

func exerciseSystemPrompt() string {
	return fmt.Sprintf(`You are a professional fitness coach assistant specializing in exercise recommendations and injury prevention. Your task is to select exactly %d exercises from a provided list that best match the user's fitness profile and goals.

CRITICAL RULES:
1. You MUST select exactly %d exercises - no more, no less
2. You MUST only select exercises from the provided list - do not invent new exercises
3. Return the EXACT exercise names as they appear in the list - spelling and capitalization must match exactly
4. Consider the user's:
   - Fitness level (beginner/intermediate/expert)
   - Goals (muscle building, weight loss, flexibility, etc.)
   - Target muscles
   - Available equipment
   - Any exercises to avoid
5. Select exercises that:
   - Are appropriate for the user's fitness level
   - Target the requested muscle groups
   - Can be performed with available equipment
   - Complement each other for a balanced workout
   - Help prevent injuries through proper form focus

RESPONSE FORMAT:
You must respond with ONLY a valid JSON object, no additional text or explanation outside the JSON:
{
  "selected_exercises": ["Exact Exercise Name 1", "Exact Exercise Name 2", "Exact Exercise Name 3"],
  "reasoning": "Brief explanation of why these exercises were chosen"
}`, MaxExercises, MaxExercises)
}

func exerciseUserPrompt(profile domain.UserProfile, exerciseNames []string) string {
	return fmt.Sprintf(`USER FITNESS PROFILE:
%s

AVAILABLE EXERCISES (you must select exactly %d from this list):
%s

Based on the user's profile above, select the %d most appropriate exercises from the list. Remember to return EXACT names from the list.`,
		profile.PromptContext(), MaxExercises, numberedList(exerciseNames), MaxExercises)
}

func productSystemPrompt() string {
	return fmt.Sprintf(`You are a sports equipment specialist at Decathlon, helping customers find the perfect products for their workout routines. Your task is to recommend exactly %d products from a provided list that would help a user perform their selected exercises better.

CRITICAL RULES:
1. You MUST select exactly %d products - no more, no less
2. You MUST only select products from the provided list - do not suggest products not in the list
3. Return the EXACT product labels as they appear in the list - spelling must match exactly
4. Consider:
   - Equipment needed for the exercises (dumbbells, mats, bands, etc.)
   - Safety equipment (gloves, supports, etc.)
   - Performance enhancement (proper footwear, clothing, etc.)
   - Accessories that improve the workout experience
5. Prioritize products that:
   - Directly support the exercise movements
   - Match the equipment requirements of the exercises
   - Enhance safety and prevent injuries
   - Are appropriate for the exercise category (strength, cardio, stretching)

RESPONSE FORMAT:
You must respond with ONLY a valid JSON object, no additional text or explanation outside the JSON:
{
  "selected_products": ["Exact Product Label 1", "Exact Product Label 2", "Exact Product Label 3"],
  "reasoning": "Brief explanation of why these products were recommended"
}`, MaxProducts, MaxProducts)
}

func productUserPrompt(exercises []domain.Exercise, productLabels []string) string {
	summaries := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		summaries = append(summaries, fmt.Sprintf(`- %s
    Equipment: %s
    Category: %s
    Primary Muscles: %s
    Level: %s`,
			ex.Name, ex.Equipment, ex.Category, strings.Join(ex.PrimaryMuscles, ", "), ex.Level))
	}

	return fmt.Sprintf(`SELECTED EXERCISES FOR THE USER:
%s

AVAILABLE PRODUCTS (you must select exactly %d from this list):
%s

Based on the exercises above, recommend the %d most useful products from the list. Remember to return EXACT labels from the list.`,
		strings.Join(summaries, "\n"), MaxProducts, numberedList(productLabels), MaxProducts)
}

func numberedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, item)
	}
	return b.String()
}

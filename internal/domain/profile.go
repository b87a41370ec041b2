package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StringList unmarshals from either a JSON string or an array of strings.
// The questionnaire client sends single-select answers as bare strings.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*s = nil
		return nil
	}
	*s = []string{single}
	return nil
}

// QuestionnaireAnswers is the raw wizard payload.
type QuestionnaireAnswers struct {
	FitnessLevel  string     `json:"fitnessLevel"`
	Goals         StringList `json:"goals"`
	PainAreas     StringList `json:"painAreas"`
	Equipment     StringList `json:"equipment"`
	ActivityLevel string     `json:"activityLevel"`
	AvailableTime string     `json:"availableTime"`
}

// ExercisePreferences narrows exercise selection beyond the profile basics.
type ExercisePreferences struct {
	Categories []string `json:"categories"`
	ForceType  string   `json:"forceType,omitempty"`
	Avoid      []string `json:"avoid"`
}

// UserProfile is the fitness profile derived from questionnaire answers.
// It is built fresh per request and never persisted.
type UserProfile struct {
	FitnessLevel        string              `json:"fitnessLevel"`
	Goals               []string            `json:"goals"`
	TargetMuscles       []string            `json:"targetMuscles"`
	AvailableEquipment  []string            `json:"availableEquipment"`
	ExercisePreferences ExercisePreferences `json:"exercisePreferences"`
	AdditionalNotes     string              `json:"additionalNotes"`
}

// painToMuscleMap converts reported pain areas into the muscle groups an
// exercise should strengthen or stretch.
var painToMuscleMap = map[string][]string{
	"neck":       {"neck", "traps"},
	"shoulders":  {"shoulders", "traps"},
	"upper_back": {"middle back", "lats", "traps"},
	"lower_back": {"lower back", "glutes"},
	"hips":       {"glutes", "abductors", "adductors"},
	"knees":      {"quadriceps", "hamstrings", "calves"},
}

var goalToCategoryMap = map[string][]string{
	"posture":        {"stretching", "strength"},
	"strength":       {"strength", "powerlifting"},
	"flexibility":    {"stretching"},
	"rehabilitation": {"stretching", "strength"},
}

// ProfileFromQuestionnaire maps raw answers into a UserProfile, filling
// defaults for anything the wizard left out.
func ProfileFromQuestionnaire(answers QuestionnaireAnswers) UserProfile {
	painAreas := make([]string, 0, len(answers.PainAreas))
	for _, area := range answers.PainAreas {
		// the wizard sends sentinel answers for the yes/no gate question
		if area == "no-pain" || area == "has-pain" {
			continue
		}
		painAreas = append(painAreas, area)
	}

	targetMuscles := dedupeAppend(nil, nil)
	for _, area := range painAreas {
		targetMuscles = dedupeAppend(targetMuscles, painToMuscleMap[area])
	}

	var categories []string
	for _, goal := range answers.Goals {
		categories = dedupeAppend(categories, goalToCategoryMap[goal])
	}
	if len(categories) == 0 {
		categories = []string{"strength"}
	}

	equipment := answers.Equipment
	if len(equipment) == 0 {
		equipment = []string{"body only"}
	}

	level := strings.ToLower(strings.TrimSpace(answers.FitnessLevel))
	if level == "" {
		level = "beginner"
	}

	var avoid []string
	if len(painAreas) > 0 {
		avoid = []string{"high impact"}
	}

	activity := answers.ActivityLevel
	if activity == "" {
		activity = "moderate"
	}
	availableTime := answers.AvailableTime
	if availableTime == "" {
		availableTime = "15-20"
	}
	painNote := "No pain reported."
	if len(painAreas) > 0 {
		painNote = fmt.Sprintf("Pain areas: %s.", strings.Join(painAreas, ", "))
	}

	return UserProfile{
		FitnessLevel:       level,
		Goals:              answers.Goals,
		TargetMuscles:      targetMuscles,
		AvailableEquipment: equipment,
		ExercisePreferences: ExercisePreferences{
			Categories: categories,
			Avoid:      avoid,
		},
		AdditionalNotes: fmt.Sprintf("Activity level: %s. Available time: %s minutes. %s", activity, availableTime, painNote),
	}
}

// PromptContext renders the profile as flat "Key: value" lines for the LLM
// user message. Output is deterministic for a given profile.
func (p UserProfile) PromptContext() string {
	parts := []string{fmt.Sprintf("Fitness Level: %s", p.FitnessLevel)}

	if len(p.Goals) > 0 {
		parts = append(parts, fmt.Sprintf("Goals: %s", strings.Join(p.Goals, ", ")))
	}
	if len(p.TargetMuscles) > 0 {
		parts = append(parts, fmt.Sprintf("Target Muscles: %s", strings.Join(p.TargetMuscles, ", ")))
	}
	if len(p.AvailableEquipment) > 0 {
		parts = append(parts, fmt.Sprintf("Available Equipment: %s", strings.Join(p.AvailableEquipment, ", ")))
	}
	if len(p.ExercisePreferences.Categories) > 0 {
		parts = append(parts, fmt.Sprintf("Preferred Exercise Types: %s", strings.Join(p.ExercisePreferences.Categories, ", ")))
	}
	if p.ExercisePreferences.ForceType != "" {
		parts = append(parts, fmt.Sprintf("Preferred Movement Type: %s", p.ExercisePreferences.ForceType))
	}
	if len(p.ExercisePreferences.Avoid) > 0 {
		parts = append(parts, fmt.Sprintf("Exercises to Avoid: %s", strings.Join(p.ExercisePreferences.Avoid, ", ")))
	}
	if p.AdditionalNotes != "" {
		parts = append(parts, fmt.Sprintf("Additional Notes: %s", p.AdditionalNotes))
	}

	return strings.Join(parts, "\n")
}

func dedupeAppend(dst []string, add []string) []string {
	for _, v := range add {
		seen := false
		for _, existing := range dst {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}

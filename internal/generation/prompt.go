package generation

import (
	"fmt"
	"strings"

	"fitforge/workout-app/internal/catalog"
	"fitforge/workout-app/internal/domain"
)

// splitRules maps every split type to its structural rule block. Every value
// of domain.SplitType must have an entry here; a missing one is a
// configuration defect, caught by TestSplitRulesCoverEverySplitType.
var splitRules = map[domain.SplitType]string{
	domain.SplitFullBody: `
- Every workout covers all major muscle groups
- 1-2 exercises per muscle group
- Focus: compound multi-joint movements
- Rotate the emphasis between workouts`,

	domain.SplitUpperLower: `
- Upper body: chest, back, shoulders, arms (6-8 exercises)
- Lower body: quads, hamstrings, glutes, calves (5-7 exercises)
- Alternate upper and lower days`,

	domain.SplitPushPullLegs: `
- Push: chest, front/side delts, triceps (5-7 exercises)
- Pull: back, rear delts, biceps (5-7 exercises)
- Legs: quads, hamstrings, glutes, calves (5-7 exercises)`,

	domain.SplitFrontBack: `
- Anterior chain: chest, quads, front delts
- Posterior chain: back, hamstrings, rear delts
- Balance push and pull movements`,
}

const (
	defaultLevel     = "intermediate"
	defaultGoal      = "hypertrophy"
	defaultEquipment = "full gym"
)

// BuildPrompt renders the natural-language instruction text for one
// generation attempt. It is a pure function: the same inputs against the
// same catalog always produce the same prompt. The full catalog listing is
// embedded verbatim so the model can only reference known exercise uids.
func BuildPrompt(days int, splitType domain.SplitType, prefs *domain.Preferences, cat *catalog.Catalog) string {
	level := defaultLevel
	goal := defaultGoal
	equipment := defaultEquipment
	var excludeLine, focusLine string

	if prefs != nil {
		if prefs.Level != "" {
			level = prefs.Level
		}
		if prefs.Goal != "" {
			goal = prefs.Goal
		}
		if len(prefs.Equipment) > 0 {
			equipment = strings.Join(prefs.Equipment, ", ")
		}
		if len(prefs.ExcludeExercises) > 0 {
			excludeLine = fmt.Sprintf("\n- Exclude exercises: %s", strings.Join(prefs.ExcludeExercises, ", "))
		}
		if len(prefs.FocusMuscles) > 0 {
			focusLine = fmt.Sprintf("\n- Emphasize muscles: %s", strings.Join(prefs.FocusMuscles, ", "))
		}
	}

	return fmt.Sprintf(`You are a professional strength coach who designs workout programs.

AVAILABLE EXERCISES:
%s

PROGRAM PARAMETERS:
- Training days: %d
- Split type: %s
- Level: %s
- Goal: %s
- Equipment: %s%s%s

DISTRIBUTION RULES FOR %s:%s

GENERAL PRINCIPLES:
1. Compound multi-joint exercises go at the start of a workout
2. Isolation exercises go at the end
3. Train large muscle groups before small ones
4. Vary rep ranges: 4-6 (strength), 8-12 (hypertrophy), 12-15 (endurance)
5. Rest 120-180 seconds after compounds, 60-90 seconds after isolation work
6. Use ONLY exercise uids from the list above
7. Every workout should last 45-90 minutes
8. Balance training volume across muscle groups

Create a balanced, effective program in JSON format.`,
		cat.FormatList(),
		days,
		splitType,
		level,
		goal,
		equipment,
		excludeLine,
		focusLine,
		strings.ToUpper(string(splitType)),
		splitRules[splitType],
	)
}

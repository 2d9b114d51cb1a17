package generation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitforge/workout-app/internal/catalog"
	"fitforge/workout-app/internal/domain"
)

func TestSplitRulesCoverEverySplitType(t *testing.T) {
	for _, split := range domain.AllSplitTypes {
		rules, ok := splitRules[split]
		require.True(t, ok, "missing split rules for %s", split)
		assert.NotEmpty(t, strings.TrimSpace(rules))
	}
	assert.Len(t, splitRules, len(domain.AllSplitTypes))
}

func TestBuildPromptContainsSplitRulesAndCatalog(t *testing.T) {
	cat := catalog.Default()

	for _, split := range domain.AllSplitTypes {
		for days := 1; days <= 7; days++ {
			prompt := BuildPrompt(days, split, nil, cat)

			assert.Contains(t, prompt, splitRules[split], "split %s days %d", split, days)
			assert.Contains(t, prompt, fmt.Sprintf("- Training days: %d", days))
			assert.Contains(t, prompt, fmt.Sprintf("- Split type: %s", split))
			assert.Contains(t, prompt, "DISTRIBUTION RULES FOR "+strings.ToUpper(string(split)))

			for _, uid := range cat.UIDs() {
				assert.Contains(t, prompt, uid)
			}
		}
	}
}

func TestBuildPromptDefaults(t *testing.T) {
	prompt := BuildPrompt(3, domain.SplitPushPullLegs, nil, catalog.Default())

	assert.Contains(t, prompt, "- Level: intermediate")
	assert.Contains(t, prompt, "- Goal: hypertrophy")
	assert.Contains(t, prompt, "- Equipment: full gym")
	assert.NotContains(t, prompt, "Exclude exercises")
	assert.NotContains(t, prompt, "Emphasize muscles")
}

func TestBuildPromptWithPreferences(t *testing.T) {
	prefs := &domain.Preferences{
		Level:            "advanced",
		Goal:             "strength",
		Equipment:        []string{"barbell", "dumbbells"},
		ExcludeExercises: []string{"ex_010", "ex_033"},
		FocusMuscles:     []string{"chest", "back"},
	}
	prompt := BuildPrompt(4, domain.SplitUpperLower, prefs, catalog.Default())

	assert.Contains(t, prompt, "- Level: advanced")
	assert.Contains(t, prompt, "- Goal: strength")
	assert.Contains(t, prompt, "- Equipment: barbell, dumbbells")
	assert.Contains(t, prompt, "- Exclude exercises: ex_010, ex_033")
	assert.Contains(t, prompt, "- Emphasize muscles: chest, back")
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	cat := catalog.Default()
	prefs := &domain.Preferences{Goal: "endurance"}

	first := BuildPrompt(5, domain.SplitFullBody, prefs, cat)
	second := BuildPrompt(5, domain.SplitFullBody, prefs, cat)
	assert.Equal(t, first, second)
}

package generation

import (
	"fitforge/workout-app/internal/domain"
	"fitforge/workout-app/internal/llm/gemini"
)

// ProgramSchema constrains the model output to the candidate-program shape.
// Numeric bounds match the documented data model: weeks 1-12, day 1-7,
// duration 30-120 minutes, sets 1-10, rest 30-300 seconds.
var ProgramSchema = &gemini.Schema{
	Type: "object",
	Properties: map[string]*gemini.Schema{
		"program_name": {Type: "string"},
		"split_type": {
			Type: "string",
			Enum: []string{
				string(domain.SplitFullBody),
				string(domain.SplitUpperLower),
				string(domain.SplitPushPullLegs),
				string(domain.SplitFrontBack),
			},
		},
		"weeks": {Type: "integer", Minimum: gemini.Float(1), Maximum: gemini.Float(12)},
		"workouts": {
			Type: "array",
			Items: &gemini.Schema{
				Type: "object",
				Properties: map[string]*gemini.Schema{
					"day":   {Type: "integer", Minimum: gemini.Float(1), Maximum: gemini.Float(7)},
					"name":  {Type: "string"},
					"focus": {Type: "string"},
					"estimated_duration_minutes": {
						Type:    "integer",
						Minimum: gemini.Float(30),
						Maximum: gemini.Float(120),
					},
					"exercises": {
						Type: "array",
						Items: &gemini.Schema{
							Type: "object",
							Properties: map[string]*gemini.Schema{
								"uid":          {Type: "string"},
								"sets":         {Type: "integer", Minimum: gemini.Float(1), Maximum: gemini.Float(10)},
								"reps":         {Type: "string"},
								"rest_seconds": {Type: "integer", Minimum: gemini.Float(30), Maximum: gemini.Float(300)},
								"tempo":        {Type: "string"},
								"notes":        {Type: "string"},
							},
							Required: []string{"uid", "sets", "reps", "rest_seconds"},
						},
					},
				},
				Required: []string{"day", "name", "focus", "exercises", "estimated_duration_minutes"},
			},
		},
		"notes": {Type: "string"},
	},
	Required: []string{"program_name", "split_type", "weeks", "workouts"},
}

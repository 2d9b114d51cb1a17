package catalog

import "fitforge/workout-app/internal/domain"

// defaultExercises is the built-in catalog. Uids are stable identifiers and
// must never be reused for a different movement once released, because
// persisted workout_exercises rows reference them.
var defaultExercises = []domain.ExerciseDefinition{
	// Chest
	{
		UID:          "ex_001",
		Name:         "Barbell Bench Press",
		MuscleGroups: []string{"chest", "triceps", "front delts"},
		MovementType: domain.MovementCompound,
		Category:     "push/upper",
		Equipment:    "barbell",
	},
	{
		UID:          "ex_002",
		Name:         "Incline Dumbbell Press",
		MuscleGroups: []string{"upper chest", "front delts"},
		MovementType: domain.MovementCompound,
		Category:     "push/upper",
		Equipment:    "dumbbells",
	},
	{
		UID:          "ex_003",
		Name:         "Dumbbell Fly",
		MuscleGroups: []string{"chest"},
		MovementType: domain.MovementIsolation,
		Category:     "push/upper",
		Equipment:    "dumbbells",
	},
	{
		UID:          "ex_004",
		Name:         "Chest Dip",
		MuscleGroups: []string{"chest", "triceps"},
		MovementType: domain.MovementCompound,
		Category:     "push/upper",
		Equipment:    "dip bars",
	},

	// Back
	{
		UID:          "ex_010",
		Name:         "Deadlift",
		MuscleGroups: []string{"back", "hamstrings", "glutes"},
		MovementType: domain.MovementCompound,
		Category:     "pull/back",
		Equipment:    "barbell",
	},
	{
		UID:          "ex_011",
		Name:         "Pull-Up",
		MuscleGroups: []string{"lats", "biceps"},
		MovementType: domain.MovementCompound,
		Category:     "pull/upper",
		Equipment:    "pull-up bar",
	},
	{
		UID:          "ex_012",
		Name:         "Bent-Over Barbell Row",
		MuscleGroups: []string{"back", "rear delts"},
		MovementType: domain.MovementCompound,
		Category:     "pull/upper",
		Equipment:    "barbell",
	},
	{
		UID:          "ex_013",
		Name:         "Seated Cable Row",
		MuscleGroups: []string{"back", "biceps"},
		MovementType: domain.MovementCompound,
		Category:     "pull/upper",
		Equipment:    "cable",
	},
	{
		UID:          "ex_014",
		Name:         "Lat Pulldown",
		MuscleGroups: []string{"lats"},
		MovementType: domain.MovementCompound,
		Category:     "pull/upper",
		Equipment:    "cable",
	},

	// Legs
	{
		UID:          "ex_020",
		Name:         "Barbell Back Squat",
		MuscleGroups: []string{"quads", "glutes"},
		MovementType: domain.MovementCompound,
		Category:     "legs/lower",
		Equipment:    "barbell",
	},
	{
		UID:          "ex_021",
		Name:         "Romanian Deadlift",
		MuscleGroups: []string{"hamstrings", "glutes"},
		MovementType: domain.MovementCompound,
		Category:     "legs/lower",
		Equipment:    "barbell",
	},
	{
		UID:          "ex_022",
		Name:         "Leg Press",
		MuscleGroups: []string{"quads", "glutes"},
		MovementType: domain.MovementCompound,
		Category:     "legs/lower",
		Equipment:    "machine",
	},
	{
		UID:          "ex_023",
		Name:         "Lying Leg Curl",
		MuscleGroups: []string{"hamstrings"},
		MovementType: domain.MovementIsolation,
		Category:     "legs/lower",
		Equipment:    "machine",
	},
	{
		UID:          "ex_024",
		Name:         "Seated Leg Extension",
		MuscleGroups: []string{"quads"},
		MovementType: domain.MovementIsolation,
		Category:     "legs/lower",
		Equipment:    "machine",
	},
	{
		UID:          "ex_025",
		Name:         "Standing Calf Raise",
		MuscleGroups: []string{"calves"},
		MovementType: domain.MovementIsolation,
		Category:     "legs/lower",
		Equipment:    "machine",
	},

	// Shoulders
	{
		UID:          "ex_030",
		Name:         "Standing Overhead Press",
		MuscleGroups: []string{"front delts", "side delts"},
		MovementType: domain.MovementCompound,
		Category:     "push/upper",
		Equipment:    "barbell",
	},
	{
		UID:          "ex_031",
		Name:         "Dumbbell Lateral Raise",
		MuscleGroups: []string{"side delts"},
		MovementType: domain.MovementIsolation,
		Category:     "push/upper",
		Equipment:    "dumbbells",
	},
	{
		UID:          "ex_032",
		Name:         "Bent-Over Reverse Fly",
		MuscleGroups: []string{"rear delts"},
		MovementType: domain.MovementIsolation,
		Category:     "pull/upper",
		Equipment:    "dumbbells",
	},
	{
		UID:          "ex_033",
		Name:         "Upright Row",
		MuscleGroups: []string{"side delts", "traps"},
		MovementType: domain.MovementCompound,
		Category:     "pull/upper",
		Equipment:    "barbell",
	},

	// Arms
	{
		UID:          "ex_040",
		Name:         "Barbell Curl",
		MuscleGroups: []string{"biceps"},
		MovementType: domain.MovementIsolation,
		Category:     "pull/upper",
		Equipment:    "barbell",
	},
	{
		UID:          "ex_041",
		Name:         "Lying Triceps Extension",
		MuscleGroups: []string{"triceps"},
		MovementType: domain.MovementIsolation,
		Category:     "push/upper",
		Equipment:    "barbell",
	},
	{
		UID:          "ex_042",
		Name:         "Hammer Curl",
		MuscleGroups: []string{"biceps", "forearms"},
		MovementType: domain.MovementIsolation,
		Category:     "pull/upper",
		Equipment:    "dumbbells",
	},
	{
		UID:          "ex_043",
		Name:         "Cable Pushdown",
		MuscleGroups: []string{"triceps"},
		MovementType: domain.MovementIsolation,
		Category:     "push/upper",
		Equipment:    "cable",
	},
}

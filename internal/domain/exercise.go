package domain

// MovementType classifies an exercise as multi-joint or single-joint.
type MovementType string

const (
	MovementCompound  MovementType = "compound"
	MovementIsolation MovementType = "isolation"
)

// ExerciseDefinition is a single entry in the static exercise catalog.
// The catalog is fixed at deploy time; definitions are never mutated at runtime.
type ExerciseDefinition struct {
	UID          string       `json:"uid"`
	Name         string       `json:"name"`
	MuscleGroups []string     `json:"muscle_groups"`
	MovementType MovementType `json:"movement_type"`
	Category     string       `json:"category"` // push/pull/legs-style tag, prompt context only
	Equipment    string       `json:"equipment,omitempty"`
}

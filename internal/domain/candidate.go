package domain

// Candidate types are the raw generator output. They are untrusted until the
// exercise uids have been checked against the catalog; only then do they get
// persisted. JSON tags mirror the generation response schema.

// CandidateExercise is one prescribed exercise inside a candidate workout.
type CandidateExercise struct {
	UID         string `json:"uid"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"` // free-form, e.g. "8-12"
	RestSeconds int    `json:"rest_seconds"`
	Tempo       string `json:"tempo,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// CandidateWorkout is one training day of a candidate program.
type CandidateWorkout struct {
	Day                      int                 `json:"day"`
	Name                     string              `json:"name"`
	Focus                    string              `json:"focus"`
	EstimatedDurationMinutes int                 `json:"estimated_duration_minutes"`
	Exercises                []CandidateExercise `json:"exercises"`
}

// CandidateProgram is a full multi-week program as emitted by the generator.
type CandidateProgram struct {
	ProgramName string             `json:"program_name"`
	SplitType   SplitType          `json:"split_type"`
	Weeks       int                `json:"weeks"`
	Workouts    []CandidateWorkout `json:"workouts"`
	Notes       string             `json:"notes,omitempty"`
}

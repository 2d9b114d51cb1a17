package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutProgram is a persisted, validated multi-week program owned by a user.
// Programs are created in one shot from a validated candidate and never
// mutated afterwards; removal is a soft delete via DeletedAt.
type WorkoutProgram struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	ProgramName   string             `bson:"programName" json:"programName"`
	SplitType     SplitType          `bson:"splitType" json:"splitType"`
	Weeks         int                `bson:"weeks" json:"weeks"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	RequestedDays int                `bson:"requestedDays" json:"requestedDays"`
	Preferences   *Preferences       `bson:"preferences,omitempty" json:"preferences,omitempty"` // stored verbatim from the request
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
	DeletedAt     *time.Time         `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
}

// Workout is a single training day belonging to exactly one WorkoutProgram.
type Workout struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProgramID                primitive.ObjectID `bson:"programId" json:"programId"`
	Day                      int                `bson:"day" json:"day"` // 1-7
	Name                     string             `bson:"name" json:"name"`
	Focus                    string             `bson:"focus" json:"focus"`
	EstimatedDurationMinutes int                `bson:"estimatedDurationMinutes" json:"estimatedDurationMinutes"`
	Position                 int                `bson:"position" json:"position"` // ordering key, set equal to Day
	CreatedAt                time.Time          `bson:"createdAt" json:"createdAt"`
}

// WorkoutExercise is one prescribed exercise within a Workout. ExerciseUID
// references the immutable catalog entry; it is shared reference data, not
// an owned child.
type WorkoutExercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutID   primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	ExerciseUID string             `bson:"exerciseUid" json:"exerciseUid"`
	Sets        int                `bson:"sets" json:"sets"`
	Reps        string             `bson:"reps" json:"reps"`
	RestSeconds int                `bson:"restSeconds" json:"restSeconds"`
	Tempo       string             `bson:"tempo,omitempty" json:"tempo,omitempty"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Position    int                `bson:"position" json:"position"` // 1-based order within the workout
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fitforge/workout-app/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// ProgramRepository defines the interface for interacting with workout
// program data. Reads exclude soft-deleted rows unless noted; GetByID keeps
// returning soft-deleted programs so they stay retrievable by identifier.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.WorkoutProgram) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutProgram, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutProgram, error)
	SoftDelete(ctx context.Context, id, userID primitive.ObjectID) error
	HasActive(ctx context.Context, userID primitive.ObjectID) (bool, error)
	// Delete hard-deletes a row. Used only for compensating rollback of a
	// failed multi-step insert, never exposed through the API.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// WorkoutRepository defines the interface for interacting with workout rows.
type WorkoutRepository interface {
	// CreateMany inserts workouts in the given order and returns generated
	// ids in the same order.
	CreateMany(ctx context.Context, workouts []*domain.Workout) ([]primitive.ObjectID, error)
	GetByProgramID(ctx context.Context, programID primitive.ObjectID) ([]domain.Workout, error)
	DeleteByProgramID(ctx context.Context, programID primitive.ObjectID) error
}

// WorkoutExerciseRepository defines the interface for interacting with the
// per-workout exercise rows.
type WorkoutExerciseRepository interface {
	CreateMany(ctx context.Context, exercises []*domain.WorkoutExercise) ([]primitive.ObjectID, error)
	GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutExercise, error)
	DeleteByWorkoutIDs(ctx context.Context, workoutIDs []primitive.ObjectID) error
}

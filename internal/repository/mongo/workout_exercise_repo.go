package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitforge/workout-app/internal/domain"
	"fitforge/workout-app/internal/repository"
)

const workoutExerciseCollectionName = "workout_exercises"

// mongoWorkoutExerciseRepository implements repository.WorkoutExerciseRepository
type mongoWorkoutExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutExerciseRepository creates a new WorkoutExercise repository.
func NewMongoWorkoutExerciseRepository(db *mongo.Database) repository.WorkoutExerciseRepository {
	return &mongoWorkoutExerciseRepository{
		collection: db.Collection(workoutExerciseCollectionName),
	}
}

// CreateMany inserts all exercise rows in one ordered bulk insert.
func (r *mongoWorkoutExerciseRepository) CreateMany(ctx context.Context, exercises []*domain.WorkoutExercise) ([]primitive.ObjectID, error) {
	if len(exercises) == 0 {
		return nil, errors.New("no workout exercises to insert")
	}

	now := time.Now().UTC()
	ids := make([]primitive.ObjectID, len(exercises))
	docs := make([]interface{}, len(exercises))
	for i, exercise := range exercises {
		if exercise.WorkoutID == primitive.NilObjectID || exercise.ExerciseUID == "" {
			return nil, errors.New("workout exercise requires workoutId and exerciseUid")
		}
		exercise.ID = primitive.NewObjectID()
		exercise.CreatedAt = now
		ids[i] = exercise.ID
		docs[i] = exercise
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetByWorkoutID retrieves the exercises of a workout ordered by position.
func (r *mongoWorkoutExerciseRepository) GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutExercise, error) {
	var exercises []domain.WorkoutExercise
	filter := bson.M{"workoutId": workoutID}
	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []domain.WorkoutExercise{}
	}
	return exercises, nil
}

// DeleteByWorkoutIDs removes every exercise row belonging to the given
// workouts. Rollback use only.
func (r *mongoWorkoutExerciseRepository) DeleteByWorkoutIDs(ctx context.Context, workoutIDs []primitive.ObjectID) error {
	if len(workoutIDs) == 0 {
		return nil
	}
	_, err := r.collection.DeleteMany(ctx, bson.M{"workoutId": bson.M{"$in": workoutIDs}})
	return err
}

// EnsureWorkoutExerciseIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "workoutId", Value: 1}, {Key: "position", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal; queries degrade to collection scans.
	}
}

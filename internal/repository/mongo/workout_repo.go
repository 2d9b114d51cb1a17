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

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// CreateMany inserts all workouts in one ordered bulk insert and returns the
// generated ids in input order. Child exercise rows depend on these ids, so
// order preservation is mandatory.
func (r *mongoWorkoutRepository) CreateMany(ctx context.Context, workouts []*domain.Workout) ([]primitive.ObjectID, error) {
	if len(workouts) == 0 {
		return nil, errors.New("no workouts to insert")
	}

	now := time.Now().UTC()
	ids := make([]primitive.ObjectID, len(workouts))
	docs := make([]interface{}, len(workouts))
	for i, workout := range workouts {
		if workout.ProgramID == primitive.NilObjectID || workout.Name == "" {
			return nil, errors.New("workout requires programId and name")
		}
		workout.ID = primitive.NewObjectID()
		workout.CreatedAt = now
		ids[i] = workout.ID
		docs[i] = workout
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetByProgramID retrieves all workouts of a program, ordered by position.
func (r *mongoWorkoutRepository) GetByProgramID(ctx context.Context, programID primitive.ObjectID) ([]domain.Workout, error) {
	var workouts []domain.Workout
	filter := bson.M{"programId": programID}
	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "day", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	return workouts, nil
}

// DeleteByProgramID removes all workouts of a program. Rollback use only.
func (r *mongoWorkoutRepository) DeleteByProgramID(ctx context.Context, programID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"programId": programID})
	return err
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "programId", Value: 1}, {Key: "position", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal; queries degrade to collection scans.
	}
}

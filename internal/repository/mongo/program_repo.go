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

const programCollectionName = "workout_programs"

// mongoProgramRepository implements repository.ProgramRepository
type mongoProgramRepository struct {
	collection *mongo.Collection
}

// NewMongoProgramRepository creates a new workout program repository.
func NewMongoProgramRepository(db *mongo.Database) repository.ProgramRepository {
	return &mongoProgramRepository{
		collection: db.Collection(programCollectionName),
	}
}

// Create inserts a new workout program row and returns its generated id.
func (r *mongoProgramRepository) Create(ctx context.Context, program *domain.WorkoutProgram) (primitive.ObjectID, error) {
	if program.UserID == primitive.NilObjectID || program.ProgramName == "" {
		return primitive.NilObjectID, errors.New("program requires userId and programName")
	}

	program.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	program.CreatedAt = now
	program.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, program)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted program ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single program by its ID. Soft-deleted programs are
// still returned; callers inspect DeletedAt.
func (r *mongoProgramRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutProgram, error) {
	var program domain.WorkoutProgram
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&program)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &program, nil
}

// GetByUserID retrieves all non-deleted programs for a user, newest first.
func (r *mongoProgramRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutProgram, error) {
	var programs []domain.WorkoutProgram
	filter := bson.M{"userId": userID, "deletedAt": bson.M{"$exists": false}}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &programs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	if programs == nil {
		programs = []domain.WorkoutProgram{}
	}
	return programs, nil
}

// SoftDelete marks a program as deleted by setting deletedAt. The row is
// retained and remains retrievable via GetByID. The userId filter ensures a
// user can only delete their own program.
func (r *mongoProgramRepository) SoftDelete(ctx context.Context, id, userID primitive.ObjectID) error {
	filter := bson.M{
		"_id":       id,
		"userId":    userID,
		"deletedAt": bson.M{"$exists": false},
	}
	update := bson.M{
		"$set": bson.M{
			"deletedAt": time.Now().UTC(),
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// HasActive reports whether the user has at least one non-deleted program.
func (r *mongoProgramRepository) HasActive(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{"userId": userID, "deletedAt": bson.M{"$exists": false}}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete hard-deletes a program row. Rollback use only.
func (r *mongoProgramRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureProgramIndexes creates necessary indexes. Call during startup.
func EnsureProgramIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Listing a user's active programs, newest first.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal; queries degrade to collection scans.
	}
}

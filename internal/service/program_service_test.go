package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fitforge/workout-app/internal/catalog"
	"fitforge/workout-app/internal/domain"
	"fitforge/workout-app/internal/repository"
)

// --- In-memory fakes ---

type fakeProgramRepo struct {
	programs  map[primitive.ObjectID]*domain.WorkoutProgram
	createErr error
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{programs: make(map[primitive.ObjectID]*domain.WorkoutProgram)}
}

func (r *fakeProgramRepo) Create(_ context.Context, program *domain.WorkoutProgram) (primitive.ObjectID, error) {
	if r.createErr != nil {
		return primitive.NilObjectID, r.createErr
	}
	program.ID = primitive.NewObjectID()
	program.CreatedAt = time.Now().UTC()
	program.UpdatedAt = program.CreatedAt
	copied := *program
	r.programs[program.ID] = &copied
	return program.ID, nil
}

func (r *fakeProgramRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutProgram, error) {
	program, ok := r.programs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *program
	return &copied, nil
}

func (r *fakeProgramRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.WorkoutProgram, error) {
	out := []domain.WorkoutProgram{}
	for _, program := range r.programs {
		if program.UserID == userID && program.DeletedAt == nil {
			out = append(out, *program)
		}
	}
	return out, nil
}

func (r *fakeProgramRepo) SoftDelete(_ context.Context, id, userID primitive.ObjectID) error {
	program, ok := r.programs[id]
	if !ok || program.UserID != userID || program.DeletedAt != nil {
		return repository.ErrNotFound
	}
	now := time.Now().UTC()
	program.DeletedAt = &now
	return nil
}

func (r *fakeProgramRepo) HasActive(_ context.Context, userID primitive.ObjectID) (bool, error) {
	for _, program := range r.programs {
		if program.UserID == userID && program.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProgramRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.programs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.programs, id)
	return nil
}

type fakeWorkoutRepo struct {
	workouts  map[primitive.ObjectID]*domain.Workout
	createErr error
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[primitive.ObjectID]*domain.Workout)}
}

func (r *fakeWorkoutRepo) CreateMany(_ context.Context, workouts []*domain.Workout) ([]primitive.ObjectID, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	ids := make([]primitive.ObjectID, len(workouts))
	for i, workout := range workouts {
		workout.ID = primitive.NewObjectID()
		copied := *workout
		r.workouts[workout.ID] = &copied
		ids[i] = workout.ID
	}
	return ids, nil
}

func (r *fakeWorkoutRepo) GetByProgramID(_ context.Context, programID primitive.ObjectID) ([]domain.Workout, error) {
	out := []domain.Workout{}
	// Position order; the fake scans positions 1..7 to keep it simple.
	for position := 1; position <= 7; position++ {
		for _, workout := range r.workouts {
			if workout.ProgramID == programID && workout.Position == position {
				out = append(out, *workout)
			}
		}
	}
	return out, nil
}

func (r *fakeWorkoutRepo) DeleteByProgramID(_ context.Context, programID primitive.ObjectID) error {
	for id, workout := range r.workouts {
		if workout.ProgramID == programID {
			delete(r.workouts, id)
		}
	}
	return nil
}

type fakeExerciseRepo struct {
	exercises map[primitive.ObjectID]*domain.WorkoutExercise
	createErr error
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: make(map[primitive.ObjectID]*domain.WorkoutExercise)}
}

func (r *fakeExerciseRepo) CreateMany(_ context.Context, exercises []*domain.WorkoutExercise) ([]primitive.ObjectID, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	ids := make([]primitive.ObjectID, len(exercises))
	for i, exercise := range exercises {
		exercise.ID = primitive.NewObjectID()
		copied := *exercise
		r.exercises[exercise.ID] = &copied
		ids[i] = exercise.ID
	}
	return ids, nil
}

func (r *fakeExerciseRepo) GetByWorkoutID(_ context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutExercise, error) {
	out := []domain.WorkoutExercise{}
	for position := 1; position <= 20; position++ {
		for _, exercise := range r.exercises {
			if exercise.WorkoutID == workoutID && exercise.Position == position {
				out = append(out, *exercise)
			}
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) DeleteByWorkoutIDs(_ context.Context, workoutIDs []primitive.ObjectID) error {
	for id, exercise := range r.exercises {
		for _, workoutID := range workoutIDs {
			if exercise.WorkoutID == workoutID {
				delete(r.exercises, id)
			}
		}
	}
	return nil
}

type stubGenerator struct {
	program *domain.CandidateProgram
	err     error
	calls   int
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (*domain.CandidateProgram, json.RawMessage, error) {
	g.calls++
	if g.err != nil {
		return nil, nil, g.err
	}
	copied := *g.program
	raw, _ := json.Marshal(g.program)
	return &copied, raw, nil
}

type fakeArtifactStore struct {
	objects map[string][]byte
	url     string
}

func newFakeArtifactStore() *fakeArtifactStore {
	return &fakeArtifactStore{objects: make(map[string][]byte), url: "https://example.com/presigned"}
}

func (s *fakeArtifactStore) PutObject(_ context.Context, objectKey string, body []byte, _ string) error {
	s.objects[objectKey] = body
	return nil
}

func (s *fakeArtifactStore) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	if _, ok := s.objects[objectKey]; !ok {
		return "", errors.New("object not found")
	}
	return s.url, nil
}

func (s *fakeArtifactStore) DeleteObject(_ context.Context, objectKey string) error {
	delete(s.objects, objectKey)
	return nil
}

// --- Fixtures ---

func pplCandidate() *domain.CandidateProgram {
	return &domain.CandidateProgram{
		ProgramName: "PPL Base",
		SplitType:   domain.SplitPushPullLegs,
		Weeks:       8,
		Notes:       "Deload on week 4.",
		Workouts: []domain.CandidateWorkout{
			{
				Day: 1, Name: "Push A", Focus: "chest and triceps", EstimatedDurationMinutes: 60,
				Exercises: []domain.CandidateExercise{
					{UID: "ex_001", Sets: 4, Reps: "8-12", RestSeconds: 150},
					{UID: "ex_043", Sets: 3, Reps: "12-15", RestSeconds: 60},
				},
			},
			{
				Day: 2, Name: "Pull A", Focus: "back and biceps", EstimatedDurationMinutes: 65,
				Exercises: []domain.CandidateExercise{
					{UID: "ex_010", Sets: 3, Reps: "4-6", RestSeconds: 180},
				},
			},
			{
				Day: 3, Name: "Legs A", Focus: "quads and hamstrings", EstimatedDurationMinutes: 70,
				Exercises: []domain.CandidateExercise{
					{UID: "ex_020", Sets: 4, Reps: "6-8", RestSeconds: 180},
					{UID: "ex_023", Sets: 3, Reps: "10-12", RestSeconds: 90},
				},
			},
		},
	}
}

type serviceFixture struct {
	service      ProgramService
	programRepo  *fakeProgramRepo
	workoutRepo  *fakeWorkoutRepo
	exerciseRepo *fakeExerciseRepo
	generator    *stubGenerator
	artifacts    *fakeArtifactStore
}

func newServiceFixture(generator *stubGenerator) *serviceFixture {
	f := &serviceFixture{
		programRepo:  newFakeProgramRepo(),
		workoutRepo:  newFakeWorkoutRepo(),
		exerciseRepo: newFakeExerciseRepo(),
		generator:    generator,
		artifacts:    newFakeArtifactStore(),
	}
	f.service = NewProgramService(f.programRepo, f.workoutRepo, f.exerciseRepo, catalog.Default(), f.generator, f.artifacts)
	return f
}

func pplRequest() domain.GenerationRequest {
	return domain.GenerationRequest{Days: 3, SplitType: domain.SplitPushPullLegs}
}

// --- Tests ---

func TestGenerateProgramRejectsBadInputBeforeGeneration(t *testing.T) {
	f := newServiceFixture(&stubGenerator{program: pplCandidate()})
	userID := primitive.NewObjectID()

	cases := []struct {
		name    string
		req     domain.GenerationRequest
		wantErr error
	}{
		{"days zero", domain.GenerationRequest{Days: 0, SplitType: domain.SplitFullBody}, ErrInvalidDays},
		{"days eight", domain.GenerationRequest{Days: 8, SplitType: domain.SplitFullBody}, ErrInvalidDays},
		{"missing split", domain.GenerationRequest{Days: 3}, ErrSplitTypeRequired},
		{"unknown split", domain.GenerationRequest{Days: 3, SplitType: "bro_split"}, ErrInvalidSplitType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.GenerateProgram(context.Background(), userID, tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// Input validation failures must not cost a model call.
	assert.Equal(t, 0, f.generator.calls)
	assert.Empty(t, f.programRepo.programs)
}

func TestGenerateProgramPersistsFullTree(t *testing.T) {
	f := newServiceFixture(&stubGenerator{program: pplCandidate()})
	userID := primitive.NewObjectID()

	enriched, err := f.service.GenerateProgram(context.Background(), userID, pplRequest())
	require.NoError(t, err)

	// Exactly one program row.
	require.Len(t, f.programRepo.programs, 1)
	programID, err := primitive.ObjectIDFromHex(enriched.ID)
	require.NoError(t, err)
	program := f.programRepo.programs[programID]
	require.NotNil(t, program)
	assert.Equal(t, userID, program.UserID)
	assert.Equal(t, "PPL Base", program.ProgramName)
	assert.Equal(t, 3, program.RequestedDays)
	assert.Equal(t, 8, program.Weeks)
	assert.Nil(t, program.DeletedAt)

	// W workout rows, position equal to day.
	workouts, err := f.workoutRepo.GetByProgramID(context.Background(), programID)
	require.NoError(t, err)
	require.Len(t, workouts, 3)
	for _, workout := range workouts {
		assert.Equal(t, workout.Day, workout.Position)
	}

	// Sum(E_i) exercise rows with 1-based positions per workout.
	wantExercises := 0
	for _, cw := range pplCandidate().Workouts {
		wantExercises += len(cw.Exercises)
	}
	require.Len(t, f.exerciseRepo.exercises, wantExercises)
	for _, workout := range workouts {
		exercises, err := f.exerciseRepo.GetByWorkoutID(context.Background(), workout.ID)
		require.NoError(t, err)
		for j, exercise := range exercises {
			assert.Equal(t, j+1, exercise.Position)
		}
	}

	// Enriched response carries catalog details for immediate display.
	require.Len(t, enriched.Workouts, 3)
	first := enriched.Workouts[0].Exercises[0]
	require.NotNil(t, first.Details)
	assert.Equal(t, "Barbell Bench Press", first.Details.Name)
	assert.Equal(t, domain.MovementCompound, first.Details.MovementType)
}

func TestGenerateProgramArchivesArtifact(t *testing.T) {
	f := newServiceFixture(&stubGenerator{program: pplCandidate()})
	userID := primitive.NewObjectID()

	enriched, err := f.service.GenerateProgram(context.Background(), userID, pplRequest())
	require.NoError(t, err)

	require.Len(t, f.artifacts.objects, 1)
	key := "artifacts/" + userID.Hex() + "/" + enriched.ID + ".json"
	body, ok := f.artifacts.objects[key]
	require.True(t, ok, "expected artifact under %s", key)

	var artifact map[string]any
	require.NoError(t, json.Unmarshal(body, &artifact))
	assert.Equal(t, enriched.ID, artifact["program_id"])
	assert.Contains(t, artifact["prompt"], "AVAILABLE EXERCISES")

	url, err := f.service.ArtifactDownloadURL(context.Background(), userID, mustObjectID(t, enriched.ID))
	require.NoError(t, err)
	assert.Equal(t, f.artifacts.url, url)
}

func TestArtifactDownloadURLWithoutStore(t *testing.T) {
	f := newServiceFixture(&stubGenerator{program: pplCandidate()})
	f.service = NewProgramService(f.programRepo, f.workoutRepo, f.exerciseRepo, catalog.Default(), f.generator, nil)
	userID := primitive.NewObjectID()

	_, err := f.service.ArtifactDownloadURL(context.Background(), userID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrArtifactNotAvailable)
}

func TestGenerateProgramGeneratorFailure(t *testing.T) {
	f := newServiceFixture(&stubGenerator{err: errors.New("model unavailable")})
	userID := primitive.NewObjectID()

	_, err := f.service.GenerateProgram(context.Background(), userID, pplRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation failed")
	assert.Empty(t, f.programRepo.programs)
	assert.Empty(t, f.workoutRepo.workouts)
}

func TestGenerateProgramRejectsUnknownExercise(t *testing.T) {
	candidate := pplCandidate()
	candidate.Workouts[1].Exercises[0].UID = "ex_999"
	f := newServiceFixture(&stubGenerator{program: candidate})
	userID := primitive.NewObjectID()

	_, err := f.service.GenerateProgram(context.Background(), userID, pplRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ex_999")

	// Whole candidate discarded, nothing persisted.
	assert.Empty(t, f.programRepo.programs)
	assert.Empty(t, f.workoutRepo.workouts)
	assert.Empty(t, f.exerciseRepo.exercises)
}

func TestGenerateProgramRollsBackOnWorkoutFailure(t *testing.T) {
	f := newServiceFixture(&stubGenerator{program: pplCandidate()})
	f.workoutRepo.createErr = errors.New("collection unavailable")
	userID := primitive.NewObjectID()

	_, err := f.service.GenerateProgram(context.Background(), userID, pplRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save workouts")

	// Compensating delete removed the program row.
	assert.Empty(t, f.programRepo.programs)
}

func TestGenerateProgramRollsBackOnExerciseFailure(t *testing.T) {
	f := newServiceFixture(&stubGenerator{program: pplCandidate()})
	f.exerciseRepo.createErr = errors.New("collection unavailable")
	userID := primitive.NewObjectID()

	_, err := f.service.GenerateProgram(context.Background(), userID, pplRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save exercises")

	assert.Empty(t, f.programRepo.programs)
	assert.Empty(t, f.workoutRepo.workouts)
	assert.Empty(t, f.exerciseRepo.exercises)
}

func TestGenerateProgramIsNotIdempotent(t *testing.T) {
	f := newServiceFixture(&stubGenerator{program: pplCandidate()})
	userID := primitive.NewObjectID()

	first, err := f.service.GenerateProgram(context.Background(), userID, pplRequest())
	require.NoError(t, err)
	second, err := f.service.GenerateProgram(context.Background(), userID, pplRequest())
	require.NoError(t, err)

	// No deduplication: identical requests yield distinct programs.
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, f.programRepo.programs, 2)
}

func TestDeleteProgramIsSoftDelete(t *testing.T) {
	f := newServiceFixture(&stubGenerator{program: pplCandidate()})
	userID := primitive.NewObjectID()

	enriched, err := f.service.GenerateProgram(context.Background(), userID, pplRequest())
	require.NoError(t, err)
	programID := mustObjectID(t, enriched.ID)

	has, err := f.service.HasActivePrograms(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, f.service.DeleteProgram(context.Background(), userID, programID))

	// Row retained and retrievable by id, DeletedAt set.
	detail, err := f.service.GetProgram(context.Background(), userID, programID)
	require.NoError(t, err)
	require.NotNil(t, detail.DeletedAt)

	// Excluded from listing and existence checks.
	programs, err := f.service.ListPrograms(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, programs)

	has, err = f.service.HasActivePrograms(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, has)

	// Deleting again reports not found.
	assert.ErrorIs(t, f.service.DeleteProgram(context.Background(), userID, programID), ErrProgramNotFound)
}

func TestGetProgramEnforcesOwnership(t *testing.T) {
	f := newServiceFixture(&stubGenerator{program: pplCandidate()})
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	enriched, err := f.service.GenerateProgram(context.Background(), owner, pplRequest())
	require.NoError(t, err)
	programID := mustObjectID(t, enriched.ID)

	_, err = f.service.GetProgram(context.Background(), stranger, programID)
	assert.ErrorIs(t, err, ErrProgramNotFound)

	err = f.service.DeleteProgram(context.Background(), stranger, programID)
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestGetProgramReturnsOrderedTree(t *testing.T) {
	f := newServiceFixture(&stubGenerator{program: pplCandidate()})
	userID := primitive.NewObjectID()

	enriched, err := f.service.GenerateProgram(context.Background(), userID, pplRequest())
	require.NoError(t, err)

	detail, err := f.service.GetProgram(context.Background(), userID, mustObjectID(t, enriched.ID))
	require.NoError(t, err)

	require.Len(t, detail.Workouts, 3)
	for i, workout := range detail.Workouts {
		assert.Equal(t, i+1, workout.Day)
	}

	push := detail.Workouts[0]
	require.Len(t, push.Exercises, 2)
	assert.Equal(t, "ex_001", push.Exercises[0].ExerciseUID)
	assert.Equal(t, 1, push.Exercises[0].Position)
	require.NotNil(t, push.Exercises[0].Details)
	assert.Equal(t, "Barbell Bench Press", push.Exercises[0].Details.Name)
	assert.Equal(t, "ex_043", push.Exercises[1].ExerciseUID)
	assert.Equal(t, 2, push.Exercises[1].Position)
}

func mustObjectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}

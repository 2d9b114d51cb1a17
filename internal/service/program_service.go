package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fitforge/workout-app/internal/catalog"
	"fitforge/workout-app/internal/domain"
	"fitforge/workout-app/internal/generation"
	"fitforge/workout-app/internal/repository"
	"fitforge/workout-app/internal/storage"
)

// --- Error Definitions ---
var (
	ErrInvalidDays          = errors.New("days must be between 1 and 7")
	ErrSplitTypeRequired    = errors.New("split_type is required")
	ErrInvalidSplitType     = errors.New("unrecognized split_type")
	ErrProgramNotFound      = errors.New("program not found")
	ErrArtifactNotAvailable = errors.New("artifact archiving is not enabled")
)

// EnrichedExercise is a candidate exercise joined with its catalog entry for
// immediate client display. Details is null for an unknown uid; after
// validation that cannot happen, but the response shape keeps the field.
type EnrichedExercise struct {
	domain.CandidateExercise
	Details *domain.ExerciseDefinition `json:"details"`
}

// EnrichedWorkout mirrors a candidate workout with enriched exercises.
type EnrichedWorkout struct {
	Day                      int                `json:"day"`
	Name                     string             `json:"name"`
	Focus                    string             `json:"focus"`
	EstimatedDurationMinutes int                `json:"estimated_duration_minutes"`
	Exercises                []EnrichedExercise `json:"exercises"`
}

// EnrichedProgram is the full response payload of a successful generation:
// the persisted program id plus the candidate enriched with catalog details,
// so the client needs no follow-up fetch.
type EnrichedProgram struct {
	ID          string            `json:"id"`
	ProgramName string            `json:"program_name"`
	SplitType   domain.SplitType  `json:"split_type"`
	Weeks       int               `json:"weeks"`
	Notes       string            `json:"notes,omitempty"`
	Workouts    []EnrichedWorkout `json:"workouts"`
}

// WorkoutExerciseDetail is a persisted exercise row joined with its catalog entry.
type WorkoutExerciseDetail struct {
	domain.WorkoutExercise
	Details *domain.ExerciseDefinition `json:"details"`
}

// WorkoutDetail is a persisted workout with its exercise rows in position order.
type WorkoutDetail struct {
	domain.Workout
	Exercises []WorkoutExerciseDetail `json:"exercises"`
}

// ProgramDetail is a persisted program with its full workout tree.
type ProgramDetail struct {
	domain.WorkoutProgram
	Workouts []WorkoutDetail `json:"workouts"`
}

// ProgramService owns the generation pipeline (prompt -> generate ->
// validate -> persist -> enrich) and the program read/delete surface.
type ProgramService interface {
	GenerateProgram(ctx context.Context, userID primitive.ObjectID, req domain.GenerationRequest) (*EnrichedProgram, error)
	ListPrograms(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutProgram, error)
	GetProgram(ctx context.Context, userID, programID primitive.ObjectID) (*ProgramDetail, error)
	DeleteProgram(ctx context.Context, userID, programID primitive.ObjectID) error
	HasActivePrograms(ctx context.Context, userID primitive.ObjectID) (bool, error)
	ArtifactDownloadURL(ctx context.Context, userID, programID primitive.ObjectID) (string, error)
}

// programService implements the ProgramService interface.
type programService struct {
	programRepo  repository.ProgramRepository
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.WorkoutExerciseRepository
	catalog      *catalog.Catalog
	generator    generation.Generator
	artifacts    storage.ArtifactStore // nil when archiving is disabled
}

// NewProgramService creates a new instance of programService. artifacts may
// be nil, which disables generation-artifact archiving.
func NewProgramService(
	programRepo repository.ProgramRepository,
	workoutRepo repository.WorkoutRepository,
	exerciseRepo repository.WorkoutExerciseRepository,
	cat *catalog.Catalog,
	generator generation.Generator,
	artifacts storage.ArtifactStore,
) ProgramService {
	return &programService{
		programRepo:  programRepo,
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		catalog:      cat,
		generator:    generator,
		artifacts:    artifacts,
	}
}

// GenerateProgram runs one generation attempt end to end. Stages run
// strictly in sequence; the first failing stage short-circuits the rest and
// nothing partial is ever reported. Two identical requests produce two
// distinct programs: there is no deduplication and the generator is
// intentionally non-deterministic.
func (s *programService) GenerateProgram(ctx context.Context, userID primitive.ObjectID, req domain.GenerationRequest) (*EnrichedProgram, error) {
	// Input validation happens before any generator call to avoid wasted cost.
	if req.Days < 1 || req.Days > 7 {
		return nil, ErrInvalidDays
	}
	if req.SplitType == "" {
		return nil, ErrSplitTypeRequired
	}
	if !req.SplitType.IsValid() {
		return nil, ErrInvalidSplitType
	}

	requestID := uuid.NewString()
	log.Printf("generation %s: user=%s days=%d split=%s", requestID, userID.Hex(), req.Days, req.SplitType)

	prompt := generation.BuildPrompt(req.Days, req.SplitType, req.Preferences, s.catalog)

	candidate, raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	if err := s.catalog.ValidateProgram(candidate); err != nil {
		// The whole candidate is discarded; nothing is persisted.
		return nil, err
	}

	programID, err := s.persistProgram(ctx, userID, candidate, req)
	if err != nil {
		return nil, err
	}

	log.Printf("generation %s: persisted program %s (%d workouts)", requestID, programID.Hex(), len(candidate.Workouts))

	s.archiveArtifact(ctx, requestID, userID, programID, prompt, raw)

	return s.enrichProgram(programID, candidate), nil
}

// persistProgram writes the validated candidate across the three collections.
// Insert order is significant: child rows need parent-generated ids. On a
// later-step failure earlier-inserted rows are removed by compensating
// deletes keyed by the program id, so no partial program survives.
func (s *programService) persistProgram(ctx context.Context, userID primitive.ObjectID, candidate *domain.CandidateProgram, req domain.GenerationRequest) (primitive.ObjectID, error) {
	program := &domain.WorkoutProgram{
		UserID:        userID,
		ProgramName:   candidate.ProgramName,
		SplitType:     candidate.SplitType,
		Weeks:         candidate.Weeks,
		Notes:         candidate.Notes,
		RequestedDays: req.Days,
		Preferences:   req.Preferences,
	}

	programID, err := s.programRepo.Create(ctx, program)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to save program: %w", err)
	}

	workouts := make([]*domain.Workout, len(candidate.Workouts))
	for i, cw := range candidate.Workouts {
		workouts[i] = &domain.Workout{
			ProgramID:                programID,
			Day:                      cw.Day,
			Name:                     cw.Name,
			Focus:                    cw.Focus,
			EstimatedDurationMinutes: cw.EstimatedDurationMinutes,
			Position:                 cw.Day,
		}
	}

	workoutIDs, err := s.workoutRepo.CreateMany(ctx, workouts)
	if err != nil {
		s.rollback(ctx, programID, nil)
		return primitive.NilObjectID, fmt.Errorf("failed to save workouts: %w", err)
	}

	var exercises []*domain.WorkoutExercise
	for i, cw := range candidate.Workouts {
		for j, ce := range cw.Exercises {
			exercises = append(exercises, &domain.WorkoutExercise{
				WorkoutID:   workoutIDs[i],
				ExerciseUID: ce.UID,
				Sets:        ce.Sets,
				Reps:        ce.Reps,
				RestSeconds: ce.RestSeconds,
				Tempo:       ce.Tempo,
				Notes:       ce.Notes,
				Position:    j + 1,
			})
		}
	}

	if len(exercises) > 0 {
		if _, err := s.exerciseRepo.CreateMany(ctx, exercises); err != nil {
			s.rollback(ctx, programID, workoutIDs)
			return primitive.NilObjectID, fmt.Errorf("failed to save exercises: %w", err)
		}
	}

	return programID, nil
}

// rollback hard-deletes everything inserted for programID so far. Failures
// here are logged, not returned: the original insert error is the one the
// caller needs to see.
func (s *programService) rollback(ctx context.Context, programID primitive.ObjectID, workoutIDs []primitive.ObjectID) {
	if len(workoutIDs) > 0 {
		if err := s.exerciseRepo.DeleteByWorkoutIDs(ctx, workoutIDs); err != nil {
			log.Printf("ERROR: rollback of workout exercises for program %s failed: %v", programID.Hex(), err)
		}
	}
	if err := s.workoutRepo.DeleteByProgramID(ctx, programID); err != nil {
		log.Printf("ERROR: rollback of workouts for program %s failed: %v", programID.Hex(), err)
	}
	if err := s.programRepo.Delete(ctx, programID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Printf("ERROR: rollback of program %s failed: %v", programID.Hex(), err)
	}
}

// enrichProgram joins catalog details onto every exercise of the candidate.
func (s *programService) enrichProgram(programID primitive.ObjectID, candidate *domain.CandidateProgram) *EnrichedProgram {
	enriched := &EnrichedProgram{
		ID:          programID.Hex(),
		ProgramName: candidate.ProgramName,
		SplitType:   candidate.SplitType,
		Weeks:       candidate.Weeks,
		Notes:       candidate.Notes,
		Workouts:    make([]EnrichedWorkout, len(candidate.Workouts)),
	}
	for i, cw := range candidate.Workouts {
		workout := EnrichedWorkout{
			Day:                      cw.Day,
			Name:                     cw.Name,
			Focus:                    cw.Focus,
			EstimatedDurationMinutes: cw.EstimatedDurationMinutes,
			Exercises:                make([]EnrichedExercise, len(cw.Exercises)),
		}
		for j, ce := range cw.Exercises {
			workout.Exercises[j] = EnrichedExercise{CandidateExercise: ce}
			if def, ok := s.catalog.Get(ce.UID); ok {
				workout.Exercises[j].Details = &def
			}
		}
		enriched.Workouts[i] = workout
	}
	return enriched
}

// generationArtifact is the archived record of one generation attempt.
type generationArtifact struct {
	RequestID   string          `json:"request_id"`
	UserID      string          `json:"user_id"`
	ProgramID   string          `json:"program_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Prompt      string          `json:"prompt"`
	RawOutput   json.RawMessage `json:"raw_output"`
}

// archiveArtifact uploads the raw generation payload. Best-effort: failures
// are logged and never surfaced to the caller.
func (s *programService) archiveArtifact(ctx context.Context, requestID string, userID, programID primitive.ObjectID, prompt string, raw json.RawMessage) {
	if s.artifacts == nil {
		return
	}

	artifact := generationArtifact{
		RequestID:   requestID,
		UserID:      userID.Hex(),
		ProgramID:   programID.Hex(),
		GeneratedAt: time.Now().UTC(),
		Prompt:      prompt,
		RawOutput:   raw,
	}
	body, err := json.Marshal(artifact)
	if err != nil {
		log.Printf("WARN: failed to encode generation artifact for program %s: %v", programID.Hex(), err)
		return
	}

	key := artifactKey(userID, programID)
	if err := s.artifacts.PutObject(ctx, key, body, "application/json"); err != nil {
		log.Printf("WARN: failed to archive generation artifact %s: %v", key, err)
	}
}

func artifactKey(userID, programID primitive.ObjectID) string {
	return fmt.Sprintf("artifacts/%s/%s.json", userID.Hex(), programID.Hex())
}

// ListPrograms returns the user's non-deleted programs, newest first.
func (s *programService) ListPrograms(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutProgram, error) {
	return s.programRepo.GetByUserID(ctx, userID)
}

// GetProgram returns one program with its full workout tree, exercises
// enriched with catalog details. Soft-deleted programs remain retrievable by
// id. Programs of other users surface as not found.
func (s *programService) GetProgram(ctx context.Context, userID, programID primitive.ObjectID) (*ProgramDetail, error) {
	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	if program.UserID != userID {
		return nil, ErrProgramNotFound
	}

	workouts, err := s.workoutRepo.GetByProgramID(ctx, programID)
	if err != nil {
		return nil, err
	}

	detail := &ProgramDetail{
		WorkoutProgram: *program,
		Workouts:       make([]WorkoutDetail, len(workouts)),
	}
	for i, workout := range workouts {
		exercises, err := s.exerciseRepo.GetByWorkoutID(ctx, workout.ID)
		if err != nil {
			return nil, err
		}
		workoutDetail := WorkoutDetail{
			Workout:   workout,
			Exercises: make([]WorkoutExerciseDetail, len(exercises)),
		}
		for j, exercise := range exercises {
			workoutDetail.Exercises[j] = WorkoutExerciseDetail{WorkoutExercise: exercise}
			if def, ok := s.catalog.Get(exercise.ExerciseUID); ok {
				workoutDetail.Exercises[j].Details = &def
			}
		}
		detail.Workouts[i] = workoutDetail
	}
	return detail, nil
}

// DeleteProgram soft-deletes a program owned by userID. The row and its
// workout tree are retained.
func (s *programService) DeleteProgram(ctx context.Context, userID, programID primitive.ObjectID) error {
	err := s.programRepo.SoftDelete(ctx, programID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProgramNotFound
	}
	return err
}

// HasActivePrograms reports whether the user has any non-deleted programs.
func (s *programService) HasActivePrograms(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	return s.programRepo.HasActive(ctx, userID)
}

// ArtifactDownloadURL returns a presigned URL for the archived generation
// payload of one of the user's programs.
func (s *programService) ArtifactDownloadURL(ctx context.Context, userID, programID primitive.ObjectID) (string, error) {
	if s.artifacts == nil {
		return "", ErrArtifactNotAvailable
	}

	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrProgramNotFound
		}
		return "", err
	}
	if program.UserID != userID {
		return "", ErrProgramNotFound
	}

	return s.artifacts.GeneratePresignedDownloadURL(ctx, artifactKey(userID, programID), storage.DefaultPresignedURLExpiry)
}

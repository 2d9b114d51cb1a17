package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitforge/workout-app/internal/domain"
	"fitforge/workout-app/internal/llm/gemini"
)

type fakeStructuredClient struct {
	raw       []byte
	err       error
	gotPrompt string
	gotSchema *gemini.Schema
}

func (f *fakeStructuredClient) GenerateJSON(_ context.Context, prompt string, schema *gemini.Schema) ([]byte, error) {
	f.gotPrompt = prompt
	f.gotSchema = schema
	return f.raw, f.err
}

func TestGeminiGeneratorParsesProgram(t *testing.T) {
	raw := []byte(`{
		"program_name": "PPL Base",
		"split_type": "push_pull_legs",
		"weeks": 8,
		"workouts": [
			{
				"day": 1,
				"name": "Push A",
				"focus": "chest and triceps",
				"estimated_duration_minutes": 60,
				"exercises": [
					{"uid": "ex_001", "sets": 4, "reps": "8-12", "rest_seconds": 120}
				]
			}
		]
	}`)
	client := &fakeStructuredClient{raw: raw}
	gen := NewGeminiGenerator(client)

	program, gotRaw, err := gen.Generate(context.Background(), "the prompt")
	require.NoError(t, err)

	assert.Equal(t, "the prompt", client.gotPrompt)
	assert.Same(t, ProgramSchema, client.gotSchema)
	assert.JSONEq(t, string(raw), string(gotRaw))

	assert.Equal(t, "PPL Base", program.ProgramName)
	assert.Equal(t, domain.SplitPushPullLegs, program.SplitType)
	assert.Equal(t, 8, program.Weeks)
	require.Len(t, program.Workouts, 1)
	require.Len(t, program.Workouts[0].Exercises, 1)
	assert.Equal(t, "ex_001", program.Workouts[0].Exercises[0].UID)
}

func TestGeminiGeneratorPropagatesClientError(t *testing.T) {
	client := &fakeStructuredClient{err: errors.New("transport down")}
	gen := NewGeminiGenerator(client)

	_, _, err := gen.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transport down")
}

func TestGeminiGeneratorRejectsMalformedJSON(t *testing.T) {
	client := &fakeStructuredClient{raw: []byte(`{"program_name": `)}
	gen := NewGeminiGenerator(client)

	_, _, err := gen.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed program JSON")
}

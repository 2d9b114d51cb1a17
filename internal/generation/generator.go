package generation

import (
	"context"
	"encoding/json"
	"fmt"

	"fitforge/workout-app/internal/domain"
	"fitforge/workout-app/internal/llm/gemini"
)

// Generator produces a candidate program from a prompt. The production
// implementation is backed by a nonzero-temperature model call, so output is
// NOT reproducible for identical prompts; callers must not assume idempotence.
// Tests swap in a deterministic stub.
type Generator interface {
	// Generate returns the parsed candidate and the raw model output.
	// One attempt, no retry; any failure surfaces with no partial result.
	Generate(ctx context.Context, prompt string) (*domain.CandidateProgram, json.RawMessage, error)
}

// StructuredClient is the slice of the Gemini client the generator needs.
type StructuredClient interface {
	GenerateJSON(ctx context.Context, prompt string, schema *gemini.Schema) ([]byte, error)
}

type geminiGenerator struct {
	client StructuredClient
}

// NewGeminiGenerator returns a Generator backed by the Gemini structured
// output API, constrained by ProgramSchema.
func NewGeminiGenerator(client StructuredClient) Generator {
	return &geminiGenerator{client: client}
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (*domain.CandidateProgram, json.RawMessage, error) {
	raw, err := g.client.GenerateJSON(ctx, prompt, ProgramSchema)
	if err != nil {
		return nil, nil, err
	}

	var program domain.CandidateProgram
	if err := json.Unmarshal(raw, &program); err != nil {
		return nil, nil, fmt.Errorf("model returned malformed program JSON: %w", err)
	}
	return &program, json.RawMessage(raw), nil
}

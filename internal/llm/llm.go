package llm

import "context"

// Generator is the contract for the external generative model: a composed
// prompt in, the model's textual reply out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

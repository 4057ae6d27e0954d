// Package generator defines the boundary to the external text-generation
// service. Exactly one request is issued per Generate call: no retry, no
// streaming, no caching. The service is non-deterministic, so identical
// prompts are expected to yield different completions.
package generator

import "context"

// Generator produces one text completion for one prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

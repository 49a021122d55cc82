// Package textgen wraps the external text-generation capability that judges
// credentials and answers free-form prompts.
package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrTimeout is returned when a generation call exceeds its deadline.
	ErrTimeout = errors.New("text generation timed out")

	// ErrEmptyPrompt is returned when asked to generate from an empty prompt.
	ErrEmptyPrompt = errors.New("prompt is empty")
)

// Generator turns a prompt into free-form text. Output format is not
// guaranteed and may differ between calls for the same prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Static returns a Generator that always answers with text.
func Static(text string) Generator {
	return GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return text, nil
	})
}

// ContainsValid reports whether the model's answer approves the request.
// Any occurrence of "valid" counts, in any case, which means "invalid" and
// "not valid" approve as well.
func ContainsValid(text string) bool {
	return strings.Contains(strings.ToLower(text), "valid")
}

type timeoutGenerator struct {
	next    Generator
	timeout time.Duration
}

// WithTimeout bounds every call to next by d. A non-positive d disables the bound.
func WithTimeout(next Generator, d time.Duration) Generator {
	if d <= 0 {
		return next
	}
	return &timeoutGenerator{next: next, timeout: d}
}

func (g *timeoutGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.next.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s: %v", ErrTimeout, g.timeout, err)
		}
		return "", err
	}
	return text, nil
}

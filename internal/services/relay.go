package services

import (
	"context"
	"fmt"

	"github.com/vivek-dahikar/AutoRegisterAgent/internal/textgen"
)

const MissingPromptMessage = "Prompt field is required"

// RelayService forwards free-form prompts to the generator unchanged.
type RelayService struct {
	generator textgen.Generator
}

func NewRelayService(generator textgen.Generator) *RelayService {
	return &RelayService{generator: generator}
}

// Process returns the generator's answer verbatim in Outcome.Message.
func (s *RelayService) Process(ctx context.Context, prompt string) (Outcome, error) {
	if prompt == "" {
		return missingField(MissingPromptMessage), nil
	}

	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return Outcome{}, fmt.Errorf("relay prompt: %w", err)
	}
	return accepted(answer, answer), nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelay_ReturnsAnswerVerbatim(t *testing.T) {
	gen := &recordingGenerator{answer: "  Paris.\n"}
	svc := NewRelayService(gen)

	out, err := svc.Process(context.Background(), "Capital of France?")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccepted, out.Kind)
	assert.Equal(t, "  Paris.\n", out.Message)
	assert.Equal(t, "Capital of France?", gen.lastPrompt())
}

func TestRelay_EmptyPromptSkipsGenerator(t *testing.T) {
	gen := &recordingGenerator{answer: "unused"}
	svc := NewRelayService(gen)

	out, err := svc.Process(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, OutcomeMissingField, out.Kind)
	assert.Equal(t, "Prompt field is required", out.Message)
	assert.Equal(t, 0, gen.calls())
}

func TestRelay_GeneratorError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewRelayService(&recordingGenerator{err: boom}).Process(context.Background(), "hi")
	assert.ErrorIs(t, err, boom)
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "accepted", OutcomeAccepted.String())
	assert.Equal(t, "rejected", OutcomeRejected.String())
	assert.Equal(t, "missing_field", OutcomeMissingField.String())
	assert.Equal(t, "unknown", OutcomeKind(42).String())
}

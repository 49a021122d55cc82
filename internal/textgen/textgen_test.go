package textgen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsValid(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"valid", true},
		{"VALID", true},
		{"The credentials are Valid.", true},
		{"", false},
		{"rejected: password lacks digits", false},
		// Known weakness kept for parity: negative answers still contain "valid".
		{"invalid", true},
		{"This is not valid.", true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ContainsValid(tc.text), "text %q", tc.text)
	}
}

func TestStatic(t *testing.T) {
	text, err := Static("valid").Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "valid", text)
}

func TestWithTimeout_Expires(t *testing.T) {
	slow := GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	_, err := WithTimeout(slow, 20*time.Millisecond).Generate(context.Background(), "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestWithTimeout_PassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", boom
	})

	_, err := WithTimeout(failing, time.Second).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestWithTimeout_NonPositiveDisables(t *testing.T) {
	_, wrapped := WithTimeout(Static("ok"), 0).(*timeoutGenerator)
	assert.False(t, wrapped)

	_, wrapped = WithTimeout(Static("ok"), time.Second).(*timeoutGenerator)
	assert.True(t, wrapped)
}

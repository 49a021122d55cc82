package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivek-dahikar/AutoRegisterAgent/internal/mq"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/textgen"
	"github.com/vivek-dahikar/AutoRegisterAgent/types"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHashCommand(t *testing.T) {
	out, err := execute(t, "hash", "abc")
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n", out)
}

func TestAskCommand(t *testing.T) {
	orig := newGenerator
	t.Cleanup(func() { newGenerator = orig })

	var seen string
	newGenerator = func(cmd *cobra.Command) (textgen.Generator, error) {
		return textgen.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
			seen = prompt
			return "pong", nil
		}), nil
	}

	out, err := execute(t, "ask", "say", "pong")
	require.NoError(t, err)
	assert.Equal(t, "say pong", seen)
	assert.Contains(t, out, "pong\n")
}

func TestAskCommand_EmptyPrompt(t *testing.T) {
	orig := newGenerator
	t.Cleanup(func() { newGenerator = orig })
	newGenerator = func(cmd *cobra.Command) (textgen.Generator, error) {
		return textgen.Static("unused"), nil
	}

	_, err := execute(t, "ask")
	require.Error(t, err)
	assert.Equal(t, "Prompt field is required", err.Error())
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().AddFlagSet(rootCmd.PersistentFlags())
	require.NoError(t, cmd.Flags().Parse([]string{"--port", "5000", "--model", "mistral"}))

	cfg := loadConfig(cmd)
	assert.Equal(t, 5000, cfg.ServerPort)
	assert.Equal(t, "mistral", cfg.LLM.Model)
}

func TestPrintEvent(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	data, err := json.Marshal(types.AuthEvent{
		Type:       types.AuthEventSignup,
		Username:   "alice",
		Accepted:   true,
		OccurredAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	handler := printEvent(cmd)
	require.NoError(t, handler(context.Background(), mq.Message{ID: "1", Data: data}))
	assert.Contains(t, out.String(), "2026-10-18T12:00:00Z signup accepted alice")

	out.Reset()
	require.NoError(t, handler(context.Background(), mq.Message{ID: "2", Data: []byte("not json")}))
	assert.Contains(t, out.String(), "skipping message 2")
}

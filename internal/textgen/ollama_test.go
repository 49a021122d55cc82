package textgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivek-dahikar/AutoRegisterAgent/config"
)

func newOllamaStub(t *testing.T, handler http.HandlerFunc) *OllamaGenerator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewOllamaGenerator(config.LLMConfig{Host: srv.URL, Model: "llama3.2"}, srv.Client())
	require.NoError(t, err)
	return g
}

func TestOllamaGenerator_Generate(t *testing.T) {
	var got api.GenerateRequest
	g := newOllamaStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.GenerateResponse{
			Model:    "llama3.2",
			Response: "valid",
			Done:     true,
		})
	})

	text, err := g.Generate(context.Background(), "is alice ok?")
	require.NoError(t, err)
	assert.Equal(t, "valid", text)
	assert.Equal(t, "llama3.2", got.Model)
	assert.Equal(t, "is alice ok?", got.Prompt)
	require.NotNil(t, got.Stream)
	assert.False(t, *got.Stream)
}

func TestOllamaGenerator_ServerError(t *testing.T) {
	g := newOllamaStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model 'llama3.2' not found"}`))
	})

	_, err := g.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestOllamaGenerator_EmptyPrompt(t *testing.T) {
	g := newOllamaStub(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("generator must not call the server for an empty prompt")
	})

	_, err := g.Generate(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestOllamaGenerator_Timeout(t *testing.T) {
	release := make(chan struct{})
	g := newOllamaStub(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	t.Cleanup(func() { close(release) })

	_, err := WithTimeout(g, 50*time.Millisecond).Generate(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestNewOllamaGenerator_Validation(t *testing.T) {
	_, err := NewOllamaGenerator(config.LLMConfig{Host: "http://localhost:11434"}, nil)
	assert.Error(t, err)

	_, err = NewOllamaGenerator(config.LLMConfig{Host: "localhost", Model: "llama3.2"}, nil)
	assert.Error(t, err)

	g, err := NewOllamaGenerator(config.LLMConfig{Host: "http://localhost:11434", Model: "llama3.2"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "llama3.2", g.Model())
}

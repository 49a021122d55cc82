package textgen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"github.com/vivek-dahikar/AutoRegisterAgent/config"
)

// OllamaGenerator sends prompts to an Ollama server.
type OllamaGenerator struct {
	client *api.Client
	model  string
}

// NewOllamaGenerator constructs a generator from config.
func NewOllamaGenerator(cfg config.LLMConfig, httpClient *http.Client) (*OllamaGenerator, error) {
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("llm model is required")
	}
	base, err := url.Parse(strings.TrimSpace(cfg.Host))
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid ollama host %q", cfg.Host)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &OllamaGenerator{
		client: api.NewClient(base, httpClient),
		model:  cfg.Model,
	}, nil
}

// Model returns the configured model name.
func (g *OllamaGenerator) Model() string {
	return g.model
}

// Generate runs a single non-streaming completion and returns the full text.
func (g *OllamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	stream := false
	req := &api.GenerateRequest{
		Model:  g.model,
		Prompt: prompt,
		Stream: &stream,
	}

	var out strings.Builder
	err := g.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		out.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	return out.String(), nil
}

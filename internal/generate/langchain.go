// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
)

// LangchainBackend sends the request through a langchaingo llms.Model.
// The single-prompt interface has no system turn or schema field, so both
// are folded into the prompt text and JSON mode is requested as a call
// option.
type LangchainBackend struct {
	Model llms.Model
	name  string
}

// NewGoogleAIBackend returns a LangchainBackend over the langchaingo
// googleai client, which manages its own transport.
func NewGoogleAIBackend(ctx context.Context, apiKey, model string) (*LangchainBackend, error) {
	if model == "" {
		model = DefaultModel
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("creating googleai client: %w", err)
	}
	return &LangchainBackend{Model: llm, name: "langchain"}, nil
}

// NewOllamaBackend returns a LangchainBackend over a local Ollama server.
func NewOllamaBackend(serverURL, model string, client *http.Client) (*LangchainBackend, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}
	opts := []ollama.Option{
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
		ollama.WithFormat("json"),
	}
	if client != nil {
		opts = append(opts, ollama.WithHTTPClient(client))
	}
	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating ollama client: %w", err)
	}
	return &LangchainBackend{Model: llm, name: "ollama"}, nil
}

func (l *LangchainBackend) Name() string {
	if l.name == "" {
		return "langchain"
	}
	return l.name
}

// Complete renders req into a single prompt and returns the model's reply.
func (l *LangchainBackend) Complete(ctx context.Context, req Request) (string, error) {
	prompt, err := foldPrompt(req)
	if err != nil {
		return "", err
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, l.Model, prompt,
		llms.WithTemperature(req.Temperature),
		llms.WithJSONMode(),
	)
	if err != nil {
		return "", fmt.Errorf("calling %s model: %w", l.Name(), err)
	}
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("%s model returned empty content", l.Name())
	}
	return out, nil
}

// foldPrompt joins the system instruction, the schema and the user turn.
func foldPrompt(req Request) (string, error) {
	var b strings.Builder
	if req.System != "" {
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}
	if req.Schema != nil {
		schema, err := json.MarshalIndent(req.Schema, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling schema: %w", err)
		}
		b.WriteString("The reply must be a JSON object matching this schema:\n")
		b.Write(schema)
		b.WriteString("\n\n")
	}
	b.WriteString(req.Prompt)
	return b.String(), nil
}

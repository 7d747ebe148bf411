// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/pdiddy/studyaids/pkg/types"
)

// mockModel is an llms.Model that records the prompt and call options.
type mockModel struct {
	reply  string
	err    error
	prompt string
	opts   llms.CallOptions
}

func (m *mockModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, o := range options {
		o(&m.opts)
	}
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if tc, ok := part.(llms.TextContent); ok {
				m.prompt += tc.Text
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.reply}}}, nil
}

func (m *mockModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestLangchainBackend_Complete(t *testing.T) {
	m := &mockModel{reply: fullReply}
	b := &LangchainBackend{Model: m}

	out, err := b.Complete(context.Background(), Request{
		System:      "sys",
		Prompt:      "user text",
		Schema:      responseSchema(),
		Temperature: 0.7,
	})
	require.NoError(t, err)

	assert.Equal(t, fullReply, out)
	assert.Equal(t, 0.7, m.opts.Temperature)
	assert.True(t, m.opts.JSONMode)
	assert.Contains(t, m.prompt, "sys")
	assert.Contains(t, m.prompt, `"required"`)
	assert.Contains(t, m.prompt, "user text")
}

func TestLangchainBackend_Errors(t *testing.T) {
	_, err := (&LangchainBackend{Model: &mockModel{err: errors.New("quota")}}).Complete(context.Background(), Request{Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota")

	_, err = (&LangchainBackend{Model: &mockModel{reply: "  "}}).Complete(context.Background(), Request{Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty content")
}

func TestLangchainBackend_ThroughGenerator(t *testing.T) {
	b := &LangchainBackend{Model: &mockModel{reply: fullReply}}
	aids, err := New(b, types.GeneratorConfig{}, nil).Generate(context.Background(), "notes")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cell structure", "Photosynthesis"}, aids.Topics)
}

func TestNewOllamaBackend_Validates(t *testing.T) {
	_, err := NewOllamaBackend("", "llama3", nil)
	assert.Error(t, err)

	_, err = NewOllamaBackend("http://localhost:11434", "", nil)
	assert.Error(t, err)

	b, err := NewOllamaBackend("http://localhost:11434", "llama3", nil)
	require.NoError(t, err)
	assert.Equal(t, "ollama", b.Name())
}

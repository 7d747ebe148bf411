// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/studyaids/internal/httputil"
)

// DefaultBaseURL is the Generative Language API root.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiBackend calls the Gemini generateContent REST endpoint with a
// structured-output schema.
type GeminiBackend struct {
	APIKey    string
	Model     string
	BaseURL   string
	UserAgent string

	// MaxRetries is the number of extra attempts on 429/503 answers.
	MaxRetries int

	Client *http.Client
	Log    *zap.Logger
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
	Temperature      float64        `json:"temperature"`
}

// geminiRequest is the request body for models/{model}:generateContent.
type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

// geminiResponse is the subset of the generateContent response we read.
type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// geminiError is the Google API error envelope returned on non-2xx answers.
type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (g *GeminiBackend) Name() string { return "gemini" }

// Complete sends req to generateContent and returns the concatenated text
// of the first candidate.
func (g *GeminiBackend) Complete(ctx context.Context, req Request) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   req.Schema,
			Temperature:      req.Temperature,
		},
	}
	if req.System != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.APIKey)
	if g.UserAgent != "" {
		httpReq.Header.Set("User-Agent", g.UserAgent)
	}

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, httpReq, g.MaxRetries, g.Log)
	if err != nil {
		return "", fmt.Errorf("calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", decodeError(resp)
	}

	var gResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return "", fmt.Errorf("decoding Gemini response: %w", err)
	}

	if len(gResp.Candidates) == 0 {
		if gResp.PromptFeedback != nil && gResp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("Gemini API blocked the prompt: %s", gResp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("Gemini API returned no candidates")
	}

	var text strings.Builder
	for _, part := range gResp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("Gemini API returned empty content (finish reason %q)", gResp.Candidates[0].FinishReason)
	}
	return text.String(), nil
}

func (g *GeminiBackend) endpoint() string {
	base := g.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	model := g.Model
	if model == "" {
		model = DefaultModel
	}
	return strings.TrimRight(base, "/") + "/v1beta/models/" + url.PathEscape(model) + ":generateContent"
}

// decodeError turns a non-2xx answer into an error, preferring the
// message from the Google error envelope over the raw body.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var env geminiError
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		return fmt.Errorf("Gemini API returned %d (%s): %s", resp.StatusCode, env.Error.Status, env.Error.Message)
	}
	return fmt.Errorf("Gemini API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

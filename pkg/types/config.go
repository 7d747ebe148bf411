// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for the generative API client.
type HTTPConfig struct {
	// Timeout bounds a single API call. Zero leaves the call unbounded.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "studyaids/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AIConfig holds settings for the Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "gemini-2.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of extra attempts on 429/503 answers.
	// Zero keeps the single-call behaviour.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// GeneratorBackend selects how the study-aid request reaches the service.
type GeneratorBackend string

const (
	BackendGemini    GeneratorBackend = "gemini"
	BackendLangchain GeneratorBackend = "langchain"
	BackendOllama    GeneratorBackend = "ollama"
)

// NeedsAPIKey reports whether the backend talks to a Google endpoint and
// therefore requires a credential. A local Ollama server does not.
func (b GeneratorBackend) NeedsAPIKey() bool {
	return b != BackendOllama
}

// GeneratorConfig holds settings for the study-aid generation stage.
type GeneratorConfig struct {
	AIConfig   `yaml:",inline"`
	HTTPConfig `yaml:",inline"`

	// Backend selects the client: gemini (REST), langchain (googleai SDK)
	// or ollama (local server, no credential).
	Backend GeneratorBackend `json:"backend" yaml:"backend"`

	// BaseURL is the Generative Language API root for the gemini backend,
	// or the server URL for the ollama backend.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Temperature is the sampling temperature. Nil means the default (0.7);
	// a pointer keeps an explicit 0 distinct from unset.
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`

	// MaxInputChars is the number of characters of document text sent to
	// the service (default 30000). Longer text is cut, not chunked.
	MaxInputChars int `json:"max_input_chars" yaml:"max_input_chars"`

	// Lenient replaces missing top-level keys in the response with empty
	// lists instead of failing.
	Lenient bool `json:"lenient" yaml:"lenient"`
}

// ExtractorBackend identifies the PDF text engine.
type ExtractorBackend string

const (
	ExtractorPDF   ExtractorBackend = "pdf"
	ExtractorMuPDF ExtractorBackend = "mupdf"
)

// ExtractorConfig holds settings for the PDF text extraction stage.
type ExtractorConfig struct {
	// Backend selects the engine: pdf (pure Go) or mupdf.
	Backend ExtractorBackend `json:"backend" yaml:"backend"`
}

// PlannerConfig holds settings for the revision planner.
type PlannerConfig struct {
	// IntervalDays is the spacing between consecutive topics (default 2).
	IntervalDays int `json:"interval_days" yaml:"interval_days"`
}

// OutputConfig holds settings for the output writer.
type OutputConfig struct {
	// Dir receives flashcards.json, quizzes.json and planner.json.
	Dir string `json:"dir" yaml:"dir"`
}

// LogConfig holds settings for diagnostic logging.
type LogConfig struct {
	// Level is "info" or "debug".
	Level string `json:"level" yaml:"level"`

	// Format is "console" or "json".
	Format string `json:"format" yaml:"format"`
}

// Config groups all stage configurations for one run.
type Config struct {
	Generator GeneratorConfig `json:"generator" yaml:"generator"`
	Extractor ExtractorConfig `json:"extractor" yaml:"extractor"`
	Planner   PlannerConfig   `json:"planner" yaml:"planner"`
	Output    OutputConfig    `json:"output" yaml:"output"`
	Log       LogConfig       `json:"log" yaml:"log"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate turns document text into study aids (topics,
// flashcards and a multiple-choice quiz) with one call to a generative
// language service.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/pdiddy/studyaids/pkg/types"
)

const (
	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel = "gemini-2.5-flash-preview-09-2025"

	// DefaultMaxInputChars bounds the document text sent to the service.
	DefaultMaxInputChars = 30000

	// DefaultTemperature is the sampling temperature for the request.
	DefaultTemperature = 0.7

	// MaxTemperature is the upper bound accepted by the Gemini API.
	MaxTemperature = 2.0
)

// Request is one study-aid request as seen by a Backend.
type Request struct {
	// System is the fixed instruction describing the study aids.
	System string

	// Prompt is the user turn: the document text wrapped in the template.
	Prompt string

	// Schema is the structured-output schema for the reply.
	Schema map[string]any

	Temperature float64
}

// Backend sends a Request to a generative service and returns the raw
// reply text. Implementations make exactly one logical call.
type Backend interface {
	Name() string
	Complete(ctx context.Context, req Request) (string, error)
}

// Generator builds study-aid requests, sends them through a Backend and
// parses the reply.
type Generator struct {
	backend     Backend
	cfg         types.GeneratorConfig
	temperature float64
	log         *zap.Logger
}

// New returns a Generator. Zero MaxInputChars falls back to
// DefaultMaxInputChars and a nil Temperature to DefaultTemperature. A nil
// logger disables logging.
func New(backend Backend, cfg types.GeneratorConfig, log *zap.Logger) *Generator {
	if cfg.MaxInputChars <= 0 {
		cfg.MaxInputChars = DefaultMaxInputChars
	}
	temperature := DefaultTemperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{backend: backend, cfg: cfg, temperature: temperature, log: log}
}

// Name returns the name of the backend the generator calls.
func (g *Generator) Name() string { return g.backend.Name() }

// Generate sends text (truncated to the configured limit) to the service
// and returns the parsed study aids. Every failure is a generation error.
func (g *Generator) Generate(ctx context.Context, text string) (types.StudyAids, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	sent := Truncate(text, g.cfg.MaxInputChars)
	if len(sent) < len(text) {
		g.log.Info("document text truncated",
			zap.Int("chars", utf8.RuneCountInString(text)),
			zap.Int("limit", g.cfg.MaxInputChars))
	}

	prompt, err := renderPrompt(sent)
	if err != nil {
		return types.StudyAids{}, types.GenerationError("render prompt", err)
	}

	req := Request{
		System:      systemInstruction,
		Prompt:      prompt,
		Schema:      responseSchema(),
		Temperature: g.temperature,
	}

	g.log.Debug("calling generative service",
		zap.String("backend", g.backend.Name()),
		zap.String("model", g.cfg.Model),
		zap.Float64("temperature", g.temperature),
		zap.Int("prompt_chars", utf8.RuneCountInString(prompt)))

	raw, err := g.backend.Complete(ctx, req)
	if err != nil {
		return types.StudyAids{}, types.GenerationError("call service", err)
	}

	return Parse(raw, g.cfg.Lenient, g.log)
}

// Truncate returns the first n Unicode code points of text.
func Truncate(text string, n int) string {
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}
	i := 0
	for pos := range text {
		if i == n {
			return text[:pos]
		}
		i++
	}
	return text
}

type rawFlashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type rawQuizItem struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// requiredKeys lists the top-level keys every reply must carry.
var requiredKeys = []string{"topics", "flashcards", "quiz"}

// Parse decodes a reply into StudyAids. Markdown code fences around the
// JSON are ignored. A missing top-level key is an error unless lenient is
// set, in which case it becomes an empty list; a null value is always an
// empty list. Flashcards and quiz items with an empty question are
// dropped. The returned slices are never nil.
func Parse(raw string, lenient bool, log *zap.Logger) (types.StudyAids, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripFences(raw)), &top); err != nil {
		return types.StudyAids{}, types.GenerationError("parse response", fmt.Errorf("reply is not a JSON object: %w", err))
	}

	for _, key := range requiredKeys {
		if _, ok := top[key]; ok {
			continue
		}
		if !lenient {
			return types.StudyAids{}, types.GenerationError("parse response", fmt.Errorf("reply is missing %q", key))
		}
		log.Warn("reply is missing key, using empty list", zap.String("key", key))
	}

	var (
		topics []string
		cards  []rawFlashcard
		quiz   []rawQuizItem
	)
	for key, dst := range map[string]any{"topics": &topics, "flashcards": &cards, "quiz": &quiz} {
		data, ok := top[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(data, dst); err != nil {
			return types.StudyAids{}, types.GenerationError("parse response", fmt.Errorf("decoding %q: %w", key, err))
		}
	}

	aids := types.StudyAids{
		Topics:     make([]string, 0, len(topics)),
		Flashcards: make([]types.Flashcard, 0, len(cards)),
		Quiz:       make([]types.QuizItem, 0, len(quiz)),
	}
	aids.Topics = append(aids.Topics, topics...)

	for i, c := range cards {
		if strings.TrimSpace(c.Question) == "" {
			log.Warn("dropping flashcard without a question", zap.Int("index", i))
			continue
		}
		aids.Flashcards = append(aids.Flashcards, types.Flashcard{Question: c.Question, Answer: c.Answer})
	}

	for i, q := range quiz {
		if strings.TrimSpace(q.Question) == "" {
			log.Warn("dropping quiz item without a question", zap.Int("index", i))
			continue
		}
		options := q.Options
		if options == nil {
			options = []string{}
		}
		if len(options) != 4 {
			log.Debug("quiz item does not have four options", zap.Int("index", i), zap.Int("options", len(options)))
		}
		aids.Quiz = append(aids.Quiz, types.QuizItem{Question: q.Question, Options: options, Answer: q.Answer})
	}

	return aids, nil
}

// stripFences removes a surrounding Markdown code fence (``` or ```json)
// from s, if present.
func stripFences(s string) string {
	b := bytes.TrimSpace([]byte(s))
	if !bytes.HasPrefix(b, []byte("```")) {
		return string(b)
	}
	b = b[3:]
	if nl := bytes.IndexByte(b, '\n'); nl >= 0 {
		b = b[nl+1:]
	} else {
		b = bytes.TrimPrefix(b, []byte("json"))
	}
	b = bytes.TrimSpace(b)
	b = bytes.TrimSuffix(b, []byte("```"))
	return string(bytes.TrimSpace(b))
}

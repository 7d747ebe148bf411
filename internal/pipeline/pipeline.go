// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one study-aid generation: read a PDF, extract its
// text, ask the generative service for study aids, plan revision dates and
// write flashcards.json, quizzes.json and planner.json.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/studyaids/internal/credentials"
	"github.com/pdiddy/studyaids/internal/generate"
	"github.com/pdiddy/studyaids/internal/pdftext"
	"github.com/pdiddy/studyaids/internal/planner"
	"github.com/pdiddy/studyaids/pkg/types"
)

// Output file names written into the output directory.
const (
	FlashcardsFile = "flashcards.json"
	QuizzesFile    = "quizzes.json"
	PlannerFile    = "planner.json"

	DefaultOutputDir = "outputs"
)

// TextExtractor returns the plain text of a PDF.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

// AidGenerator turns document text into study aids. Name identifies the
// backend it calls.
type AidGenerator interface {
	Name() string
	Generate(ctx context.Context, text string) (types.StudyAids, error)
}

// RevisionPlanner schedules topics for review.
type RevisionPlanner interface {
	Plan(topics []string) []types.RevisionEntry
}

// Pipeline wires the three stages to the file system. Progress messages
// go to Out; diagnostics go to Log.
type Pipeline struct {
	Extractor TextExtractor
	Generator AidGenerator
	Planner   RevisionPlanner
	OutputDir string
	Out       io.Writer
	Log       *zap.Logger
}

// Result is what one run produced.
type Result struct {
	Aids  types.StudyAids
	Plan  []types.RevisionEntry
	Files []string
}

// Build resolves the credential and constructs every stage from cfg. It
// touches no file other than the credential sources, so a missing key is
// reported before the output directory exists.
func Build(ctx context.Context, cfg types.Config, resolver credentials.Resolver, out io.Writer, log *zap.Logger) (*Pipeline, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if cfg.Generator.Backend.NeedsAPIKey() {
		cred, err := resolver.Resolve(cfg.Generator.APIKey)
		if err != nil {
			return nil, err
		}
		log.Debug("resolved credential", zap.String("source", cred.Source))
		cfg.Generator.APIKey = cred.Key
	}

	pdfBackend, err := pdftext.NewBackend(cfg.Extractor.Backend)
	if err != nil {
		return nil, err
	}

	aiBackend, err := generate.NewBackend(ctx, cfg.Generator, log)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		Extractor: pdftext.New(pdfBackend, log),
		Generator: generate.New(aiBackend, cfg.Generator, log),
		Planner:   planner.Planner{IntervalDays: cfg.Planner.IntervalDays},
		OutputDir: cfg.Output.Dir,
		Out:       out,
		Log:       log,
	}, nil
}

// Run processes the PDF at pdfPath. Stages run in order and the first
// error stops the run; files already written stay on disk.
func (p *Pipeline) Run(ctx context.Context, pdfPath string) (Result, error) {
	out := p.Out
	if out == nil {
		out = io.Discard
	}
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	dir := p.OutputDir
	if dir == "" {
		dir = DefaultOutputDir
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, types.IOError("create output directory", err)
	}

	fmt.Fprintf(out, "Reading PDF: %s...\n", pdfPath)
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return Result{}, types.IOError("read pdf", err)
	}

	text, err := p.Extractor.Extract(ctx, data)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintln(out, "Successfully extracted text from PDF.")

	service := serviceLabel(p.Generator.Name())
	fmt.Fprintf(out, "Calling %s API to generate study aids...\n", service)
	aids, err := p.Generator.Generate(ctx, text)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(out, "Successfully received study aids from %s.\n", service)

	if len(aids.Topics) > 0 {
		fmt.Fprintf(out, "Generating revision plan for %d topics...\n", len(aids.Topics))
	}
	plan := p.Planner.Plan(aids.Topics)

	res := Result{Aids: aids, Plan: plan}
	outputs := []struct {
		name string
		v    any
	}{
		{FlashcardsFile, nonNil(aids.Flashcards)},
		{QuizzesFile, nonNil(aids.Quiz)},
		{PlannerFile, nonNil(plan)},
	}
	for _, o := range outputs {
		path := filepath.Join(dir, o.name)
		if err := writeJSON(path, o.v); err != nil {
			return res, types.IOError("write "+o.name, err)
		}
		log.Debug("wrote output", zap.String("path", path))
		fmt.Fprintf(out, "Successfully saved %s to %s\n", o.name, path)
		res.Files = append(res.Files, path)
	}

	fmt.Fprintln(out, "\n--- Generation Complete! ---")
	fmt.Fprintf(out, "Topics: %s\n", strings.Join(aids.Topics, ", "))
	fmt.Fprintf(out, "Generated %d flashcards.\n", len(aids.Flashcards))
	fmt.Fprintf(out, "Generated %d quiz questions.\n", len(aids.Quiz))
	fmt.Fprintf(out, "Check the '%s' folder for your JSON files.\n", dir)

	return res, nil
}

// serviceLabel names the service behind a generator backend in progress
// messages. Both Google backends talk to Gemini.
func serviceLabel(backend string) string {
	switch types.GeneratorBackend(backend) {
	case "", types.BackendGemini, types.BackendLangchain:
		return "Gemini"
	case types.BackendOllama:
		return "Ollama"
	}
	return backend
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

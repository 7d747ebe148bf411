// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts the plain text of a PDF held in memory.
// The text of every page is concatenated in document order; layout,
// images and metadata are ignored.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/pdiddy/studyaids/pkg/types"
)

// headerWindow is how far into the file the %PDF- marker may appear.
const headerWindow = 1024

var (
	// ErrNotPDF is returned when the input lacks a PDF header.
	ErrNotPDF = errors.New("input is not a PDF document")

	// ErrNoText is returned when every page is empty or whitespace,
	// typically a scanned or image-only document.
	ErrNoText = errors.New("no text found in PDF; the file might be image-based or empty")
)

// Backend returns the plain text of each page of a PDF, in page order.
// Different engines (pure Go, MuPDF) implement this interface.
type Backend interface {
	// Name identifies the engine in logs and errors.
	Name() string

	// Pages parses data and returns one string per page.
	Pages(data []byte) ([]string, error)
}

// Extractor turns PDF bytes into a single text string using a Backend.
type Extractor struct {
	backend Backend
	log     *zap.Logger
}

// New returns an Extractor backed by b. A nil logger disables logging.
func New(b Backend, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{backend: b, log: log}
}

// NewBackend returns the engine registered under name. An empty name
// selects the pure-Go engine.
func NewBackend(name types.ExtractorBackend) (Backend, error) {
	switch name {
	case "", types.ExtractorPDF:
		return PDFBackend{}, nil
	case types.ExtractorMuPDF:
		return MuPDFBackend{}, nil
	}
	return nil, types.ConfigurationError("select extractor",
		fmt.Errorf("unknown extractor backend %q: use %s or %s", name, types.ExtractorPDF, types.ExtractorMuPDF))
}

// Extract returns the concatenated text of every page of data. It fails
// with an extraction error when the document cannot be parsed or holds
// no text beyond whitespace.
func (e *Extractor) Extract(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", types.ExtractionError("open pdf", err)
	}
	if !hasHeader(data) {
		return "", types.ExtractionError("open pdf", ErrNotPDF)
	}

	pages, err := e.backend.Pages(data)
	if err != nil {
		return "", types.ExtractionError("open pdf", fmt.Errorf("%s: %w", e.backend.Name(), err))
	}

	var b strings.Builder
	for _, p := range pages {
		b.WriteString(p)
	}
	text := b.String()

	e.log.Debug("extracted pdf text",
		zap.String("backend", e.backend.Name()),
		zap.Int("pages", len(pages)),
		zap.Int("chars", utf8.RuneCountInString(text)))

	if strings.TrimSpace(text) == "" {
		return "", types.ExtractionError("extract text", ErrNoText)
	}
	return text, nil
}

// hasHeader reports whether the %PDF- marker occurs near the start of
// data. Readers tolerate leading junk, so the marker need not be at
// offset zero.
func hasHeader(data []byte) bool {
	window := data
	if len(window) > headerWindow {
		window = window[:headerWindow]
	}
	return bytes.Contains(window, []byte("%PDF-"))
}

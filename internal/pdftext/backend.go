// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"fmt"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// PDFBackend reads pages with the pure-Go ledongthuc/pdf parser.
type PDFBackend struct{}

func (PDFBackend) Name() string { return "pdf" }

// Pages parses data and returns the plain text of each page. The parser
// panics on some malformed inputs; those panics come back as errors.
func (PDFBackend) Pages(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}

	total := r.NumPage()
	pages = make([]string, 0, total)
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("reading page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// MuPDFBackend reads pages with MuPDF through go-fitz.
type MuPDFBackend struct{}

func (MuPDFBackend) Name() string { return "mupdf" }

// Pages opens data in MuPDF and returns the plain text of each page.
func (MuPDFBackend) Pages(data []byte) ([]string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer doc.Close()

	// Page numbers are zero indexed in fitz.
	pages := make([]string, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return nil, fmt.Errorf("reading page %d: %w", i+1, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/studyaids/pkg/types"
)

type fakeBackend struct {
	pages []string
	err   error
	calls int
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) Pages([]byte) ([]string, error) {
	f.calls++
	return f.pages, f.err
}

var pdfHeader = []byte("%PDF-1.7\n")

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		backend  *fakeBackend
		want     string
		wantKind types.ErrorKind
		wantErr  error
	}{
		{
			name:    "concatenates pages in order",
			data:    pdfHeader,
			backend: &fakeBackend{pages: []string{"Hello ", "World"}},
			want:    "Hello World",
		},
		{
			name:    "keeps text when some pages are empty",
			data:    pdfHeader,
			backend: &fakeBackend{pages: []string{"", "Cells divide.", ""}},
			want:    "Cells divide.",
		},
		{
			name:     "whitespace only is an extraction error",
			data:     pdfHeader,
			backend:  &fakeBackend{pages: []string{"  ", "\n\t"}},
			wantKind: types.KindExtraction,
			wantErr:  ErrNoText,
		},
		{
			name:     "no pages is an extraction error",
			data:     pdfHeader,
			backend:  &fakeBackend{},
			wantKind: types.KindExtraction,
			wantErr:  ErrNoText,
		},
		{
			name:     "backend failure is an extraction error",
			data:     pdfHeader,
			backend:  &fakeBackend{err: errors.New("bad xref")},
			wantKind: types.KindExtraction,
		},
		{
			name:     "non pdf input is rejected before parsing",
			data:     []byte("just some text"),
			backend:  &fakeBackend{pages: []string{"never read"}},
			wantKind: types.KindExtraction,
			wantErr:  ErrNotPDF,
		},
		{
			name:     "empty input is rejected",
			data:     nil,
			backend:  &fakeBackend{},
			wantKind: types.KindExtraction,
			wantErr:  ErrNotPDF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.backend, nil).Extract(context.Background(), tt.data)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, types.KindOf(err))
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_NotPDFSkipsBackend(t *testing.T) {
	b := &fakeBackend{pages: []string{"text"}}
	_, err := New(b, nil).Extract(context.Background(), []byte("PK\x03\x04zip"))
	require.Error(t, err)
	assert.Equal(t, 0, b.calls)
}

func TestExtract_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(&fakeBackend{pages: []string{"text"}}, nil).Extract(ctx, pdfHeader)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHasHeader(t *testing.T) {
	assert.True(t, hasHeader([]byte("%PDF-1.4")))
	assert.True(t, hasHeader(append([]byte("junk before header\n"), pdfHeader...)))
	assert.False(t, hasHeader([]byte("plain text")))

	late := make([]byte, headerWindow+10)
	copy(late[headerWindow+1:], "%PDF-")
	assert.False(t, hasHeader(late))
}

func TestNewBackend(t *testing.T) {
	tests := []struct {
		name     types.ExtractorBackend
		wantName string
		wantErr  bool
	}{
		{name: "", wantName: "pdf"},
		{name: types.ExtractorPDF, wantName: "pdf"},
		{name: types.ExtractorMuPDF, wantName: "mupdf"},
		{name: "poppler", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			b, err := NewBackend(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, types.KindConfiguration, types.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, b.Name())
		})
	}
}

func TestPDFBackend_ReadsGeneratedDocument(t *testing.T) {
	data := buildPDF("Photosynthesis converts light.", "Mitochondria make ATP.")

	pages, err := PDFBackend{}.Pages(data)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Contains(t, pages[0], "Photosynthesis converts light.")
	assert.Contains(t, pages[1], "Mitochondria make ATP.")
}

func TestPDFBackend_ExtractWhitespaceDocument(t *testing.T) {
	data := buildPDF("   ")

	_, err := New(PDFBackend{}, nil).Extract(context.Background(), data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestPDFBackend_MalformedInput(t *testing.T) {
	data := append([]byte("%PDF-1.4\n"), []byte("garbage without a trailer")...)

	_, err := New(PDFBackend{}, nil).Extract(context.Background(), data)
	require.Error(t, err)
	assert.Equal(t, types.KindExtraction, types.KindOf(err))
}

package filer

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Orientation is the page orientation for PDF output.
type Orientation string

const (
	Portrait  Orientation = "P"
	Landscape Orientation = "L"
)

// PageSize is the page size for PDF output.
type PageSize string

const (
	A4     PageSize = "A4"
	Letter PageSize = "Letter"
)

type pdfConfig struct {
	title  string
	size   PageSize
	orient Orientation
}

// PDFOption adjusts PDF output. Defaults: portrait A4, no title.
type PDFOption func(*pdfConfig)

// WithTitle renders title as a bold heading above the body and sets it as
// the document title in the PDF metadata.
func WithTitle(title string) PDFOption {
	return func(c *pdfConfig) { c.title = title }
}

// WithPageSize sets the page size.
func WithPageSize(size PageSize) PDFOption {
	return func(c *pdfConfig) { c.size = size }
}

// WithOrientation sets the page orientation.
func WithOrientation(orient Orientation) PDFOption {
	return func(c *pdfConfig) { c.orient = orient }
}

// SavePDF renders text into a paginated PDF at dir/name.pdf and returns
// the resolved path. Wrapping and page breaks are the PDF engine's;
// there is no layout control beyond the options. Rendering is one-way:
// this package offers no PDF load. Content the engine cannot process
// returns ErrRender.
func SavePDF(text, dir, name string, opts ...PDFOption) (string, error) {
	cfg := pdfConfig{size: A4, orient: Portrait}
	for _, opt := range opts {
		opt(&cfg)
	}

	path := Resolve(dir, name, PDF)
	err := writeFile(path, func(w io.Writer) error {
		doc := fpdf.New(string(cfg.orient), "mm", string(cfg.size), "")
		// Core fonts are cp1252; translate so common non-ASCII text renders.
		tr := doc.UnicodeTranslatorFromDescriptor("")
		doc.AddPage()
		if cfg.title != "" {
			doc.SetTitle(cfg.title, true)
			doc.SetFont("Helvetica", "B", 16)
			doc.MultiCell(0, 8, tr(cfg.title), "", "L", false)
			doc.Ln(4)
		}
		doc.SetFont("Helvetica", "", 12)
		doc.MultiCell(0, 6, tr(text), "", "L", false)
		if doc.Err() {
			return fmt.Errorf("%w: %v", ErrRender, doc.Error())
		}
		if err := doc.Output(w); err != nil {
			return fmt.Errorf("%w: %v", ErrRender, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

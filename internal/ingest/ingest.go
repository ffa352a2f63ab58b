// Package ingest converts uploaded resume documents to plain text.
// Format is detected from content, not file extension: a PDF renamed to
// .txt still extracts as PDF.
package ingest

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// Format is a detected document format.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatDOCX  Format = "docx"
	FormatPlain Format = "plain"
)

// ErrUnsupported — the bytes are neither PDF, DOCX, nor valid UTF-8 text.
var ErrUnsupported = errors.New("unsupported document format")

// ExtractText converts a document to plain text, reporting the format it
// detected.
func ExtractText(data []byte) (string, Format, error) {
	if len(data) == 0 {
		return "", "", fmt.Errorf("ingest: empty document")
	}

	switch format := sniff(data); format {
	case FormatPDF:
		text, err := extractPDF(data)
		if err != nil {
			return "", FormatPDF, fmt.Errorf("ingest: %w", err)
		}
		engine.IncrIngestPDF()
		return text, FormatPDF, nil
	case FormatDOCX:
		text, err := extractDOCX(data)
		if err != nil {
			return "", FormatDOCX, fmt.Errorf("ingest: %w", err)
		}
		engine.IncrIngestDOCX()
		return text, FormatDOCX, nil
	default:
		if !utf8.Valid(data) {
			return "", "", fmt.Errorf("ingest: %w", ErrUnsupported)
		}
		engine.IncrIngestPlain()
		return string(data), FormatPlain, nil
	}
}

// sniff detects the document format from magic bytes. DOCX files are zip
// archives, so the zip signature is treated as DOCX — plain zip uploads fail
// later in the DOCX parser with a clear error.
func sniff(data []byte) Format {
	switch {
	case len(data) >= 5 && string(data[:5]) == "%PDF-":
		return FormatPDF
	case len(data) >= 4 && string(data[:4]) == "PK\x03\x04":
		return FormatDOCX
	default:
		return FormatPlain
	}
}

package ingest

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DOCX body content is WordprocessingML; paragraph closes become line breaks
// before the remaining tags are stripped.
var (
	docxParaRe = regexp.MustCompile(`</w:p>`)
	docxTagRe  = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX pulls plain text from a DOCX document body.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParaRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")

	out := strings.TrimSpace(content)
	if out == "" {
		return "", fmt.Errorf("read docx: no extractable text")
	}
	return out, nil
}

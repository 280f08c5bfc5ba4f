package services

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type TextExtractor interface {
	Extract(doc models.RawDocument) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// Extract returns plain text unchanged and decodes PDF and DOCX documents.
// A document that cannot be decoded at all yields an *ExtractionError.
func (e *textExtractor) Extract(doc models.RawDocument) (string, error) {
	switch doc.Kind {
	case models.KindText:
		return string(doc.Data), nil
	case models.KindPDF:
		content, err := ExtractPDF(doc.Data)
		if err != nil {
			return "", err
		}
		return content.Text, nil
	case models.KindDOCX:
		return extractDOCX(doc.Data)
	default:
		return "", &ExtractionError{Kind: doc.Kind, Err: fmt.Errorf("unsupported document kind %q", doc.Kind)}
	}
}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:tab\s*/>`)
	xmlTag       = regexp.MustCompile(`<[^>]*>`)
)

func extractDOCX(data []byte) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", &ExtractionError{Kind: models.KindDOCX, Err: fmt.Errorf("malformed DOCX: %v", rec)}
		}
	}()

	r := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(r, int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Kind: models.KindDOCX, Err: fmt.Errorf("failed to parse docx: %w", err)}
	}
	defer doc.Close()

	return docxPlainText(doc.Editable().GetContent()), nil
}

// docxPlainText strips WordprocessingML markup. Runs inside a paragraph are
// joined without separators so words split across runs stay whole.
func docxPlainText(content string) string {
	content = paragraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

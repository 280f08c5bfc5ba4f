package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"alfredoptarigan/resume-analyzer/internal/models"
)

var errNoPages = errors.New("PDF has no pages")

type PDFContent struct {
	Text         string
	PageCount    int
	SkippedPages []int
}

// ExtractPDF reads an in-memory PDF page by page. Pages that are null, fail
// to decode or hold no text are skipped and listed in SkippedPages; every
// other page is written followed by a single space.
func ExtractPDF(data []byte) (*PDFContent, error) {
	reader, totalPage, err := openPDF(data)
	if err != nil {
		return nil, &ExtractionError{Kind: models.KindPDF, Err: fmt.Errorf("failed to open PDF: %w", err)}
	}
	if totalPage == 0 {
		return nil, &ExtractionError{Kind: models.KindPDF, Err: errNoPages}
	}

	var textBuilder strings.Builder
	var skipped []int

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		text, err := pageText(reader, pageIndex)
		if err != nil || strings.TrimSpace(text) == "" {
			skipped = append(skipped, pageIndex)
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString(" ")
	}

	return &PDFContent{
		Text:         textBuilder.String(),
		PageCount:    totalPage,
		SkippedPages: skipped,
	}, nil
}

// The decoder panics on some malformed input.
func openPDF(data []byte) (r *pdf.Reader, pages int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r, pages, err = nil, 0, fmt.Errorf("malformed PDF: %v", rec)
		}
	}()

	r, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, 0, err
	}
	return r, r.NumPage(), nil
}

func pageText(r *pdf.Reader, pageIndex int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("page %d: %v", pageIndex, rec)
		}
	}()

	page := r.Page(pageIndex)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

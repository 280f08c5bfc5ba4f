package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// buildPDF writes a minimal PDF with one Helvetica text line per page. An
// empty string produces a page with an empty content stream.
func buildPDF(pages ...string) []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"", // page tree, filled below
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	kids := make([]string, 0, len(pages))
	for i, text := range pages {
		pageID := 4 + 2*i
		kids = append(kids, fmt.Sprintf("%d 0 R", pageID))

		stream := ""
		if text != "" {
			stream = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		}
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", pageID+1),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml":            documentXML,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestExtractPDF_PagesInOrder(t *testing.T) {
	content, err := ExtractPDF(buildPDF("Python developer", "", "AWS Docker"))
	require.NoError(t, err)

	assert.Equal(t, 3, content.PageCount)
	assert.Equal(t, []int{2}, content.SkippedPages)

	first := strings.Index(content.Text, "Python developer")
	second := strings.Index(content.Text, "AWS Docker")
	require.NotEqual(t, -1, first, "text: %q", content.Text)
	require.NotEqual(t, -1, second, "text: %q", content.Text)
	assert.Less(t, first, second)
	assert.True(t, strings.HasSuffix(content.Text, " "))
}

func TestExtractPDF_Failures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"not a pdf", []byte("this is not a pdf")},
		{"empty", nil},
		{"truncated", buildPDF("Python")[:40]},
		{"zero pages", buildPDF()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractPDF(tt.data)

			var extractionErr *ExtractionError
			require.ErrorAs(t, err, &extractionErr)
			assert.Equal(t, models.KindPDF, extractionErr.Kind)
			assert.Contains(t, err.Error(), "could not read resume")
		})
	}
}

func TestTextExtractor_Extract(t *testing.T) {
	e := NewTextExtractor()

	text, err := e.Extract(models.PlainText("Go developer\n"))
	require.NoError(t, err)
	assert.Equal(t, "Go developer\n", text)

	text, err = e.Extract(models.PDFDocument(buildPDF("Kubernetes")))
	require.NoError(t, err)
	assert.Contains(t, text, "Kubernetes")

	_, err = e.Extract(models.RawDocument{Kind: "rtf", Data: []byte("{\\rtf1}")})
	var extractionErr *ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestTextExtractor_DOCX(t *testing.T) {
	e := NewTextExtractor()

	doc := buildDOCX(t, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`+
		`<w:p><w:r><w:t>Go</w:t></w:r><w:r><w:t xml:space="preserve">lang developer</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Kubernetes &amp; AWS</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := e.Extract(models.DOCXDocument(doc))
	require.NoError(t, err)
	assert.Equal(t, "Golang developer\nKubernetes & AWS", text)

	_, err = e.Extract(models.DOCXDocument([]byte("PK\x03\x04 broken")))
	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, models.KindDOCX, extractionErr.Kind)
}

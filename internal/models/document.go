package models

import (
	"bytes"
	"path/filepath"
	"strings"
)

type DocumentKind string

const (
	KindText DocumentKind = "text"
	KindPDF  DocumentKind = "pdf"
	KindDOCX DocumentKind = "docx"
)

// RawDocument is a resume or job description as supplied by the caller.
// It lives for a single analysis request.
type RawDocument struct {
	Kind DocumentKind `json:"kind"`
	Name string       `json:"name,omitempty"`
	Data []byte       `json:"-"`
}

func PlainText(text string) RawDocument {
	return RawDocument{Kind: KindText, Data: []byte(text)}
}

func PDFDocument(data []byte) RawDocument {
	return RawDocument{Kind: KindPDF, Data: data}
}

func DOCXDocument(data []byte) RawDocument {
	return RawDocument{Kind: KindDOCX, Data: data}
}

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")
)

// DetectDocument picks the document kind from the file extension, falling
// back to content sniffing when the name is missing or unknown.
func DetectDocument(name string, data []byte) RawDocument {
	doc := RawDocument{Name: name, Data: data}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		doc.Kind = KindPDF
	case ".docx":
		doc.Kind = KindDOCX
	case ".txt", ".md", ".text":
		doc.Kind = KindText
	default:
		switch {
		case bytes.HasPrefix(data, pdfMagic):
			doc.Kind = KindPDF
		case bytes.HasPrefix(data, zipMagic):
			doc.Kind = KindDOCX
		default:
			doc.Kind = KindText
		}
	}

	return doc
}

// IsZero reports whether no document was supplied at all.
func (d RawDocument) IsZero() bool {
	return d.Kind == "" && len(d.Data) == 0
}

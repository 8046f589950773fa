package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF   = "application/pdf"
	MimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

// ErrUnsupportedType indicates a MIME type outside the allow-list.
var ErrUnsupportedType = errors.New("unsupported file type")

// Error reports a parser failure for a specific format.
type Error struct {
	Format string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Supported reports whether the declared MIME type is on the allow-list.
func Supported(mimeType string) bool {
	switch normalizeMimeType(mimeType, "", nil) {
	case MimePDF, MimeDOCX, MimePlain:
		return true
	default:
		return false
	}
}

// Extract converts an in-memory payload to plain text based on its declared
// MIME type. Libraries used: github.com/ledongthuc/pdf (PDF) and
// github.com/nguyenthenguyen/docx (DOCX).
func Extract(data []byte, mimeType string, fileName string) (string, error) {
	switch normalizeMimeType(mimeType, fileName, data) {
	case MimePDF:
		return extractPDF(data)
	case MimeDOCX:
		return extractDOCX(data)
	case MimePlain:
		return extractPlain(data)
	default:
		return "", ErrUnsupportedType
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", &Error{Format: "pdf", Err: err}
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", &Error{Format: "pdf", Err: err}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", &Error{Format: "pdf", Err: err}
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &Error{Format: "docx", Err: errors.New("empty document")}
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Format: "docx", Err: err}
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

func extractPlain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &Error{Format: "text", Err: errors.New("invalid utf-8")}
	}
	return string(data), nil
}

// stripDocxXML walks document.xml character data, inserting newlines at
// paragraph and line-break boundaries and discarding all formatting.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func normalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean != "application/zip" {
		return clean
	}

	if isDocxZip(data) {
		return MimeDOCX
	}
	if strings.EqualFold(filepath.Ext(fileName), ".docx") {
		return MimeDOCX
	}
	return clean
}

func isDocxZip(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}

package extract

import (
	"bytes"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Text extracts plain text from a PDF document, trimmed of surrounding
// whitespace. Malformed or image-only documents yield an empty string rather
// than an error: callers treat empty text as a low-quality input and still
// run the analysis, which degrades gracefully downstream.
func Text(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	text, err := extractPDF(data)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = io.ErrUnexpectedEOF
		}
	}()

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package util

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// minExtractedLen guards against CVs whose text layer is effectively empty
// (scanned images); scoring a handful of characters would be meaningless.
const minExtractedLen = 100

// ExtractPDFText pulls the text layer out of a PDF, page by page.
func ExtractPDFText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText strings.Builder
	var lastErr error

	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText != "" {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())
	if result == "" {
		if lastErr != nil {
			return "", fmt.Errorf("failed to extract text: %w", lastErr)
		}
		return "", fmt.Errorf("no text extracted from PDF (document may be scanned images)")
	}
	if len(result) < minExtractedLen {
		return "", fmt.Errorf("extracted text too short for meaningful analysis")
	}
	return result, nil
}

// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

// Package pdftext supplies per-page text blocks from PDF reports
// through a pluggable backend. The core pipeline only ever sees the
// page text; everything about PDF internals stays behind PageSource.
package pdftext

import (
	"strings"
)

// PageSource extracts the linear text content of a PDF, one block per
// page with line breaks preserved.
type PageSource interface {
	// Pages reads the PDF at pdfPath and returns one text block per page.
	Pages(pdfPath string) ([]string, error)
}

// SplitPages splits whole-document text into page blocks on form-feed
// characters, the page delimiter pdftotext emits. A trailing delimiter
// produces an empty final block, which is dropped.
func SplitPages(text string) []string {
	pages := strings.Split(text, "\f")
	for len(pages) > 0 && strings.TrimSpace(pages[len(pages)-1]) == "" {
		pages = pages[:len(pages)-1]
	}
	return pages
}

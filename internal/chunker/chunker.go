package chunker

import (
	"regexp"
	"strings"

	"contract-rag/internal/models"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	literalNLRe  = regexp.MustCompile(`\\n`)
	unicodeEscRe = regexp.MustCompile(`\\u[a-zA-Z0-9]{4}`)
	backslashRe  = regexp.MustCompile(`\\`)
)

// Clean normalizes raw extracted text: runs of whitespace collapse to a
// single space and literal backslash artifacts leaked by the PDF text
// layer (stray `\n`, unicode escapes, leftover backslashes) are stripped.
// Lossy and idempotent.
func Clean(text string) string {
	cleaned := whitespaceRe.ReplaceAllString(text, " ")
	cleaned = literalNLRe.ReplaceAllString(cleaned, " ")
	cleaned = unicodeEscRe.ReplaceAllString(cleaned, "")
	cleaned = backslashRe.ReplaceAllString(cleaned, "")
	// escape removal can leave doubled spaces behind
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// Chunker windows page text with word overlap borrowed from the adjacent
// pages.
type Chunker struct {
	overlapWords int
}

func New(overlapWords int) *Chunker {
	if overlapWords < 0 {
		overlapWords = 0
	}
	return &Chunker{overlapWords: overlapWords}
}

// Chunk produces one chunk per page, in page order. Chunk i is the last
// overlapWords words of page i-1, then page i's text, then the first
// overlapWords words of page i+1, space-joined. Boundary pages omit the
// missing side; donor pages shorter than the window contribute all their
// words.
func (c *Chunker) Chunk(pages []models.Page) []models.Chunk {
	chunks := make([]models.Chunk, 0, len(pages))

	for i, page := range pages {
		var parts []string

		if i > 0 {
			if overlap := lastNWords(pages[i-1].Text, c.overlapWords); overlap != "" {
				parts = append(parts, overlap)
			}
		}
		// empty page text still yields a chunk entry, built from the
		// neighbors' overlap alone
		if page.Text != "" {
			parts = append(parts, page.Text)
		}
		if i < len(pages)-1 {
			if overlap := firstNWords(pages[i+1].Text, c.overlapWords); overlap != "" {
				parts = append(parts, overlap)
			}
		}

		chunks = append(chunks, models.Chunk{
			PageNumber: page.PageNumber,
			Text:       strings.TrimSpace(strings.Join(parts, " ")),
		})
	}

	return chunks
}

func lastNWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) > n {
		words = words[len(words)-n:]
	}
	return strings.Join(words, " ")
}

func firstNWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

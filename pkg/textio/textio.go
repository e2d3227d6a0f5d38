// Package textio reads corpus files as text. Plain text is read with a
// decode fallback (invalid bytes replaced, never aborting); HTML files can
// additionally be distilled to their main content before tokenization.
package textio

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// ReadText reads one file and returns its content as valid UTF-8.
// Undecodable byte sequences are substituted with U+FFFD rather than
// failing the read.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}

// IsHTMLPath reports whether a corpus path should go through HTML
// extraction.
func IsHTMLPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}

// ExtractHTML distills an HTML document to plain text: readability finds
// the main article content, then the content-bearing blocks are walked in
// document order and concatenated line by line.
func ExtractHTML(html string) (string, error) {
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), &url.URL{})
	if err != nil {
		return "", fmt.Errorf("failed to extract article: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", fmt.Errorf("failed to parse article content: %w", err)
	}

	var sb strings.Builder
	doc.Find("h1,h2,h3,h4,p,li,td,pre").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	text := sb.String()
	if text == "" {
		// Readability can strip short documents to nothing; fall back
		// to the article's own text content.
		text = strings.TrimSpace(article.TextContent)
	}
	return text, nil
}

// Package emailview renders a sample email's HTML body as terminal-friendly
// text and reports a quick structural summary, so an operator can eyeball
// what the extraction engine will be looking at.
package emailview

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var whitespace = regexp.MustCompile(`[ \t]+`)

// Summary is a structural digest of a sample email body.
type Summary struct {
	Title     string
	TextBytes int
	Links     int
	Tables    int
	Images    int
}

// Summarize parses the HTML and returns its structural summary.
func Summarize(htmlBody string) (Summary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return Summary{}, fmt.Errorf("parse html: %w", err)
	}
	text, err := PlainText(htmlBody)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Title:     strings.TrimSpace(doc.Find("title").First().Text()),
		TextBytes: len(text),
		Links:     doc.Find("a[href]").Length(),
		Tables:    doc.Find("table").Length(),
		Images:    doc.Find("img").Length(),
	}, nil
}

// PlainText strips markup from the HTML body and returns readable text.
// Script and style contents are dropped, block elements become line breaks,
// and runs of horizontal whitespace collapse to a single space.
func PlainText(htmlBody string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	doc.Find("script, style, head").Remove()

	var b strings.Builder
	for _, node := range doc.Selection.Nodes {
		writeText(&b, node)
	}
	return tidy(b.String()), nil
}

// Snippet returns the first maxRunes runes of the plain text rendering, with
// newlines flattened, suitable for a one-line listing.
func Snippet(htmlBody string, maxRunes int) string {
	text, err := PlainText(htmlBody)
	if err != nil {
		return ""
	}
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes]) + "…"
}

// MatchCSS returns the trimmed text of every node the CSS selector matches
// in the sample email, in DOM order. Used to preview what a CSS_SELECTOR
// extractor would see, before any round trip to the backend.
func MatchCSS(htmlBody, selector string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var matches []string
	var selErr error
	func() {
		// goquery panics on an invalid selector; recover it into an error.
		defer func() {
			if r := recover(); r != nil {
				selErr = fmt.Errorf("invalid CSS selector %q: %v", selector, r)
			}
		}()
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if text := strings.TrimSpace(sel.Text()); text != "" {
				matches = append(matches, text)
			}
		})
	}()
	return matches, selErr
}

var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "tr": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "ul": true, "ol": true, "blockquote": true,
}

func writeText(b *strings.Builder, node *html.Node) {
	if node.Type == html.TextNode {
		b.WriteString(node.Data)
		return
	}
	if node.Type == html.ElementNode {
		if node.Data == "td" || node.Data == "th" {
			b.WriteString("\t")
		}
		if blockElements[node.Data] {
			b.WriteString("\n")
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		writeText(b, child)
	}
	if node.Type == html.ElementNode && blockElements[node.Data] {
		b.WriteString("\n")
	}
}

func tidy(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := true
	for _, line := range lines {
		line = strings.TrimSpace(whitespace.ReplaceAllString(line, " "))
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

// Package htmltext extracts plain text from HTML documents.
package htmltext

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ExtractPlainText parses HTML from r and returns its visible text.
// Script, style and head subtrees are dropped, runs of whitespace are
// collapsed to single spaces, and block-level elements are separated
// by newlines.
func ExtractPlainText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	c := &collector{}
	c.walk(doc)
	c.flush()

	return strings.Join(c.blocks, "\n"), nil
}

// ExtractPlainTextString is a convenience wrapper around ExtractPlainText
// for callers holding the document in memory.
func ExtractPlainTextString(s string) (string, error) {
	return ExtractPlainText(strings.NewReader(s))
}

// collector accumulates text nodes into blocks during traversal. Inline
// content gathers in pending until a block boundary flushes it.
type collector struct {
	blocks  []string
	pending strings.Builder
}

func (c *collector) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		c.pending.WriteString(n.Data)
		return

	case html.ElementNode:
		if shouldSkip(n.Data) {
			return
		}

		if n.Data == "br" {
			c.flush()
			return
		}

		if isBlock(n.Data) {
			c.flush()
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				c.walk(child)
			}
			c.flush()
			return
		}

		// Table cells stay on one line but need a separator between them.
		if n.Data == "td" || n.Data == "th" {
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				c.walk(child)
			}
			c.pending.WriteString(" ")
			return
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.walk(child)
	}
}

// flush collapses the pending inline run and appends it as a block.
func (c *collector) flush() {
	text := strings.Join(strings.Fields(c.pending.String()), " ")
	c.pending.Reset()
	if text != "" {
		c.blocks = append(c.blocks, text)
	}
}

// shouldSkip reports whether an element's entire subtree carries no
// visible text.
func shouldSkip(tagName string) bool {
	switch tagName {
	case "head", "script", "style", "noscript", "template", "svg", "iframe", "object", "embed":
		return true
	}
	return false
}

// isBlock reports whether an element starts a new block of text.
func isBlock(tagName string) bool {
	switch tagName {
	case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "dl", "dt", "dd",
		"table", "thead", "tbody", "tfoot", "tr",
		"blockquote", "pre", "figure", "figcaption",
		"article", "section", "main", "header", "footer", "nav", "aside",
		"form", "fieldset", "address", "hr":
		return true
	}
	return false
}

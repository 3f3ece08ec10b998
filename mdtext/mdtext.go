// Package mdtext extracts plain text from Markdown sources.
package mdtext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractPlainText parses source as Markdown and returns its prose content.
// Markup is dropped: link and image text is kept (URLs are not), emphasis
// markers disappear, code spans keep their content. Fenced and indented
// code blocks are omitted entirely. Blocks are joined with blank lines.
func ExtractPlainText(source []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var blocks []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.TextBlock:
			if block := inlineText(n, source); block != "" {
				blocks = append(blocks, block)
			}
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return strings.Join(blocks, "\n\n")
}

// ExtractPlainTextString is a convenience wrapper around ExtractPlainText.
func ExtractPlainTextString(s string) string {
	return ExtractPlainText([]byte(s))
}

// inlineText collects the text content beneath a single block node. Soft
// and hard line breaks inside the block become single spaces.
func inlineText(node ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch t := n.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}

		case *ast.String:
			sb.Write(t.Value)

		case *ast.AutoLink, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(sb.String())
}

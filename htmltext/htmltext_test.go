package htmltext

import (
	"strings"
	"testing"
)

func TestExtractPlainText_SimpleDocument(t *testing.T) {
	doc := `<!DOCTYPE html>
<html>
<head>
	<title>Ignored Title</title>
	<style>p { color: red; }</style>
</head>
<body>
	<h1>Main Heading</h1>
	<p>This is a paragraph.</p>
</body>
</html>`

	got, err := ExtractPlainText(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractPlainText() failed: %v", err)
	}

	want := "Main Heading\nThis is a paragraph."
	if got != want {
		t.Errorf("ExtractPlainText() = %q, want %q", got, want)
	}
}

func TestExtractPlainText_SkipsScriptAndStyle(t *testing.T) {
	doc := `<html><body>
<p>Visible text.</p>
<script>var hidden = "secret";</script>
<style>.cls { display: none; }</style>
<noscript>Also hidden.</noscript>
</body></html>`

	got, err := ExtractPlainText(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractPlainText() failed: %v", err)
	}

	if got != "Visible text." {
		t.Errorf("ExtractPlainText() = %q, want 'Visible text.'", got)
	}
}

func TestExtractPlainText_CollapsesWhitespace(t *testing.T) {
	doc := "<html><body><p>Too   many\n\t spaces   here.</p></body></html>"

	got, err := ExtractPlainText(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractPlainText() failed: %v", err)
	}

	want := "Too many spaces here."
	if got != want {
		t.Errorf("ExtractPlainText() = %q, want %q", got, want)
	}
}

func TestExtractPlainText_InlineElements(t *testing.T) {
	doc := `<html><body><p>Text with <b>bold</b> and <a href="https://example.com">a link</a> inside.</p></body></html>`

	got, err := ExtractPlainText(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractPlainText() failed: %v", err)
	}

	want := "Text with bold and a link inside."
	if got != want {
		t.Errorf("ExtractPlainText() = %q, want %q", got, want)
	}
}

func TestExtractPlainText_Lists(t *testing.T) {
	doc := `<html><body><ul><li>First item</li><li>Second item</li></ul></body></html>`

	got, err := ExtractPlainText(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractPlainText() failed: %v", err)
	}

	want := "First item\nSecond item"
	if got != want {
		t.Errorf("ExtractPlainText() = %q, want %q", got, want)
	}
}

func TestExtractPlainText_TableRows(t *testing.T) {
	doc := `<html><body><table><tr><td>Name</td><td>Age</td></tr><tr><td>Ada</td><td>36</td></tr></table></body></html>`

	got, err := ExtractPlainText(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractPlainText() failed: %v", err)
	}

	want := "Name Age\nAda 36"
	if got != want {
		t.Errorf("ExtractPlainText() = %q, want %q", got, want)
	}
}

func TestExtractPlainText_LineBreaks(t *testing.T) {
	doc := "<html><body><p>First line<br>Second line</p></body></html>"

	got, err := ExtractPlainText(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractPlainText() failed: %v", err)
	}

	want := "First line\nSecond line"
	if got != want {
		t.Errorf("ExtractPlainText() = %q, want %q", got, want)
	}
}

func TestExtractPlainText_NestedBlocks(t *testing.T) {
	doc := `<html><body><div><div><p>Deeply nested.</p></div></div><article><h2>Section</h2><p>Body text.</p></article></body></html>`

	got, err := ExtractPlainText(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractPlainText() failed: %v", err)
	}

	want := "Deeply nested.\nSection\nBody text."
	if got != want {
		t.Errorf("ExtractPlainText() = %q, want %q", got, want)
	}
}

func TestExtractPlainText_MalformedHTML(t *testing.T) {
	// The parser is lenient, so unclosed tags still yield text.
	got, err := ExtractPlainTextString("<p>unclosed paragraph")
	if err != nil {
		t.Fatalf("ExtractPlainTextString() should handle malformed HTML: %v", err)
	}

	if got != "unclosed paragraph" {
		t.Errorf("ExtractPlainTextString() = %q, want 'unclosed paragraph'", got)
	}
}

func TestExtractPlainTextString(t *testing.T) {
	got, err := ExtractPlainTextString("<p>Hello there.</p>")
	if err != nil {
		t.Fatalf("ExtractPlainTextString() failed: %v", err)
	}

	if got != "Hello there." {
		t.Errorf("ExtractPlainTextString() = %q, want 'Hello there.'", got)
	}
}

func TestExtractPlainText_Empty(t *testing.T) {
	got, err := ExtractPlainTextString("")
	if err != nil {
		t.Fatalf("ExtractPlainTextString() failed: %v", err)
	}

	if got != "" {
		t.Errorf("ExtractPlainTextString() = %q, want empty string", got)
	}
}

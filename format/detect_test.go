package format

import "testing"

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Text, "text"},
		{Markdown, "md"},
		{HTML, "html"},
		{Image, "image"},
		{Format(99), "text"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"text", Text},
		{"md", Markdown},
		{"markdown", Markdown},
		{"MD", Markdown},
		{"html", HTML},
		{"image", Image},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("pdf"); err == nil {
		t.Error("Parse(\"pdf\") expected error")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"notes.md", Markdown},
		{"notes.MD", Markdown},
		{"notes.markdown", Markdown},
		{"page.html", HTML},
		{"page.HTML", HTML},
		{"page.htm", HTML},
		{"scan.png", Image},
		{"scan.jpg", Image},
		{"scan.jpeg", Image},
		{"scan.tif", Image},
		{"scan.tiff", Image},
		{"scan.bmp", Image},
		{"scan.webp", Image},
		{"document.txt", Text},
		{"document", Text},
		{"", Text},
		{"/path/to/file.md", Markdown},
		{"/path/to/file.html", HTML},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"png", []byte("\x89PNG\r\n\x1a\n rest"), Image},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, Image},
		{"tiff little endian", []byte("II*\x00 rest"), Image},
		{"tiff big endian", []byte("MM\x00* rest"), Image},
		{"bmp", []byte("BM\x00\x00\x00"), Image},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), Image},
		{"doctype html", []byte("<!DOCTYPE html>\n<html></html>"), HTML},
		{"html tag", []byte("  \n<html lang=\"en\"><body></body></html>"), HTML},
		{"xhtml", []byte("<?xml version=\"1.0\"?>\n<html></html>"), HTML},
		{"plain text", []byte("Just an ordinary sentence."), Text},
		{"text mentioning html", []byte("The <b>tag</b> is inline."), Text},
		{"short data", []byte("ab"), Text},
		{"empty", nil, Text},
	}

	for _, tt := range tests {
		if got := DetectFromMagic(tt.data); got != tt.want {
			t.Errorf("%s: DetectFromMagic() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

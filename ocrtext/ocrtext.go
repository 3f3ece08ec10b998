//go:build ocr

package ocrtext

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Reader wraps a Tesseract client for recognizing scanned pages.
type Reader struct {
	client *gosseract.Client
}

// New creates a Reader ready to recognize English text.
// Close it when no longer needed to release Tesseract resources.
func New() (*Reader, error) {
	return &Reader{client: gosseract.NewClient()}, nil
}

// Close releases Tesseract resources. It is safe on a nil Reader.
func (r *Reader) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

// SetLanguage switches recognition to the language named by a BCP-47 tag.
func (r *Reader) SetLanguage(tag string) error {
	code, err := TesseractLang(tag)
	if err != nil {
		return err
	}
	return r.client.SetLanguage(code)
}

// RecognizeImage performs OCR on image data and returns the recognized
// text with surrounding whitespace trimmed. Formats outside Tesseract's
// native set should pass through NormalizeImage first.
func (r *Reader) RecognizeImage(imageData []byte) (string, error) {
	if err := r.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("setting image: %w", err)
	}

	text, err := r.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}

	return strings.TrimSpace(text), nil
}

//go:build ocr

package ocrtext

import (
	"bytes"
	"image/png"
	"testing"
)

func TestNew(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer r.Close()

	if r == nil {
		t.Error("Expected non-nil Reader")
	}
}

func TestRecognizeImage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer r.Close()

	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(100, 50)); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}

	// The test image is just a rectangle, so only verify the call succeeds.
	if _, err := r.RecognizeImage(buf.Bytes()); err != nil {
		t.Errorf("RecognizeImage failed: %v", err)
	}
}

func TestSetLanguage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer r.Close()

	// English traineddata ships with every Tesseract install.
	if err := r.SetLanguage("en"); err != nil {
		t.Errorf("SetLanguage failed: %v", err)
	}

	if err := r.SetLanguage("pt"); err == nil {
		t.Error("SetLanguage expected error for unmapped language")
	}
}

func TestClose(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	r.client = nil
	if err := r.Close(); err != nil {
		t.Errorf("Close on drained Reader failed: %v", err)
	}
}

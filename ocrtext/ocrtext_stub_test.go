//go:build !ocr

package ocrtext

import (
	"errors"
	"testing"
)

func TestNewReturnsError(t *testing.T) {
	r, err := New()
	if err == nil {
		t.Error("Expected error from New() when OCR is disabled")
	}
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if r != nil {
		t.Error("Expected nil Reader when OCR is disabled")
	}
}

func TestStubOperationsReturnError(t *testing.T) {
	var r *Reader

	if err := r.SetLanguage("en"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetLanguage: expected ErrOCRNotEnabled, got: %v", err)
	}

	if _, err := r.RecognizeImage(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeImage: expected ErrOCRNotEnabled, got: %v", err)
	}
}

func TestCloseOnNilReader(t *testing.T) {
	var r *Reader
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil Reader should not error: %v", err)
	}
}

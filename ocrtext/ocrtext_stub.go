//go:build !ocr

package ocrtext

import "errors"

// ErrOCRNotEnabled is returned when recognition is requested but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Reader is the stub used when the "ocr" build tag is not set.
type Reader struct{}

// New returns ErrOCRNotEnabled.
func New() (*Reader, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op on the stub. It is safe on a nil Reader.
func (r *Reader) Close() error {
	return nil
}

// SetLanguage returns ErrOCRNotEnabled.
func (r *Reader) SetLanguage(tag string) error {
	return ErrOCRNotEnabled
}

// RecognizeImage returns ErrOCRNotEnabled.
func (r *Reader) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// Package ocrtext recognizes text in scanned page images.
//
// Recognition wraps the Tesseract engine via gosseract and is compiled in
// only when the "ocr" build tag is set:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Without the tag every Reader operation returns ErrOCRNotEnabled.
// NormalizeImage and TesseractLang are available either way.
package ocrtext

import (
	"fmt"
	"strings"
)

// tesseractLangs maps primary language subtags to Tesseract language codes.
var tesseractLangs = map[string]string{
	"en": "eng",
	"de": "deu",
	"es": "spa",
	"fr": "fra",
	"it": "ita",
	"nl": "nld",
	"pl": "pol",
	"ru": "rus",
	"ar": "ara",
}

// TesseractLang maps a BCP-47 language tag to its Tesseract code. Region
// subtags are ignored, so "es-MX" resolves the same as "es".
func TesseractLang(tag string) (string, error) {
	base := strings.ToLower(tag)
	if i := strings.IndexAny(base, "-_"); i >= 0 {
		base = base[:i]
	}

	code, ok := tesseractLangs[base]
	if !ok {
		return "", fmt.Errorf("no tesseract language for tag %q", tag)
	}
	return code, nil
}

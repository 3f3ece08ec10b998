package ocrtext

import "testing"

func TestTesseractLang(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"en", "eng"},
		{"EN", "eng"},
		{"es-MX", "spa"},
		{"de_AT", "deu"},
		{"fr", "fra"},
		{"ar", "ara"},
	}

	for _, tt := range tests {
		got, err := TesseractLang(tt.tag)
		if err != nil {
			t.Errorf("TesseractLang(%q) failed: %v", tt.tag, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TesseractLang(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestTesseractLang_Unknown(t *testing.T) {
	if _, err := TesseractLang("pt"); err == nil {
		t.Error("TesseractLang(\"pt\") expected error for unmapped language")
	}

	if _, err := TesseractLang(""); err == nil {
		t.Error("TesseractLang(\"\") expected error")
	}
}

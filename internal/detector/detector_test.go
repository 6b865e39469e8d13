package detector

import (
	"context"
	"strings"
	"testing"
)

func TestDetector_Detect(t *testing.T) {
	d := New()

	tests := []struct {
		name     string
		text     string
		wantLang string
		wantOK   bool
	}{
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
		{
			name:     "english text",
			text:     "Hello, this is a test in English.",
			wantLang: "English",
			wantOK:   true,
		},
		{
			name:     "spanish text",
			text:     "Hola, esto es una prueba en español.",
			wantLang: "Spanish",
			wantOK:   true,
		},
		{
			name:     "german text",
			text:     "Hallo, das ist ein Test auf Deutsch.",
			wantLang: "German",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, ok := d.Detect(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Detect(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if tt.wantOK && lang.String() != tt.wantLang {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, lang, tt.wantLang)
			}
		})
	}
}

func TestDetector_DetectISO(t *testing.T) {
	d := New()

	code, ok := d.DetectISO("Hello, this is a test in English.")
	if !ok || code != "en" {
		t.Errorf("expected en, got %q (ok=%v)", code, ok)
	}
	if _, ok := d.DetectISO(""); ok {
		t.Error("expected miss for empty text")
	}
}

func TestDetector_CheckEnglish(t *testing.T) {
	d := New()

	if err := d.CheckEnglish("The dog is sleeping near the river today."); err != nil {
		t.Errorf("unexpected error for English text: %v", err)
	}
	if err := d.CheckEnglish("hi"); err != nil {
		t.Errorf("short text must pass without validation, got %v", err)
	}
	if err := d.CheckEnglish(""); err == nil {
		t.Error("expected error for empty text")
	}
	if err := d.CheckEnglish("Hola, esto es una prueba en español de verdad."); err == nil {
		t.Error("expected error for non-English text")
	}
}

func TestCapability_DetectLanguage(t *testing.T) {
	c := Capability(New())

	res := c.Invoke(context.Background(), []byte(`{"text":"Hello, this is a test in English."}`))
	if res.IsError {
		t.Fatalf("unexpected error result: %v", res.Content)
	}
	if !strings.Contains(res.Text(), "English") {
		t.Errorf("expected English in result, got %q", res.Text())
	}

	res = c.Invoke(context.Background(), []byte(`{"text":""}`))
	if !res.IsError {
		t.Error("expected error result for undeterminable text")
	}
}

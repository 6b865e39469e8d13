// Package detector wraps lingua-go language detection. It backs the
// detect_language capability offered to the agentic translator and the
// English check applied to inputs and back-translations.
package detector

import (
	"context"
	"fmt"
	"strings"

	lingua "github.com/pemistahl/lingua-go"

	"github.com/kubishi/yaduha-2/internal/schema"
)

// minCheckLength is the minimum rune count for a reliable detection. Shorter
// texts pass checks without validation.
const minCheckLength = 20

// Detector identifies the natural language of a text. Building one is
// expensive; reuse the instance.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector over all languages lingua-go knows.
func New() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// Detect identifies the language of a text. Empty or ambiguous text reports
// false.
func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO identifies the language and reports its lower-case ISO 639-1
// code.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// CheckEnglish reports whether text appears to be English. Texts too short
// for a reliable detection, and texts whose language cannot be determined,
// pass. When a different language is detected the error names it.
func (d *Detector) CheckEnglish(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("text is empty")
	}
	if len([]rune(trimmed)) < minCheckLength {
		return nil
	}
	lang, ok := d.Detect(trimmed)
	if !ok {
		return nil
	}
	if lang != lingua.English {
		return fmt.Errorf("expected English but detected %s", lang)
	}
	return nil
}

// Capability exposes the detector as a detect_language tool.
func Capability(d *Detector) *schema.Capability {
	return schema.MustNew(
		"detect_language",
		"Identify the natural language a text is written in.",
		[]schema.Property{
			schema.Field("text", schema.String("the text to inspect")),
		},
		[]schema.Example{
			{Input: map[string]any{"text": "Hello, how are you today?"}, Output: "English (en)"},
		},
		func(ctx context.Context, args map[string]any) (any, error) {
			text := args["text"].(string)
			lang, ok := d.Detect(text)
			if !ok {
				return nil, fmt.Errorf("language could not be determined")
			}
			return fmt.Sprintf("%s (%s)", lang, strings.ToLower(lang.IsoCode639_1().String())), nil
		},
	)
}

package translator

import (
	"context"

	"github.com/kubishi/yaduha-2/internal/schema"
)

// Capability wraps a translator as a translate_english tool, letting the
// agentic path delegate whole sentences to the deterministic pipeline.
func Capability(t Translator) *schema.Capability {
	return schema.MustNew(
		"translate_english",
		"Translate an English sentence through the structured grammar pipeline. Returns the target-language text and an English back-translation of what the structure actually says.",
		[]schema.Property{
			schema.Field("text", schema.String("the English sentence to translate")),
		},
		nil,
		func(ctx context.Context, args map[string]any) (any, error) {
			text := args["text"].(string)
			translation, err := t.Translate(ctx, text)
			if err != nil {
				return nil, err
			}
			out := map[string]any{
				"translation":      translation.Target,
				"back_translation": translation.Back.Text,
			}
			if translation.Back.Warning != "" {
				out["warning"] = translation.Back.Warning
			}
			return out, nil
		},
	)
}

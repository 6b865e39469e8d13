// Package reference exposes Google Cloud Translation as an optional
// reference_translation capability. The agentic translator can consult it to
// sanity-check phrasing in a widely-supported pivot language before
// committing to a structural decomposition.
package reference

import (
	"context"
	"fmt"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/kubishi/yaduha-2/internal/schema"
)

// Service wraps the Cloud Translation client.
type Service struct {
	client *translate.Client
}

// New builds the service. credentialsFile may be empty, in which case
// application default credentials apply.
func New(ctx context.Context, credentialsFile string) (*Service, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create translate client: %w", err)
	}
	return &Service{client: client}, nil
}

// Close releases the underlying client.
func (s *Service) Close() error {
	return s.client.Close()
}

// Translate translates text into the given BCP 47 target language.
func (s *Service) Translate(ctx context.Context, text, target string) (string, error) {
	targetTag, err := language.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid target language %q: %w", target, err)
	}
	translations, err := s.client.Translate(ctx, []string{text}, targetTag, nil)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	if len(translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return translations[0].Text, nil
}

// Capability exposes the service as a reference_translation tool.
func Capability(s *Service) *schema.Capability {
	return schema.MustNew(
		"reference_translation",
		"Translate a text into a reference language via Google Cloud Translation. Useful for checking how a phrase is normally rendered; never produces target-language output for the main task.",
		[]schema.Property{
			schema.Field("text", schema.String("the text to translate")),
			schema.Optional("target", schema.String("BCP 47 target language code"), "es"),
		},
		nil,
		func(ctx context.Context, args map[string]any) (any, error) {
			text := args["text"].(string)
			target := args["target"].(string)
			return s.Translate(ctx, text, target)
		},
	)
}

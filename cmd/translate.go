package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kubishi/yaduha-2/internal/agent"
	"github.com/kubishi/yaduha-2/internal/detector"
	"github.com/kubishi/yaduha-2/internal/language"
	"github.com/kubishi/yaduha-2/internal/language/kethara"
	"github.com/kubishi/yaduha-2/internal/language/paiute"
	"github.com/kubishi/yaduha-2/internal/reference"
	"github.com/kubishi/yaduha-2/internal/schema"
	"github.com/kubishi/yaduha-2/internal/translator"
)

var (
	translateText     string
	translateInput    string
	translateLanguage string
	translateMode     string
	translateModel    string
	translateBaseURL  string
	translateAPIKey   string
	translateBudget   int
	translateVerbose  bool
	googleCredentials string
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate English into a constrained target language",
	Long: `Translate English text into a grammatically constrained target language.

Modes:
  pipeline  Structured parse by the model, deterministic local rendering,
            English back-translation for verification (default).
  agentic   A single tool-calling conversation in which the model may use
            the pipeline, language detection and a reference translator.

The API key is read from --api-key, $YADUHA_API_KEY or $OPENAI_API_KEY.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput()
		if err != nil {
			return err
		}

		module, err := selectLanguage(translateLanguage)
		if err != nil {
			return err
		}

		apiKey := translateAPIKey
		if apiKey == "" {
			apiKey = viper.GetString("api_key")
		}
		if apiKey == "" {
			return fmt.Errorf("API key required: set --api-key, $YADUHA_API_KEY or $OPENAI_API_KEY")
		}

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		if translateVerbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
		}

		ctx := context.Background()
		det := detector.New()

		if err := det.CheckEnglish(text); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: input may not be English: %v\n", err)
		}

		client := agent.NewClient(apiKey, translateModel,
			agent.WithBaseURL(translateBaseURL),
			agent.WithLogger(logger))

		pipeline := translator.NewPipeline(client, module,
			translator.WithDetector(det),
			translator.WithPipelineLogger(logger))

		var result *translator.Translation
		switch translateMode {
		case "pipeline":
			result, err = pipeline.Translate(ctx, text)
		case "agentic":
			capabilities := []*schema.Capability{
				translator.Capability(pipeline),
				detector.Capability(det),
			}
			if googleCredentials != "" {
				ref, refErr := reference.New(ctx, googleCredentials)
				if refErr != nil {
					return fmt.Errorf("reference translator: %w", refErr)
				}
				defer ref.Close()
				capabilities = append(capabilities, reference.Capability(ref))
			}
			registry, regErr := schema.NewRegistry(capabilities...)
			if regErr != nil {
				return regErr
			}
			agentic := translator.NewAgentic(client, module, registry,
				translator.WithAgenticBudget(translateBudget),
				translator.WithAgenticLogger(logger))
			result, err = agentic.Translate(ctx, text)
		default:
			return fmt.Errorf("unknown mode %q: use pipeline or agentic", translateMode)
		}
		if err != nil {
			return err
		}

		fmt.Println(result.Target)

		if result.Back.Text != "" {
			fmt.Fprintf(os.Stderr, "Back-translation: %s\n", result.Back.Text)
		}
		if result.Back.Warning != "" {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", result.Back.Warning)
		}
		if result.Confidence != "" {
			fmt.Fprintf(os.Stderr, "Confidence: %s\n", result.Confidence)
		}
		for _, ev := range result.Evidence {
			fmt.Fprintf(os.Stderr, "Used %s(%s)\n", ev.Capability, ev.Input)
		}
		fmt.Fprintf(os.Stderr, "Tokens: %d prompt, %d completion; elapsed %s\n",
			result.PromptTokens, result.CompletionTokens, result.Elapsed)
		return nil
	},
}

func readInput() (string, error) {
	switch {
	case translateText != "" && translateInput != "":
		return "", fmt.Errorf("--text and --input are mutually exclusive")
	case translateText != "":
		return translateText, nil
	case translateInput != "":
		data, err := os.ReadFile(translateInput)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("provide --text or --input")
	}
}

func selectLanguage(name string) (language.Module, error) {
	switch name {
	case "paiute":
		return paiute.New(), nil
	case "kethara":
		return kethara.New(), nil
	default:
		return nil, fmt.Errorf("unknown language %q: use paiute or kethara", name)
	}
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVar(&translateText, "text", "", "English text to translate")
	translateCmd.Flags().StringVarP(&translateInput, "input", "i", "", "Input file to translate")
	translateCmd.Flags().StringVarP(&translateLanguage, "language", "l", "paiute", "Target language (paiute, kethara)")
	translateCmd.Flags().StringVarP(&translateMode, "mode", "m", "pipeline", "Translation mode (pipeline, agentic)")
	translateCmd.Flags().StringVar(&translateModel, "model", "gpt-4o-mini", "Model identifier")
	translateCmd.Flags().StringVar(&translateBaseURL, "base-url", "", "OpenAI-compatible API base URL")
	translateCmd.Flags().StringVar(&translateAPIKey, "api-key", "", "API key (falls back to environment)")
	translateCmd.Flags().IntVar(&translateBudget, "budget", agent.DefaultTurnBudget, "Capability-turn budget for agentic mode")
	translateCmd.Flags().BoolVarP(&translateVerbose, "verbose", "v", false, "Log model and tool activity to stderr")
	translateCmd.Flags().StringVar(&googleCredentials, "google-credentials", "", "Google Cloud credentials file (enables the reference_translation tool)")

	viper.BindEnv("api_key", "YADUHA_API_KEY", "OPENAI_API_KEY")
}

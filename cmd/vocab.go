package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kubishi/yaduha-2/internal/language"
)

var vocabLanguage string

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "List the vocabulary of a target language",
	Long: `List the English-to-target vocabulary of a language, partitioned into
nouns, transitive verbs and intransitive verbs. Only these lemmas can appear
in translations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		module, err := selectLanguage(vocabLanguage)
		if err != nil {
			return err
		}
		lex := module.Lexicon()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		sections := []struct {
			title string
			cat   language.Category
		}{
			{"NOUNS", language.CategoryNoun},
			{"TRANSITIVE VERBS", language.CategoryTransitiveVerb},
			{"INTRANSITIVE VERBS", language.CategoryIntransitiveVerb},
		}
		for _, section := range sections {
			fmt.Fprintf(w, "%s\t\n", section.title)
			for _, e := range lex.Entries(section.cat) {
				fmt.Fprintf(w, "  %s\t%s\n", e.English, e.Target)
			}
			fmt.Fprintln(w, "\t")
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(vocabCmd)

	vocabCmd.Flags().StringVarP(&vocabLanguage, "language", "l", "paiute", "Target language (paiute, kethara)")
}

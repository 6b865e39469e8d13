package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "yaduha",
	Short: "Grammatically constrained LLM translation",
	Long: `Translate English into small, grammatically constrained target languages
(Owens Valley Paiute, Kethara) using an LLM for structural decomposition and
a local rendering engine for every target-language word.

Use "yaduha translate --help" for translation options.`,
	Version: version,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	viper.SetEnvPrefix("yaduha")
	viper.AutomaticEnv()
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codetidy",
	Short: "Standardize and translate Python and R code",
	Long: `codetidy runs external analyzers and formatters against a source file and
uses a hosted language model to rewrite the file so it passes their checks,
summarize it, or translate it between Python and R.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = false
}

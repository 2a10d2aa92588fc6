package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/codetidy/codetidy/internal/workflow"
)

var (
	summarizeLanguage string
	summarizeModel    string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Summarize what a source file does",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().StringVarP(&summarizeLanguage, "language", "L", "", "Source language: python or r (default: from file extension)")
	summarizeCmd.Flags().StringVar(&summarizeModel, "model", "", "Model to use")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	svc, cfg, err := buildService(summarizeModel)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	language := workflow.Language(summarizeLanguage)
	if language == "" {
		language = languageFromExtension(args[0])
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	summary, err := svc.Summarize(ctx, string(content), language)
	if err != nil {
		return err
	}

	fmt.Println(summary)
	return nil
}

func languageFromExtension(path string) workflow.Language {
	switch filepath.Ext(path) {
	case ".r", ".R":
		return workflow.LanguageR
	default:
		return workflow.LanguagePython
	}
}

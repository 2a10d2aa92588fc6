package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/codetidy/codetidy/internal/workflow"
)

var (
	translateFrom  string
	translateModel string
)

var translateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Translate code between Python and R",
	Long: `Translate the given file (or stdin) from the source language to the
other one: Python to R, or R to Python.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&translateFrom, "from", "f", "python", "Source language: python or r")
	translateCmd.Flags().StringVar(&translateModel, "model", "", "Model to use")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	svc, cfg, err := buildService(translateModel)
	if err != nil {
		return err
	}

	code, err := readInput(args)
	if err != nil {
		return err
	}

	from := workflow.Language(translateFrom)
	to := workflow.LanguageR
	if from == workflow.LanguageR {
		to = workflow.LanguagePython
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	result, err := svc.Translate(ctx, workflow.TranslateRequest{
		Code: code,
		From: from,
		To:   to,
	})
	if err != nil {
		return err
	}

	if result.Warning != "" {
		fmt.Fprintf(os.Stderr, "warning: %s\n", result.Warning)
	}

	fmt.Println(result.Code)
	return nil
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(content), nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(content), nil
}

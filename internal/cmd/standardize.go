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
	standardizeLanguage string
	standardizeTool     string
	standardizeModel    string
	standardizeOutput   string
)

var standardizeCmd = &cobra.Command{
	Use:   "standardize <file>",
	Short: "Analyze a source file and rewrite it to pass the selected tool",
	Long: `Run the selected standardizer against a source file, send the code and
the lint report to the model, and write the rewritten file. Pylint and
Black apply to Python files, lintr to R files.`,
	Args: cobra.ExactArgs(1),
	RunE: runStandardize,
}

func init() {
	rootCmd.AddCommand(standardizeCmd)

	standardizeCmd.Flags().StringVarP(&standardizeLanguage, "language", "L", "python", "Source language: python or r")
	standardizeCmd.Flags().StringVarP(&standardizeTool, "standardizer", "s", "pylint", "Standardizer: pylint, black, or lintr")
	standardizeCmd.Flags().StringVar(&standardizeModel, "model", "", "Model to use")
	standardizeCmd.Flags().StringVarP(&standardizeOutput, "output", "o", "", "Output path (default: standardized_<file> in the current directory)")
}

func runStandardize(cmd *cobra.Command, args []string) error {
	svc, cfg, err := buildService(standardizeModel)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	report, err := svc.Standardize(ctx, workflow.StandardizeRequest{
		FileName:     filepath.Base(args[0]),
		Content:      content,
		Language:     workflow.Language(standardizeLanguage),
		Standardizer: workflow.Standardizer(standardizeTool),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Summary:\n%s\n", report.Summary)
	if report.LintReport != "" {
		fmt.Printf("\nLint report:\n%s\n", report.LintReport)
	}
	if report.NewLintReport != "" {
		fmt.Printf("\nNew lint report:\n%s\n", report.NewLintReport)
	}
	if report.NewScore != "" {
		fmt.Printf("\n%s\n", report.NewScore)
	}
	for _, warning := range report.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	dest := standardizeOutput
	if dest == "" {
		dest = report.OutputName
	}
	if err := os.WriteFile(dest, []byte(report.Standardized), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("\nWrote %s\n", dest)
	return nil
}

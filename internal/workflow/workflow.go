package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/codetidy/codetidy/internal/ai"
	"github.com/codetidy/codetidy/internal/analyze"
	"github.com/codetidy/codetidy/internal/format"
	"github.com/codetidy/codetidy/internal/toolchain"
)

// ModelClient is the single-turn chat call the workflow depends on.
type ModelClient interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// Service sequences the analyzer, formatter, and model calls for one user
// action. Every run of Standardize works inside its own scratch directory
// keyed by a fresh request ID, so concurrent requests never collide on
// file names.
type Service struct {
	model       ModelClient
	analyzer    *analyze.Analyzer
	formatter   *format.Formatter
	scratchRoot string
	logger      *slog.Logger
}

func NewService(model ModelClient, runner toolchain.Runner, scratchRoot string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	tools := toolchain.NewManager(runner, logger)

	return &Service{
		model:       model,
		analyzer:    analyze.NewAnalyzer(runner, tools, logger),
		formatter:   format.NewFormatter(runner, tools, logger),
		scratchRoot: scratchRoot,
		logger:      logger,
	}
}

// Standardize saves the upload into a request-scoped scratch directory,
// summarizes it, runs the selected standardizer, rewrites the code through
// the model where the standardizer calls for it, and re-analyzes the
// result.
func (s *Service) Standardize(ctx context.Context, req StandardizeRequest) (*StandardizeReport, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	dir := filepath.Join(s.scratchRoot, requestID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}

	fileName := filepath.Base(req.FileName)
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, req.Content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to save uploaded file: %w", err)
	}

	original := string(req.Content)
	report := &StandardizeReport{
		RequestID:  requestID,
		OutputName: "standardized_" + fileName,
	}

	report.Summary = s.chat(ctx, ai.SummarizePrompt(original, req.Language.Label()), report)

	var standardized string
	switch req.Standardizer {
	case StandardizerPylint:
		lintReport, err := s.analyzer.Pylint(ctx, path)
		if err != nil {
			return nil, err
		}
		report.LintReport = lintReport
		standardized = ai.StripFences(s.chat(ctx, ai.ImprovePylintPrompt(original, lintReport), report), "python")

	case StandardizerBlack:
		formatted, err := s.formatter.Black(ctx, path)
		if err != nil {
			return nil, err
		}
		standardized = formatted

	case StandardizerLintr:
		lintReport, err := s.analyzer.Lintr(ctx, path)
		if err != nil {
			return nil, err
		}
		report.LintReport = lintReport
		standardized = ai.StripFences(s.chat(ctx, ai.ImproveLintrPrompt(original, lintReport), report), "r")
	}

	report.Standardized = standardized
	report.OutputPath = filepath.Join(dir, report.OutputName)
	if err := os.WriteFile(report.OutputPath, []byte(standardized), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write standardized file: %w", err)
	}

	if req.Standardizer == StandardizerPylint {
		newReport, err := s.analyzer.Pylint(ctx, report.OutputPath)
		if err != nil {
			return nil, err
		}
		report.NewLintReport = newReport
		report.NewScore = analyze.ExtractScore(newReport)
	}

	return report, nil
}

// Translate runs a single prompt/response round trip with no file I/O.
// A model failure becomes a warning and an empty translation rather than
// an error.
func (s *Service) Translate(ctx context.Context, req TranslateRequest) (*TranslateResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	prompt := ai.TranslatePrompt(req.Code, req.From.Label(), req.To.Label())

	code, err := s.model.Chat(ctx, prompt)
	if err != nil {
		s.logger.Warn("model call failed", "error", err)
		return &TranslateResult{Warning: err.Error()}, nil
	}

	return &TranslateResult{Code: code}, nil
}

// Summarize asks the model for a concise explanation of the given code.
func (s *Service) Summarize(ctx context.Context, code string, language Language) (string, error) {
	if !language.valid() {
		return "", fmt.Errorf("unsupported language: %q", language)
	}
	return s.model.Chat(ctx, ai.SummarizePrompt(code, language.Label()))
}

// chat runs a model call, converting any failure into a warning on the
// report and an empty string, so the pipeline keeps going.
func (s *Service) chat(ctx context.Context, prompt string, report *StandardizeReport) string {
	out, err := s.model.Chat(ctx, prompt)
	if err != nil {
		s.logger.Warn("model call failed", "error", err)
		report.Warnings = append(report.Warnings, err.Error())
		return ""
	}
	return out
}

package workflow

import "fmt"

type Language string

const (
	LanguagePython Language = "python"
	LanguageR      Language = "r"
)

func (l Language) valid() bool {
	return l == LanguagePython || l == LanguageR
}

// Label returns the display name used inside prompts.
func (l Language) Label() string {
	switch l {
	case LanguagePython:
		return "Python"
	case LanguageR:
		return "R"
	default:
		return string(l)
	}
}

type Standardizer string

const (
	StandardizerPylint Standardizer = "pylint"
	StandardizerBlack  Standardizer = "black"
	StandardizerLintr  Standardizer = "lintr"
)

type StandardizeRequest struct {
	FileName     string
	Content      []byte
	Language     Language
	Standardizer Standardizer
}

func (r StandardizeRequest) validate() error {
	if r.FileName == "" {
		return fmt.Errorf("file name is required")
	}
	if !r.Language.valid() {
		return fmt.Errorf("unsupported language: %q", r.Language)
	}

	switch r.Standardizer {
	case StandardizerPylint, StandardizerBlack:
		if r.Language != LanguagePython {
			return fmt.Errorf("standardizer %q only supports Python", r.Standardizer)
		}
	case StandardizerLintr:
		if r.Language != LanguageR {
			return fmt.Errorf("standardizer %q only supports R", r.Standardizer)
		}
	default:
		return fmt.Errorf("unsupported standardizer: %q", r.Standardizer)
	}

	return nil
}

// StandardizeReport carries everything the UI renders for one run.
type StandardizeReport struct {
	RequestID     string
	Summary       string
	LintReport    string
	Standardized  string
	NewLintReport string
	NewScore      string
	OutputPath    string
	OutputName    string
	Warnings      []string
}

type TranslateRequest struct {
	Code string
	From Language
	To   Language
}

func (r TranslateRequest) validate() error {
	if !r.From.valid() {
		return fmt.Errorf("unsupported source language: %q", r.From)
	}
	if !r.To.valid() {
		return fmt.Errorf("unsupported target language: %q", r.To)
	}
	if r.From == r.To {
		return fmt.Errorf("source and target language must differ")
	}
	return nil
}

type TranslateResult struct {
	Code    string
	Warning string
}

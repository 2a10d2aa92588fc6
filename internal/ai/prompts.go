package ai

import "fmt"

// Prompt builders for the fixed instruction templates. Each returns a
// single free-text prompt embedding the source (and, where relevant, a
// lint report).

func ImprovePylintPrompt(code, lintReport string) string {
	return fmt.Sprintf(`Given the following Python code and the Pylint report, improve the code to address all issues and achieve a Pylint score greater than 8.
Include only the necessary docstrings and avoid redundant explanations.

Original Code:
%s

Pylint Report:
%s

Improved Code:
`, code, lintReport)
}

func FormatBlackPrompt(code string) string {
	return fmt.Sprintf(`Given the following Python code, format it according to the Black code style.

Original Code:
%s

Improved Code:
`, code)
}

func ImproveLintrPrompt(code, lintReport string) string {
	return fmt.Sprintf(`Given the following R code and the lintr report, improve the code to address all issues according to R's best practices.
Include only the necessary comments and avoid redundant explanations.

Original Code:
%s

lintr Report:
%s

Improved Code:
`, code, lintReport)
}

func SummarizePrompt(code, language string) string {
	return fmt.Sprintf(`Summarize the following %s code. Provide a concise explanation of what the code does.

Code:
%s

Summary:
`, language, code)
}

func TranslatePrompt(code, from, to string) string {
	return fmt.Sprintf(`Translate the following %s code into %s code.

%s Code:
%s

%s Code:
`, from, to, from, code, to)
}

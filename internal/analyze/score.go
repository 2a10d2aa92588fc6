package analyze

import "strings"

const (
	scoreMarker   = "Your code has been rated at"
	scoreFallback = "Pylint score not found."
)

// ExtractScore returns the first line of a pylint report that carries the
// rating, or a fixed fallback when the report has none.
func ExtractScore(report string) string {
	for _, line := range strings.Split(report, "\n") {
		if strings.Contains(line, scoreMarker) {
			return strings.TrimSpace(line)
		}
	}
	return scoreFallback
}

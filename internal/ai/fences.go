package ai

import "strings"

// StripFences removes markdown code-fence markers from model output. The
// language-tagged opening fence is removed first so a bare "```" pass does
// not leave the tag behind.
func StripFences(text, lang string) string {
	stripped := strings.ReplaceAll(text, "```"+lang, " ")
	return strings.ReplaceAll(stripped, "```", " ")
}

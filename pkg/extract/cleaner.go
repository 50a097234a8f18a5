// Package extract turns pasted or web-scraped recipe text into a draft
// recipe the editor can open for correction. It is deliberately heuristic:
// real extraction quality comes from the external extraction API, and the
// draft parser only has to produce something worth editing.
package extract

import (
	"regexp"
	"strings"
)

// Patterns for boilerplate that web pages wrap around recipes. Matched
// lines are dropped before parsing.
var webNoisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(advertisement|sponsored)\b`),
	regexp.MustCompile(`(?i)(subscribe|newsletter|sign up)\b`),
	regexp.MustCompile(`(?i)(follow us|share this|social media)\b`),
	regexp.MustCompile(`(?i)(cookie policy|privacy policy)\b`),
	regexp.MustCompile(`(?i)(rate this|rating)\s*:?\s*[\d★☆]`),
	regexp.MustCompile(`(?i)^(print|save|bookmark)\s+(this\s+)?recipe\b`),
	regexp.MustCompile(`(?i)(jump to|skip to)\s+(recipe|instructions)`),
	regexp.MustCompile(`(?i)^\s*(calories|nutrition)\s*:`),
}

var (
	multiSpace = regexp.MustCompile(`[ \t]+`)
	multiBlank = regexp.MustCompile(`\n{3,}`)
)

// CleanWebText strips boilerplate lines and normalizes whitespace in
// web-scraped recipe text.
func CleanWebText(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isNoise(trimmed) {
			continue
		}
		kept = append(kept, multiSpace.ReplaceAllString(trimmed, " "))
	}

	out := strings.Join(kept, "\n")
	out = multiBlank.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

func isNoise(line string) bool {
	if line == "" {
		return false
	}
	for _, p := range webNoisePatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

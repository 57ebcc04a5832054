package summarizer

import "strings"

// ParseBullets splits a model response into display-ready bullet lines.
// Leading "-", "*" or "•" markers are stripped and blank lines dropped.
func ParseBullets(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

package parsers

import (
	"strings"

	"resumelift/models"
)

const (
	summaryWindow   = 800
	summaryMaxLines = 5
	summaryMinChars = 50
	summaryCap      = 500
)

// extractSummary locates a summary-like section and joins its first usable
// lines. When no section exists (or the section is too thin) it falls back to
// the first long non-contact line in the document, then to the generic
// default sentence.
func extractSummary(full, lower string, lines []string) string {
	if idx := findSection(lower, summaryKeywords); idx >= 0 {
		window := sectionWindow(full, idx, summaryWindow)
		windowLines := strings.Split(window, "\n")
		var kept []string
		// Skip the header line itself.
		for _, l := range windowLines[1:] {
			l = strings.TrimSpace(l)
			if len(l) < 10 {
				continue
			}
			if containsAny(strings.ToLower(l), sectionHeaderWords) && len(l) < 40 {
				break
			}
			kept = append(kept, l)
			if len(kept) >= summaryMaxLines {
				break
			}
		}
		joined := strings.Join(kept, " ")
		if len(joined) > summaryMinChars {
			return capText(joined, summaryCap)
		}
	}

	for _, line := range lines {
		if len(line) > 100 && !strings.Contains(line, "@") && !phoneRegex.MatchString(line) {
			return capText(line, summaryCap)
		}
	}

	return models.DefaultSummary
}

// capText truncates text to limit runes, appending an ellipsis when cut.
func capText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit-3])) + "..."
}

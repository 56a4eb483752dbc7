package parsers

import "strings"

// Input size limits. The caps exist to bound worst-case CPU time of the
// regex passes against pathological input; the minimums are enforced by the
// HTTP handlers before any extraction runs.
const (
	MaxResumeChars  = 50000
	MaxJobDescChars = 20000
	MinResumeChars  = 50
	MinJobDescChars = 20
	MaxLines        = 1000
)

// SanitizeText trims the input and clamps it to limit runes. It must run
// before any extractor or analyzer touches the text.
func SanitizeText(text string, limit int) string {
	text = strings.TrimSpace(text)
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) > limit {
		text = string(runes[:limit])
	}
	return text
}

// SplitLines splits sanitized text into trimmed lines, capped at MaxLines.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	if len(raw) > MaxLines {
		raw = raw[:MaxLines]
	}
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// findSection returns the index of the first occurrence of any keyword in
// lower (which must already be lower-cased), trying keywords in declared
// priority order. Returns -1 when nothing matches.
func findSection(lower string, keywords []string) int {
	for _, kw := range keywords {
		if idx := strings.Index(lower, kw); idx >= 0 {
			return idx
		}
	}
	return -1
}

// sectionWindow slices up to size characters of full starting after the
// keyword match at idx.
func sectionWindow(full string, idx, size int) string {
	if idx < 0 || idx >= len(full) {
		return ""
	}
	end := idx + size
	if end > len(full) {
		end = len(full)
	}
	return full[idx:end]
}

// splitBlocks splits a section window into blank-line-delimited blocks.
func splitBlocks(window string) []string {
	var blocks []string
	for _, b := range strings.Split(window, "\n\n") {
		b = strings.TrimSpace(b)
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// stripBulletMarker removes a leading bullet marker (•, -, *, or "1." style)
// and returns the trimmed remainder.
func stripBulletMarker(line string) string {
	trimmed := strings.TrimSpace(line)
	if m := bulletMarkerRegex.FindStringIndex(trimmed); m != nil {
		return strings.TrimSpace(trimmed[m[1]:])
	}
	return trimmed
}

// isBulletLine reports whether the line starts with a recognized bullet
// marker followed by whitespace.
func isBulletLine(line string) bool {
	return bulletMarkerRegex.MatchString(strings.TrimSpace(line))
}

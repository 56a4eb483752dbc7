package renderer

import (
	"regexp"
	"strings"
)

// LineKind is the tagged classification of one canonical-document line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineName
	LineContact
	LineSectionHeader
	LineTableRow
	LineCompany
	LineTwoPart
	LineBullet
	LineDate
	LineParagraph
)

// waitState replaces the pair of coupled booleans the layout automaton would
// otherwise need: after a title/date or table row inside EXPERIENCE or
// EDUCATION, the next plain line is the company or university name.
type waitState int

const (
	waitIdle waitState = iota
	waitCompany
	waitUniversity
)

// Context is the automaton state threaded through classification. Classify
// reads it but never mutates it; Advance applies the transition for the
// classified line.
type Context struct {
	LineNum          int
	Section          string
	Wait             waitState
	AfterHeaderBlank bool
}

// NewContext returns the initial state: before any line, as if following a
// blank line.
func NewContext() *Context {
	return &Context{AfterHeaderBlank: true}
}

// Section headers recognized verbatim. Markdown "## " variants of EDUCATION
// and WORK EXPERIENCE are accepted for documents produced by the LLM path.
var sectionHeaders = map[string]string{
	"PROFESSIONAL SUMMARY": "PROFESSIONAL SUMMARY",
	"WORK EXPERIENCE":      "WORK EXPERIENCE",
	"EXPERIENCE":           "WORK EXPERIENCE",
	"EDUCATION":            "EDUCATION",
	"TECHNICAL SKILLS":     "TECHNICAL SKILLS",
	"SKILLS":               "TECHNICAL SKILLS",
	"PROJECTS":             "PROJECTS",
	"ACHIEVEMENTS":         "ACHIEVEMENTS",
	"CERTIFICATIONS":       "CERTIFICATIONS",
	"LINKS":                "LINKS",
}

var (
	dateRangeRegex = regexp.MustCompile(`(?i)([A-Za-z]{3,9}\.?\s*\d{4}|\d{4})\s*[-–—]\s*([A-Za-z]{3,9}\.?\s*\d{4}|\d{4}|present)`)
	yearRegex      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	dashSplitRegex = regexp.MustCompile(`\s+[—–]\s+`)
	linkWordRegex  = regexp.MustCompile(`(?i)\b(linkedin|github|portfolio|website|http)\b`)
)

// Classify assigns a LineKind to one line given the current automaton state.
// The check order is load-bearing and mirrors the canonical grammar: moving
// a case changes how ambiguous lines (dated titles, pipe rows, company
// names) resolve.
func Classify(line string, ctx *Context) LineKind {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return LineBlank
	}

	// 1. Document title line.
	if ctx.LineNum == 0 && !isContactShaped(trimmed) && !isSectionHeader(trimmed) {
		return LineName
	}

	// 2. Contact line. A bare pipe only counts before the first section
	// header; inside EDUCATION/EXPERIENCE a pipe means a table row.
	if strings.Contains(trimmed, "@") || linkWordRegex.MatchString(trimmed) ||
		(strings.Contains(trimmed, "|") && ctx.Section == "") {
		return LineContact
	}

	// 3. Section header, verbatim or "## " markdown variant.
	if isSectionHeader(trimmed) {
		return LineSectionHeader
	}

	// 4. Pipe-delimited table row inside EDUCATION or EXPERIENCE.
	if isTableRow(trimmed) && (ctx.Section == "WORK EXPERIENCE" || ctx.Section == "EDUCATION") {
		return LineTableRow
	}

	// 5. Company/university name: a plain line right after a header, blank
	// line or title row inside EXPERIENCE/EDUCATION.
	if (ctx.Section == "WORK EXPERIENCE" || ctx.Section == "EDUCATION") &&
		(ctx.AfterHeaderBlank || ctx.Wait != waitIdle) &&
		!isBullet(trimmed) && !isDateLine(trimmed) && !isTableRow(trimmed) &&
		!isDashTwoPart(trimmed) {
		return LineCompany
	}

	// 6. Em/en-dash two-part line (title — dates, degree — years).
	if isDashTwoPart(trimmed) {
		return LineTwoPart
	}

	// 7. Bullet.
	if isBullet(trimmed) {
		return LineBullet
	}

	// 8. Date/location line.
	if isDateLine(trimmed) {
		return LineDate
	}

	return LineParagraph
}

// Advance applies the state transition for a line already classified.
func Advance(ctx *Context, kind LineKind, line string) {
	ctx.LineNum++
	switch kind {
	case LineBlank:
		ctx.AfterHeaderBlank = true
		return
	case LineSectionHeader:
		ctx.Section = canonicalSection(strings.TrimSpace(line))
		ctx.Wait = waitIdle
		ctx.AfterHeaderBlank = true
		return
	case LineTableRow, LineTwoPart:
		if ctx.Section == "EDUCATION" {
			ctx.Wait = waitUniversity
		} else {
			ctx.Wait = waitCompany
		}
	case LineCompany, LineDate:
		ctx.Wait = waitIdle
	}
	ctx.AfterHeaderBlank = false
}

func isSectionHeader(line string) bool {
	_, ok := sectionHeaders[canonicalKey(line)]
	return ok
}

// canonicalSection maps a header line (including "## " variants and aliases
// like EXPERIENCE) to its canonical section name.
func canonicalSection(line string) string {
	if s, ok := sectionHeaders[canonicalKey(line)]; ok {
		return s
	}
	return ""
}

func canonicalKey(line string) string {
	line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "## "))
	return strings.ToUpper(line)
}

func isContactShaped(line string) bool {
	return strings.Contains(line, "@") || strings.Contains(line, "|") ||
		linkWordRegex.MatchString(line)
}

func isTableRow(line string) bool {
	return strings.HasPrefix(line, "|") && strings.Count(line, "|") >= 2
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "•")
}

// isDateLine matches a date range, or a piped line carrying a year or
// "present".
func isDateLine(line string) bool {
	if dateRangeRegex.MatchString(line) {
		return true
	}
	if strings.Contains(line, "|") {
		lower := strings.ToLower(line)
		return yearRegex.MatchString(line) || strings.Contains(lower, "present")
	}
	return false
}

// isDashTwoPart reports an em/en-dash separator between two non-empty
// segments.
func isDashTwoPart(line string) bool {
	parts := dashSplitRegex.Split(line, 2)
	return len(parts) == 2 &&
		strings.TrimSpace(parts[0]) != "" && strings.TrimSpace(parts[1]) != ""
}

// splitDashParts returns the two segments of a two-part line.
func splitDashParts(line string) (string, string) {
	parts := dashSplitRegex.Split(line, 2)
	if len(parts) != 2 {
		return line, ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

package parsers

import (
	"strings"

	"resumelift/models"
)

const experienceWindow = 3000

// extractExperience parses the experience section into structured entries.
// Strategy order: section-keyword window, then a whole-document role-keyword
// scan, then nothing (an empty slice is a valid result).
func extractExperience(full, lower string, lines []string) []models.Experience {
	if idx := findSection(lower, experienceKeywords); idx >= 0 {
		window := sectionWindow(full, idx, experienceWindow)
		if entries := parseExperienceBlocks(splitBlocks(window)); len(entries) > 0 {
			return entries
		}
	}
	return scanExperienceFallback(full, lines)
}

func parseExperienceBlocks(blocks []string) []models.Experience {
	var entries []models.Experience
	for _, block := range blocks {
		if len(entries) >= models.MaxExperience {
			break
		}
		// The character window can run past the section's end; stop at the
		// first block that opens another section.
		if isForeignSectionStart(block) {
			break
		}
		blockLower := strings.ToLower(block)
		// Blocks carrying education signals belong to the education section,
		// unless a job-role word is also present.
		if containsAny(blockLower, educationSignals) && !containsAny(blockLower, roleWords) {
			continue
		}
		if exp, ok := parseExperienceBlock(block); ok {
			entries = append(entries, exp)
		}
	}
	return entries
}

// parseExperienceBlock extracts one Experience from a blank-line-delimited
// block. Returns false when neither a title nor a company was found.
func parseExperienceBlock(block string) (models.Experience, bool) {
	exp := models.DefaultExperience()
	blockLines := strings.Split(block, "\n")

	exp.StartDate, exp.EndDate = extractDates(block)

	// Title/company disambiguation is order-dependent: the first short line
	// carrying a role keyword is the title and the next plain line is the
	// company. When the first candidate has no role keyword it is taken as
	// the company instead. This silently swaps roles for unusual layouts;
	// that matches the documented heuristic and is intentionally left as is.
	foundTitle, foundCompany := false, false
	scanned := 0
	for _, line := range blockLines {
		line = strings.TrimSpace(line)
		if line == "" || isBulletLine(line) {
			continue
		}
		// The section header itself can share a block with the first entry.
		if len(line) < 40 && containsAny(strings.ToLower(line), sectionHeaderWords) {
			continue
		}
		if scanned >= 5 {
			break
		}
		scanned++
		if strings.Contains(line, "@") || phoneRegex.MatchString(line) {
			continue
		}
		clean := dateRangeRegex.ReplaceAllString(line, "")
		clean = strings.Trim(clean, " -–—|,")
		if clean == "" || len(clean) > 80 {
			continue
		}
		if !foundTitle && !foundCompany {
			if containsAny(strings.ToLower(clean), roleWords) {
				exp.Title = clean
				foundTitle = true
			} else {
				exp.Company = clean
				foundCompany = true
			}
			continue
		}
		if foundTitle && !foundCompany {
			exp.Company = clean
			foundCompany = true
			continue
		}
		if foundCompany && !foundTitle {
			exp.Title = clean
			foundTitle = true
			continue
		}
		break
	}

	for _, line := range blockLines {
		if isBulletLine(line) {
			if text := stripBulletMarker(line); text != "" {
				exp.Bullets = append(exp.Bullets, text)
			}
		}
	}

	if !foundTitle && !foundCompany {
		return exp, false
	}
	return exp, true
}

// isForeignSectionStart reports whether a block's first line is a header of a
// non-experience section.
func isForeignSectionStart(block string) bool {
	first := strings.TrimSpace(strings.SplitN(block, "\n", 2)[0])
	if len(first) >= 40 {
		return false
	}
	lower := strings.ToLower(first)
	return containsAny(lower, []string{
		"education", "skills", "projects", "achievement", "certification",
		"award", "references",
	})
}

// extractDates returns (start, end) from a block, preferring an explicit
// date range and falling back to the first two 4-digit years.
func extractDates(block string) (string, string) {
	start, end := models.DefaultStartDate, models.DefaultEndDate
	if m := dateRangeRegex.FindStringSubmatch(block); m != nil {
		start = strings.TrimSpace(m[1])
		end = strings.TrimSpace(m[2])
		if strings.EqualFold(end, "current") {
			end = "Present"
		}
		return start, end
	}
	years := yearRegex.FindAllString(block, -1)
	if len(years) >= 1 {
		start = years[0]
	}
	if len(years) >= 2 {
		end = years[1]
	}
	return start, end
}

// scanExperienceFallback synthesizes entries by scanning every line for a
// role keyword and parsing the 500 characters that follow it. Used when no
// experience section was located or it produced zero valid blocks.
func scanExperienceFallback(full string, lines []string) []models.Experience {
	var entries []models.Experience
	offset := 0
	for _, line := range lines {
		if len(entries) >= models.MaxExperience {
			break
		}
		if line == "" {
			continue
		}
		pos := strings.Index(full[offset:], line)
		if pos < 0 {
			continue
		}
		pos += offset
		offset = pos + len(line)

		if !containsAny(strings.ToLower(line), roleWords) {
			continue
		}
		if containsAny(strings.ToLower(line), educationSignals) {
			continue
		}
		block := sectionWindow(full, pos, 500)
		if exp, ok := parseExperienceBlock(block); ok {
			entries = append(entries, exp)
		}
	}
	return entries
}

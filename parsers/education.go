package parsers

import (
	"strings"

	"resumelift/models"
)

const educationWindow = 2000

// extractEducation parses the education section. Any line matching the
// degree regex starts a new entry; neighboring lines fill in the university
// when the degree line itself does not name one. Falls back to a whole-
// document degree scan when no education section exists.
func extractEducation(full, lower string, lines []string) []models.Education {
	if idx := findSection(lower, educationKeywords); idx >= 0 {
		window := sectionWindow(full, idx, educationWindow)
		if entries := parseEducationLines(strings.Split(window, "\n")); len(entries) > 0 {
			return entries
		}
	}
	entries := parseEducationLines(lines)
	if entries == nil {
		entries = []models.Education{}
	}
	return entries
}

func parseEducationLines(sectionLines []string) []models.Education {
	var entries []models.Education
	for i, line := range sectionLines {
		if len(entries) >= models.MaxEducation {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || !degreeRegex.MatchString(line) {
			continue
		}

		edu := models.DefaultEducation()
		edu.Degree = strings.TrimSpace(stripBulletMarker(line))

		if schoolRegex.MatchString(line) {
			// Degree and school share the line. Split on the first comma when
			// possible, otherwise keep the whole line for both fields.
			if comma := strings.Index(line, ","); comma > 0 {
				edu.Degree = strings.TrimSpace(stripBulletMarker(line[:comma]))
				edu.University = strings.Trim(line[comma+1:], " ,-–—")
			} else {
				edu.University = line
			}
		} else {
			// Scan up to 3 neighboring lines for the school name.
			for off := 1; off <= 3; off++ {
				for _, j := range []int{i + off, i - off} {
					if j < 0 || j >= len(sectionLines) {
						continue
					}
					neighbor := strings.TrimSpace(sectionLines[j])
					if neighbor != "" && schoolRegex.MatchString(neighbor) {
						edu.University = stripBulletMarker(neighbor)
						break
					}
				}
				if edu.University != models.DefaultUniversity {
					break
				}
			}
		}

		years := yearRegex.FindAllString(line, 2)
		if len(years) == 1 {
			edu.Years = years[0]
		} else if len(years) == 2 {
			edu.Years = years[0] + " - " + years[1]
		}

		if m := locationRegex.FindString(line); m != "" && !strings.Contains(edu.University, m) {
			edu.Location = m
		}

		entries = append(entries, edu)
	}
	return entries
}

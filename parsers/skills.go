package parsers

import (
	"strings"

	"resumelift/models"
)

const skillsWindow = 1000

// extractSkills merges two independent passes: a whole-document substring
// search against the category tables, and a skills-section pass whose extra
// hits land in Others. Duplicates are removed case-insensitively.
func extractSkills(full, lower string, lines []string) models.SkillSet {
	set := models.DefaultSkillSet()
	seen := map[string]bool{}

	add := func(category, term string) {
		key := strings.ToLower(term)
		if seen[key] {
			return
		}
		seen[key] = true
		switch category {
		case "programming":
			set.Programming = append(set.Programming, term)
		case "tools":
			set.Tools = append(set.Tools, term)
		case "databases":
			set.Databases = append(set.Databases, term)
		case "cloud":
			set.Cloud = append(set.Cloud, term)
		default:
			set.Others = append(set.Others, term)
		}
	}

	// Pass a: global table match.
	for _, category := range skillCategoryOrder {
		for _, term := range skillCategories[category] {
			if matchesTerm(lower, term) {
				add(category, term)
			}
		}
	}

	// Pass b: skills-section lines, extra hits categorized as Others.
	if idx := findSection(lower, skillsKeywords); idx >= 0 {
		window := strings.ToLower(sectionWindow(full, idx, skillsWindow))
		for _, rawLine := range strings.Split(window, "\n") {
			line := stripBulletMarker(rawLine)
			if line == "" {
				continue
			}
			for _, category := range skillCategoryOrder {
				for _, term := range skillCategories[category] {
					if matchesTerm(line, term) {
						add("others", term)
					}
				}
			}
		}
	}

	return set
}

// matchesTerm checks a case-insensitive occurrence of term inside lower.
// Terms up to 3 characters ("Go", "C#", "R", "AWS") require standalone word
// boundaries so they do not fire inside unrelated words.
func matchesTerm(lower, term string) bool {
	t := strings.ToLower(term)
	for start := 0; ; {
		idx := strings.Index(lower[start:], t)
		if idx < 0 {
			return false
		}
		idx += start
		if len(t) > 3 {
			return true
		}
		before := idx == 0 || isBoundary(lower[idx-1])
		afterIdx := idx + len(t)
		after := afterIdx >= len(lower) || isBoundary(lower[afterIdx])
		if before && after {
			return true
		}
		start = idx + 1
	}
}

func isBoundary(b byte) bool {
	return !((b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '+' || b == '#')
}

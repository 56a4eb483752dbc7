package parsers

import (
	"strings"

	"resumelift/models"
)

const (
	achievementsWindow = 800
	projectsWindow     = 2000
	certsWindow        = 500
	maxAchievementHits = 6
)

// extractAchievements keeps bullet-marked or quantified lines from the
// achievements section, then appends quantified sentences found anywhere in
// the document. Capped at 6 entries.
func extractAchievements(full, lower string, lines []string) []string {
	var out []string
	seen := map[string]bool{}

	add := func(text string) {
		text = strings.TrimSpace(text)
		key := strings.ToLower(text)
		if text == "" || seen[key] || len(out) >= maxAchievementHits {
			return
		}
		seen[key] = true
		out = append(out, text)
	}

	if idx := findSection(lower, achievementKeywords); idx >= 0 {
		window := sectionWindow(full, idx, achievementsWindow)
		for _, line := range strings.Split(window, "\n")[1:] {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if isBulletLine(line) || achievementHint.MatchString(line) {
				add(stripBulletMarker(line))
			}
		}
	}

	for _, m := range quantifiedRegex.FindAllString(full, -1) {
		add(m)
	}

	if out == nil {
		out = []string{}
	}
	return out
}

// extractProjects slices the text after the first "project" occurrence into
// blank-line blocks: first line is the title, the next lines the description,
// and pattern-matched lines fill contribution and tech stack. Missing fields
// fall back to generic placeholders.
func extractProjects(full, lower string, lines []string) []models.Project {
	projects := []models.Project{}
	idx := strings.Index(lower, "project")
	if idx < 0 {
		return projects
	}

	window := sectionWindow(full, idx, projectsWindow)
	blocks := splitBlocks(window)
	for _, block := range blocks {
		if len(projects) >= models.MaxProjects {
			break
		}
		blockLines := []string{}
		for _, l := range strings.Split(block, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				blockLines = append(blockLines, l)
			}
		}
		if len(blockLines) == 0 {
			continue
		}

		// The first block still starts with the section header itself.
		if strings.EqualFold(stripBulletMarker(blockLines[0]), "projects") ||
			strings.EqualFold(stripBulletMarker(blockLines[0]), "project") {
			blockLines = blockLines[1:]
			if len(blockLines) == 0 {
				continue
			}
		}

		proj := models.Project{
			Title:        stripBulletMarker(blockLines[0]),
			Description:  models.DefaultProjectDescription,
			Contribution: models.DefaultProjectContribution,
			TechStack:    models.DefaultProjectTechStack,
		}

		var desc []string
		for _, l := range blockLines[1:] {
			clean := stripBulletMarker(l)
			switch {
			case techStackRegex.MatchString(clean) && proj.TechStack == models.DefaultProjectTechStack:
				proj.TechStack = clean
			case contributionRegex.MatchString(clean) && proj.Contribution == models.DefaultProjectContribution:
				proj.Contribution = clean
			case len(desc) < 2:
				desc = append(desc, clean)
			}
		}
		if len(desc) > 0 {
			proj.Description = strings.Join(desc, " ")
		}

		projects = append(projects, proj)
	}
	return projects
}

// extractCertifications keeps bullet-marked lines or lines with
// certification-related words from the certifications section. Capped at 5.
func extractCertifications(full, lower string, lines []string) []string {
	certs := []string{}
	idx := findSection(lower, certKeywords)
	if idx < 0 {
		return certs
	}

	window := sectionWindow(full, idx, certsWindow)
	for _, line := range strings.Split(window, "\n")[1:] {
		if len(certs) >= models.MaxCertifications {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || len(line) < 5 {
			continue
		}
		if isBulletLine(line) || certWordRegex.MatchString(line) {
			certs = append(certs, stripBulletMarker(line))
		}
	}
	return certs
}

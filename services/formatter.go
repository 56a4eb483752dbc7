package services

import (
	"regexp"
	"strings"

	"resumelift/models"
)

// Formatter serializes a structured Resume into the canonical line-oriented
// text document consumed by the PDF renderer. The section vocabulary and the
// entry line shapes are a fixed contract; the renderer classifies lines by
// recognizing exactly this grammar.
type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

// Section headers in fixed output order.
var sectionOrder = []string{
	"PROFESSIONAL SUMMARY",
	"WORK EXPERIENCE",
	"EDUCATION",
	"TECHNICAL SKILLS",
	"PROJECTS",
	"ACHIEVEMENTS",
	"CERTIFICATIONS",
}

var excessBlankLines = regexp.MustCompile(`\n{3,}`)

// Format renders the canonical text document.
func (f *Formatter) Format(resume *models.Resume) string {
	var b strings.Builder

	b.WriteString(strings.ToUpper(resume.Name))
	b.WriteString("\n")
	if contact := formatContactLine(resume.Contact); contact != "" {
		b.WriteString(contact)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, section := range sectionOrder {
		body := f.sectionBody(section, resume)
		if body == "" {
			continue
		}
		b.WriteString(section)
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	out := strings.TrimRight(b.String(), "\n") + "\n"
	return excessBlankLines.ReplaceAllString(out, "\n\n")
}

func (f *Formatter) sectionBody(section string, resume *models.Resume) string {
	switch section {
	case "PROFESSIONAL SUMMARY":
		if resume.Summary == "" {
			return ""
		}
		return resume.Summary
	case "WORK EXPERIENCE":
		return formatExperience(resume.Experience)
	case "EDUCATION":
		return formatEducation(resume.Education)
	case "TECHNICAL SKILLS":
		return formatSkills(&resume.Skills)
	case "PROJECTS":
		return formatProjects(resume.Projects)
	case "ACHIEVEMENTS":
		return formatStringList(resume.Achievements)
	case "CERTIFICATIONS":
		return formatStringList(resume.Certifications)
	}
	return ""
}

// formatContactLine joins the present contact fields with " | " and carries
// clickable-link targets in a ||URLS:...|| suffix the renderer understands.
func formatContactLine(c models.Contact) string {
	var parts []string
	var urls []string

	if c.Email != "" {
		parts = append(parts, c.Email)
	}
	if c.Phone != "" {
		parts = append(parts, c.Phone)
	}
	if c.LinkedIn != "" {
		parts = append(parts, "LinkedIn")
		urls = append(urls, "LinkedIn::"+withScheme(c.LinkedIn))
	}
	if c.GitHub != "" {
		parts = append(parts, "GitHub")
		urls = append(urls, "GitHub::"+withScheme(c.GitHub))
	}
	if c.Portfolio != "" {
		parts = append(parts, "Portfolio")
		urls = append(urls, "Portfolio::"+withScheme(c.Portfolio))
	}

	if len(parts) == 0 {
		return ""
	}
	line := strings.Join(parts, " | ")
	if len(urls) > 0 {
		line += "||URLS:" + strings.Join(urls, "||")
	}
	return line
}

func withScheme(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}

// formatExperience skips entries whose title and company are both still
// placeholders, preventing "Position at Company" noise in the output.
func formatExperience(entries []models.Experience) string {
	var blocks []string
	for _, exp := range entries {
		if exp.Title == models.DefaultTitle && exp.Company == models.DefaultCompany {
			continue
		}
		var b strings.Builder
		b.WriteString(exp.Title)
		b.WriteString(" — ")
		b.WriteString(exp.StartDate)
		b.WriteString(" – ")
		b.WriteString(exp.EndDate)
		b.WriteString("\n")
		b.WriteString(strings.ToUpper(exp.Company))
		for _, bullet := range exp.Bullets {
			b.WriteString("\n• ")
			b.WriteString(bullet)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// formatEducation deduplicates entries by (degree, university) and skips
// placeholder-only entries.
func formatEducation(entries []models.Education) string {
	seen := map[string]bool{}
	var blocks []string
	for _, edu := range entries {
		if edu.Degree == models.DefaultDegree && edu.University == models.DefaultUniversity {
			continue
		}
		key := strings.ToLower(edu.Degree) + "|" + strings.ToLower(edu.University)
		if seen[key] {
			continue
		}
		seen[key] = true

		var b strings.Builder
		b.WriteString(edu.Degree)
		if edu.Years != "" {
			b.WriteString(" — ")
			b.WriteString(edu.Years)
		}
		b.WriteString("\n")
		b.WriteString(edu.University)
		if edu.Location != "" {
			b.WriteString(" | ")
			b.WriteString(edu.Location)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

func formatSkills(skills *models.SkillSet) string {
	var lines []string
	for _, cat := range skills.Categories() {
		if len(cat.Skills) == 0 {
			continue
		}
		lines = append(lines, "• "+cat.Label+": "+strings.Join(cat.Skills, ", "))
	}
	return strings.Join(lines, "\n")
}

func formatProjects(projects []models.Project) string {
	var blocks []string
	for _, proj := range projects {
		if proj.Title == "" {
			continue
		}
		var b strings.Builder
		b.WriteString(proj.Title)
		if proj.Description != models.DefaultProjectDescription {
			b.WriteString("\n• ")
			b.WriteString(proj.Description)
		}
		if proj.Contribution != models.DefaultProjectContribution {
			b.WriteString("\n• ")
			b.WriteString(proj.Contribution)
		}
		if proj.TechStack != models.DefaultProjectTechStack {
			b.WriteString("\n• Tech Stack: ")
			b.WriteString(proj.TechStack)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

func formatStringList(items []string) string {
	var lines []string
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}

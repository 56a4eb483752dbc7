package parsers

import (
	"strings"

	"resumelift/models"
	"resumelift/utils"
)

// ResumeParser turns raw resume text into a structured Resume. Individual
// extractors never fail; the orchestrator additionally recovers from any
// unexpected panic and degrades to a minimal valid record, so Parse never
// propagates an error to the caller.
type ResumeParser struct {
	logger *utils.Logger
}

// NewResumeParser creates a parser. The logger may be nil.
func NewResumeParser(logger *utils.Logger) *ResumeParser {
	return &ResumeParser{logger: logger}
}

// Parse extracts a structured Resume from raw text. The input is sanitized
// and clamped before any extractor runs; the caller is responsible for
// rejecting inputs shorter than MinResumeChars.
func (p *ResumeParser) Parse(rawText string) (resume *models.Resume) {
	full := SanitizeText(rawText, MaxResumeChars)

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("resume parse panicked, using minimal record", nil, map[string]interface{}{"panic": r})
			resume = minimalResume(full)
		}
	}()

	lower := strings.ToLower(full)
	lines := SplitLines(full)

	resume = models.DefaultResume()
	resume.Name = extractName(full, lower, lines)
	resume.Contact = extractContact(full, lower, lines)
	resume.Summary = extractSummary(full, lower, lines)
	resume.Experience = truncExperience(extractExperience(full, lower, lines))
	resume.Education = extractEducation(full, lower, lines)
	resume.Skills = extractSkills(full, lower, lines)
	resume.Achievements = extractAchievements(full, lower, lines)
	resume.Projects = extractProjects(full, lower, lines)
	resume.Certifications = extractCertifications(full, lower, lines)

	p.logger.Info("resume parsed", map[string]interface{}{
		"experience":     len(resume.Experience),
		"education":      len(resume.Education),
		"projects":       len(resume.Projects),
		"certifications": len(resume.Certifications),
		"name_found":     resume.Name != models.DefaultName,
	})

	return resume
}

func truncExperience(entries []models.Experience) []models.Experience {
	if entries == nil {
		return []models.Experience{}
	}
	if len(entries) > models.MaxExperience {
		entries = entries[:models.MaxExperience]
	}
	return entries
}

// minimalResume builds the smallest valid record from raw text: first
// plausible line as the name, leading substring as the summary.
func minimalResume(full string) *models.Resume {
	resume := models.DefaultResume()
	for _, line := range strings.Split(full, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && len(line) < 60 {
			resume.Name = strings.ToUpper(line)
			break
		}
	}
	if len(full) > 0 {
		resume.Summary = capText(full, 300)
	}
	return resume
}

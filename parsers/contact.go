package parsers

import (
	"strings"

	"resumelift/models"
)

// extractName returns the first of the initial 15 lines that looks like a
// personal name and is not contact info or a section header, upper-cased.
func extractName(full, lower string, lines []string) string {
	limit := 15
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		line := lines[i]
		if line == "" || len(line) > 60 {
			continue
		}
		if strings.Contains(line, "@") || phoneRegex.MatchString(line) {
			continue
		}
		if containsAny(strings.ToLower(line), sectionHeaderWords) {
			continue
		}
		if nameShapeRegex.MatchString(line) {
			return strings.ToUpper(line)
		}
	}
	return models.DefaultName
}

// extractContact pulls each contact field with an independent regex over the
// whole document. Fields do not depend on each other; the first match wins
// per field.
func extractContact(full, lower string, lines []string) models.Contact {
	contact := models.Contact{}

	if email := emailRegex.FindString(full); email != "" {
		contact.Email = email
	}
	if phone := phoneRegex.FindString(full); phone != "" {
		contact.Phone = strings.TrimSpace(phone)
	}
	if li := linkedinRegex.FindString(full); li != "" {
		contact.LinkedIn = li
	} else if m := linkedinLabel.FindStringSubmatch(full); m != nil {
		contact.LinkedIn = m[1]
	}
	if gh := githubRegex.FindString(full); gh != "" {
		contact.GitHub = gh
	}
	if m := portfolioLbl.FindStringSubmatch(full); m != nil {
		contact.Portfolio = m[1]
	} else if dom := bareDomain.FindString(lower); dom != "" && !isKnownHost(dom) &&
		!strings.Contains(strings.ToLower(contact.Email), dom) {
		contact.Portfolio = dom
	}

	return contact
}

// isKnownHost filters domains already claimed by other contact fields so the
// portfolio fallback does not re-capture them.
func isKnownHost(domain string) bool {
	return strings.Contains(domain, "linkedin.com") ||
		strings.Contains(domain, "github.com") ||
		strings.Contains(domain, "@")
}

package models

// JobProfile is the keyword profile extracted from a job description.
// All slices are deduplicated; an all-empty profile is valid and makes the
// optimizer a no-op.
type JobProfile struct {
	// Title is the exact role title captured from the posting, lowercase.
	// Empty when no title pattern matched, even if bare role-level words
	// ("engineer", "analyst") appear in RoleKeywords.
	Title string `json:"title,omitempty"`
	// Technologies keeps normalized canonical casing ("Power BI", "SQL").
	// Ordering matters: BI-related terms sort ahead of generic ones because
	// later stages truncate to the first N entries.
	Technologies []string `json:"technologies"`
	// Skills are lowercase methodology/soft-skill terms.
	Skills []string `json:"skills"`
	// Methodologies is the subset of Skills drawn from the methodology list.
	Methodologies []string `json:"methodologies"`
	// RoleKeywords are lowercase; when Title is set it is listed first,
	// followed by standalone role-level words.
	RoleKeywords []string `json:"roleKeywords"`
	ActionVerbs  []string `json:"actionVerbs"`
	// Requirements holds up to 10 requirement sentences.
	Requirements []string `json:"requirements"`
}

func EmptyJobProfile() *JobProfile {
	return &JobProfile{
		Technologies:  []string{},
		Skills:        []string{},
		Methodologies: []string{},
		RoleKeywords:  []string{},
		ActionVerbs:   []string{},
		Requirements:  []string{},
	}
}

// RoleTitle returns the extracted role title or "" when none was found.
func (p *JobProfile) RoleTitle() string {
	return p.Title
}

// IsEmpty reports whether the analyzer found nothing at all.
func (p *JobProfile) IsEmpty() bool {
	return len(p.Technologies) == 0 && len(p.Skills) == 0 &&
		len(p.RoleKeywords) == 0 && len(p.ActionVerbs) == 0 &&
		len(p.Requirements) == 0
}

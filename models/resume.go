package models

// Resume is the structured record produced by the parser and consumed by the
// optimizer and formatter. Every field carries a placeholder default instead
// of being left empty, so downstream code never checks for missing values.
type Resume struct {
	Name           string       `json:"name"`
	Contact        Contact      `json:"contact"`
	Summary        string       `json:"summary"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Skills         SkillSet     `json:"skills"`
	Achievements   []string     `json:"achievements"`
	Projects       []Project    `json:"projects"`
	Certifications []string     `json:"certifications"`
}

// Contact holds whatever contact fields were found in the raw text.
// Fields stay "" when absent; they are never validated beyond the regex match.
type Contact struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	GitHub    string `json:"github"`
}

type Experience struct {
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Bullets   []string `json:"bullets"`
}

type Education struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
	Years      string `json:"years"`
	Location   string `json:"location"`
}

// SkillSet buckets skills into five fixed categories. Category membership is
// decided once at extraction time by keyword-table lookup; the optimizer only
// reorders within a category and injects missing job-description terms.
type SkillSet struct {
	Programming []string `json:"programming"`
	Tools       []string `json:"tools"`
	Databases   []string `json:"databases"`
	Cloud       []string `json:"cloud"`
	Others      []string `json:"others"`
}

type Project struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Contribution string `json:"contribution"`
	TechStack    string `json:"techStack"`
}

// Placeholder defaults. Absence is always represented by one of these
// strings, never by a null or missing field.
const (
	DefaultName       = "YOUR NAME"
	DefaultTitle      = "Position"
	DefaultCompany    = "Company"
	DefaultStartDate  = "Start Date"
	DefaultEndDate    = "End Date"
	DefaultDegree     = "Degree"
	DefaultUniversity = "University"
	DefaultSummary    = "Experienced professional with a strong background in delivering results."

	DefaultProjectDescription  = "Project description not specified."
	DefaultProjectContribution = "Contributed to design and implementation."
	DefaultProjectTechStack    = "Not specified"
)

// Entry caps enforced by the parser.
const (
	MaxExperience     = 10
	MaxEducation      = 5
	MaxProjects       = 5
	MaxCertifications = 5
	MaxAchievements   = 10
)

// DefaultResume returns a fully-populated record with placeholder values and
// initialized (empty, non-nil) slices.
func DefaultResume() *Resume {
	return &Resume{
		Name:           DefaultName,
		Contact:        Contact{},
		Summary:        DefaultSummary,
		Experience:     []Experience{},
		Education:      []Education{},
		Skills:         DefaultSkillSet(),
		Achievements:   []string{},
		Projects:       []Project{},
		Certifications: []string{},
	}
}

func DefaultSkillSet() SkillSet {
	return SkillSet{
		Programming: []string{},
		Tools:       []string{},
		Databases:   []string{},
		Cloud:       []string{},
		Others:      []string{},
	}
}

func DefaultExperience() Experience {
	return Experience{
		Title:     DefaultTitle,
		Company:   DefaultCompany,
		StartDate: DefaultStartDate,
		EndDate:   DefaultEndDate,
		Bullets:   []string{},
	}
}

func DefaultEducation() Education {
	return Education{
		Degree:     DefaultDegree,
		University: DefaultUniversity,
	}
}

// Categories returns the skill categories in canonical display order along
// with their display labels.
func (s *SkillSet) Categories() []struct {
	Label  string
	Skills []string
} {
	return []struct {
		Label  string
		Skills []string
	}{
		{"Programming", s.Programming},
		{"Tools", s.Tools},
		{"Databases", s.Databases},
		{"Cloud", s.Cloud},
		{"Others", s.Others},
	}
}

// All returns every skill across categories, in category order.
func (s *SkillSet) All() []string {
	out := []string{}
	out = append(out, s.Programming...)
	out = append(out, s.Tools...)
	out = append(out, s.Databases...)
	out = append(out, s.Cloud...)
	out = append(out, s.Others...)
	return out
}

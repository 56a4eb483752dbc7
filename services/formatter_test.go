package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumelift/models"
	"resumelift/parsers"
)

func formatterResume() *models.Resume {
	r := models.DefaultResume()
	r.Name = "Jane Doe"
	r.Contact = models.Contact{
		Email:    "jane.doe@example.com",
		Phone:    "(555) 123-4567",
		LinkedIn: "linkedin.com/in/janedoe",
	}
	r.Summary = "Experienced data analyst building dashboards that drive decisions."
	r.Experience = []models.Experience{
		{
			Title:     "Senior Data Analyst",
			Company:   "Acme Corp",
			StartDate: "Jan 2020",
			EndDate:   "Present",
			Bullets:   []string{"Built Power BI dashboards", "Reduced load time by 25%"},
		},
		{
			Title:     "Data Analyst",
			Company:   "Initech",
			StartDate: "2017",
			EndDate:   "2019",
			Bullets:   []string{"Developed ETL pipelines"},
		},
	}
	r.Education = []models.Education{
		{Degree: "Bachelor of Science in Computer Science", University: "Stanford University", Years: "2013 - 2017"},
	}
	r.Skills = models.SkillSet{
		Programming: []string{"Python", "SQL"},
		Tools:       []string{"Power BI", "Tableau"},
	}
	return r
}

func TestFormatter_SectionOrder(t *testing.T) {
	f := NewFormatter()

	doc := f.Format(formatterResume())

	summaryIdx := strings.Index(doc, "PROFESSIONAL SUMMARY")
	expIdx := strings.Index(doc, "WORK EXPERIENCE")
	eduIdx := strings.Index(doc, "EDUCATION")
	skillsIdx := strings.Index(doc, "TECHNICAL SKILLS")

	assert.True(t, summaryIdx >= 0 && expIdx > summaryIdx && eduIdx > expIdx && skillsIdx > eduIdx,
		"sections out of order: %d %d %d %d", summaryIdx, expIdx, eduIdx, skillsIdx)
}

func TestFormatter_NameAndContact(t *testing.T) {
	f := NewFormatter()

	doc := f.Format(formatterResume())
	lines := strings.Split(doc, "\n")

	assert.Equal(t, "JANE DOE", lines[0])
	assert.Contains(t, lines[1], "jane.doe@example.com | (555) 123-4567 | LinkedIn")
	assert.Contains(t, lines[1], "||URLS:LinkedIn::https://linkedin.com/in/janedoe")
}

func TestFormatter_ExperienceShape(t *testing.T) {
	f := NewFormatter()

	doc := f.Format(formatterResume())

	assert.Contains(t, doc, "Senior Data Analyst — Jan 2020 – Present")
	assert.Contains(t, doc, "ACME CORP")
	assert.Contains(t, doc, "• Built Power BI dashboards")
}

func TestFormatter_SkipsPlaceholderEntries(t *testing.T) {
	f := NewFormatter()

	r := models.DefaultResume()
	r.Name = "John Smith"
	r.Experience = []models.Experience{models.DefaultExperience()}
	r.Education = []models.Education{models.DefaultEducation()}

	doc := f.Format(r)
	assert.NotContains(t, doc, "Position")
	assert.NotContains(t, doc, "WORK EXPERIENCE")
	assert.NotContains(t, doc, "EDUCATION")
}

func TestFormatter_DeduplicatesEducation(t *testing.T) {
	f := NewFormatter()

	r := formatterResume()
	r.Education = append(r.Education, r.Education[0])

	doc := f.Format(r)
	assert.Equal(t, 1, strings.Count(doc, "Stanford University"))
}

func TestFormatter_NoTripleBlankLines(t *testing.T) {
	f := NewFormatter()

	doc := f.Format(formatterResume())
	assert.NotContains(t, doc, "\n\n\n")
}

// A formatted document must survive re-extraction with the same cardinality.
func TestFormatter_RoundTrip(t *testing.T) {
	f := NewFormatter()
	parser := parsers.NewResumeParser(nil)

	original := formatterResume()
	doc := f.Format(original)
	reparsed := parser.Parse(doc)

	assert.Equal(t, "JANE DOE", reparsed.Name)
	assert.Equal(t, original.Contact.Email, reparsed.Contact.Email)
	assert.Equal(t, len(original.Experience), len(reparsed.Experience))
	assert.Equal(t, original.Experience[0].Title, reparsed.Experience[0].Title)
}

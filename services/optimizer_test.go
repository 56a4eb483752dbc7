package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumelift/models"
)

func testProfile() *models.JobProfile {
	return &models.JobProfile{
		Title:        "data analyst",
		Technologies: []string{"Power BI", "SQL", "Python"},
		Skills:       []string{"agile"},
		RoleKeywords: []string{"data analyst"},
		ActionVerbs:  []string{"developed"},
		Requirements: []string{"Must have 3+ years working with dashboards."},
	}
}

func testResume() *models.Resume {
	r := models.DefaultResume()
	r.Name = "JANE DOE"
	r.Summary = "Data professional with 7+ years of experience building reports."
	r.Experience = []models.Experience{
		{
			Title:     "Senior Data Analyst",
			Company:   "Acme Corp",
			StartDate: "Jan 2020",
			EndDate:   "Present",
			Bullets: []string{
				"Reduced report generation time by 25% through query tuning",
				"Built powerbi dashboards for the finance team",
			},
		},
	}
	r.Skills = models.SkillSet{
		Programming: []string{"Java"},
		Tools:       []string{"Excel"},
		Databases:   []string{},
		Cloud:       []string{},
		Others:      []string{},
	}
	return r
}

func TestOptimizer_PreservesFacts(t *testing.T) {
	opt := NewOptimizer(nil)

	result := opt.Optimize(testResume(), testProfile(), "Power BI dashboards required")

	exp := result.Experience[0]
	assert.Equal(t, "Acme Corp", exp.Company)
	assert.Equal(t, "Jan 2020", exp.StartDate)
	assert.Equal(t, "Present", exp.EndDate)

	joined := strings.Join(exp.Bullets, " ")
	assert.Contains(t, joined, "25%", "metrics must survive optimization")
}

func TestOptimizer_PreservesFactsWithShortTechs(t *testing.T) {
	opt := NewOptimizer(nil)

	r := testResume()
	r.Experience[0].Bullets = []string{
		"Increased sales by 25% at Acme Corp",
		"Led ongoing migration of category services",
		"Rewrote statistical models in r",
	}
	profile := &models.JobProfile{Technologies: []string{"R", "Go"}}
	result := opt.Optimize(r, profile, "")

	bullets := result.Experience[0].Bullets
	assert.Equal(t, "Increased sales by 25% at Acme Corp", bullets[0],
		"a one-letter technology must not recase letters inside other words")
	assert.Equal(t, "Led ongoing migration of category services", bullets[1])
	assert.Contains(t, bullets[2], "models in R",
		"standalone occurrences still get canonical casing")
}

func TestOptimizer_SynonymSubstitution(t *testing.T) {
	opt := NewOptimizer(nil)

	result := opt.Optimize(testResume(), testProfile(), "")
	assert.Contains(t, result.Experience[0].Bullets[1], "Power BI",
		"informal 'powerbi' should become the canonical spelling")
}

func TestOptimizer_EmptyProfileIsNoOp(t *testing.T) {
	opt := NewOptimizer(nil)

	original := testResume()
	result := opt.Optimize(original, models.EmptyJobProfile(), "")

	assert.Equal(t, original.Summary, result.Summary)
	assert.Equal(t, original.Experience, result.Experience)
	assert.Equal(t, original.Skills, result.Skills)
}

func TestOptimizer_SummaryLeadsWithRole(t *testing.T) {
	opt := NewOptimizer(nil)

	result := opt.Optimize(testResume(), testProfile(), "")
	assert.True(t, strings.HasPrefix(result.Summary, "Data Analyst with 7+ years of experience"),
		"got summary: %s", result.Summary)
	assert.LessOrEqual(t, len([]rune(result.Summary)), 500)
}

func TestOptimizer_SummaryIgnoresBareRoleWords(t *testing.T) {
	opt := NewOptimizer(nil)

	// Role-level words collected without an exact title must not open the
	// summary as if they were the posting's title.
	profile := &models.JobProfile{
		Technologies: []string{"SQL"},
		RoleKeywords: []string{"engineer"},
	}
	result := opt.Optimize(testResume(), profile, "")

	assert.False(t, strings.HasPrefix(result.Summary, "Engineer"),
		"got summary: %s", result.Summary)
	assert.True(t, strings.HasPrefix(result.Summary, "7+ years of experience"),
		"got summary: %s", result.Summary)
}

func TestOptimizer_SummaryCapped(t *testing.T) {
	opt := NewOptimizer(nil)

	r := testResume()
	r.Summary = strings.Repeat("Building dashboards and reports for stakeholders. ", 20)
	result := opt.Optimize(r, testProfile(), "")
	assert.LessOrEqual(t, len([]rune(result.Summary)), 500)
}

func TestOptimizer_MustHaveTermsInjected(t *testing.T) {
	opt := NewOptimizer(nil)

	r := testResume()
	r.Summary = "Seasoned professional."
	profile := &models.JobProfile{Technologies: []string{"SQL"}}
	result := opt.Optimize(r, profile, "Experience with data modeling is essential.")

	assert.Contains(t, strings.ToLower(result.Summary), "data modeling")
}

func TestOptimizer_SkillInjectionByCategory(t *testing.T) {
	opt := NewOptimizer(nil)

	r := testResume()
	profile := &models.JobProfile{Technologies: []string{"Python", "Snowflake", "Power BI"}}
	result := opt.Optimize(r, profile, "")

	assert.Contains(t, result.Skills.Programming, "Python")
	assert.Contains(t, result.Skills.Databases, "Snowflake")
	assert.Contains(t, result.Skills.Tools, "Power BI")
	// Existing skills are kept.
	assert.Contains(t, result.Skills.Programming, "Java")
	assert.Contains(t, result.Skills.Tools, "Excel")
}

func TestCategoryForTech(t *testing.T) {
	assert.Equal(t, "programming", categoryForTech("Python"))
	assert.Equal(t, "databases", categoryForTech("postgres"))
	assert.Equal(t, "cloud", categoryForTech("AWS"))
	assert.Equal(t, "tools", categoryForTech("powerbi"))
	assert.Equal(t, "others", categoryForTech("Some Unheard Of Thing"))
}

func TestJoinNatural(t *testing.T) {
	assert.Equal(t, "", joinNatural(nil))
	assert.Equal(t, "SQL", joinNatural([]string{"SQL"}))
	assert.Equal(t, "SQL and Python", joinNatural([]string{"SQL", "Python"}))
	assert.Equal(t, "SQL, Python and Power BI", joinNatural([]string{"SQL", "Python", "Power BI"}))
}

func TestReplaceFoldWord(t *testing.T) {
	assert.Equal(t, "JavaScript and json", replaceFoldWord("js and json", "js", "JavaScript"),
		"whole-word only: 'js' inside 'json' must not match")
}

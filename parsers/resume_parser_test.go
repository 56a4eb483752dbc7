package parsers

import (
	"strings"
	"testing"

	"resumelift/models"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567 | linkedin.com/in/janedoe | github.com/janedoe

PROFESSIONAL SUMMARY
Experienced data analyst with 5+ years building dashboards and reports that drive business decisions.

WORK EXPERIENCE

Senior Data Analyst
Acme Corp
Jan 2020 - Present
• Built Power BI dashboards tracking 40+ KPIs across departments
• Reduced report generation time by 25% through SQL query optimization

Data Analyst
Initech
2017 - 2019
• Developed ETL pipelines ingesting data from 12 sources

EDUCATION
Bachelor of Science in Computer Science
Stanford University
2013 - 2017

TECHNICAL SKILLS
Python, SQL, Power BI, Tableau, AWS, Excel
`

func TestResumeParser_Basic(t *testing.T) {
	parser := NewResumeParser(nil)

	result := parser.Parse(sampleResume)

	if result.Name != "JANE DOE" {
		t.Errorf("Expected name 'JANE DOE', got '%s'", result.Name)
	}
	if result.Contact.Email != "jane.doe@example.com" {
		t.Errorf("Expected email 'jane.doe@example.com', got '%s'", result.Contact.Email)
	}
	if result.Contact.Phone != "(555) 123-4567" {
		t.Errorf("Expected phone '(555) 123-4567', got '%s'", result.Contact.Phone)
	}
	if result.Contact.LinkedIn != "linkedin.com/in/janedoe" {
		t.Errorf("Expected LinkedIn 'linkedin.com/in/janedoe', got '%s'", result.Contact.LinkedIn)
	}
	if result.Contact.GitHub != "github.com/janedoe" {
		t.Errorf("Expected GitHub 'github.com/janedoe', got '%s'", result.Contact.GitHub)
	}
	if result.Contact.Portfolio != "" {
		t.Errorf("Email domain should not leak into portfolio, got '%s'", result.Contact.Portfolio)
	}

	if result.Summary == models.DefaultSummary || result.Summary == "" {
		t.Errorf("Expected extracted summary, got '%s'", result.Summary)
	}

	if len(result.Experience) != 2 {
		t.Fatalf("Expected 2 experience entries, got %d", len(result.Experience))
	}
	exp := result.Experience[0]
	if !strings.Contains(exp.Title, "Senior Data Analyst") {
		t.Errorf("Expected title to contain 'Senior Data Analyst', got '%s'", exp.Title)
	}
	if !strings.Contains(exp.Company, "Acme Corp") {
		t.Errorf("Expected company to contain 'Acme Corp', got '%s'", exp.Company)
	}
	if exp.StartDate != "Jan 2020" || exp.EndDate != "Present" {
		t.Errorf("Expected dates 'Jan 2020'/'Present', got '%s'/'%s'", exp.StartDate, exp.EndDate)
	}
	if len(exp.Bullets) != 2 {
		t.Errorf("Expected 2 bullets, got %d", len(exp.Bullets))
	}

	if len(result.Education) == 0 {
		t.Fatal("Should have extracted education entries")
	}
	edu := result.Education[0]
	if !strings.Contains(strings.ToLower(edu.Degree), "bachelor") {
		t.Errorf("Expected degree to contain 'bachelor', got '%s'", edu.Degree)
	}
	if !strings.Contains(edu.University, "Stanford") {
		t.Errorf("Expected university to contain 'Stanford', got '%s'", edu.University)
	}

	if len(result.Skills.All()) == 0 {
		t.Error("Should have extracted skills")
	}
}

func TestResumeParser_EducationNotInExperience(t *testing.T) {
	parser := NewResumeParser(nil)

	result := parser.Parse(sampleResume)
	for _, exp := range result.Experience {
		combined := strings.ToLower(exp.Title + " " + exp.Company)
		if strings.Contains(combined, "stanford") || strings.Contains(combined, "bachelor") {
			t.Errorf("Education content leaked into experience: %+v", exp)
		}
	}
}

func TestResumeParser_SkillCanonicalCasing(t *testing.T) {
	parser := NewResumeParser(nil)

	result := parser.Parse(sampleResume)
	all := result.Skills.All()

	want := []string{"Python", "SQL", "Power BI", "Tableau", "AWS", "Excel"}
	for _, skill := range want {
		found := false
		for _, s := range all {
			if s == skill {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected skill '%s' in %v", skill, all)
		}
	}
}

// Garbage input must still produce a complete placeholder-backed record.
func TestResumeParser_NeverFailsOnGarbage(t *testing.T) {
	parser := NewResumeParser(nil)

	inputs := []string{
		"",
		"   \n\n\t  ",
		strings.Repeat("\x00\x01\x02", 100),
		strings.Repeat("a", 60000),
		"%PDF-1.4 \xde\xad\xbe\xef binary garbage stream",
	}

	for _, input := range inputs {
		result := parser.Parse(input)
		if result == nil {
			t.Fatal("Parse returned nil")
		}
		if result.Name == "" {
			t.Error("Name should never be empty")
		}
		if result.Summary == "" {
			t.Error("Summary should never be empty")
		}
		if result.Experience == nil || result.Education == nil {
			t.Error("Slices should never be nil")
		}
	}
}

func TestResumeParser_BoundedOutput(t *testing.T) {
	parser := NewResumeParser(nil)

	var b strings.Builder
	b.WriteString("John Smith\njohn@example.com\n\nWORK EXPERIENCE\n\n")
	for i := 0; i < 40; i++ {
		b.WriteString("Software Engineer\nBigCo\n2010 - 2012\n• Shipped features\n\n")
	}

	result := parser.Parse(b.String())
	if len(result.Experience) > models.MaxExperience {
		t.Errorf("Experience entries %d exceed cap %d", len(result.Experience), models.MaxExperience)
	}
}

func TestResumeParser_NoSections(t *testing.T) {
	parser := NewResumeParser(nil)

	input := "Alex Chen\nalex@mail.org\nSenior Software Engineer at Globex\nBuilt distributed systems and APIs for millions of users from 2018 to 2022."

	result := parser.Parse(input)
	if result.Name != "ALEX CHEN" {
		t.Errorf("Expected 'ALEX CHEN', got '%s'", result.Name)
	}
	if result.Contact.Email != "alex@mail.org" {
		t.Errorf("Expected email 'alex@mail.org', got '%s'", result.Contact.Email)
	}
	// The role-keyword fallback should find at least one entry.
	if len(result.Experience) == 0 {
		t.Error("Fallback scan should have found an experience entry")
	}
}

func TestSanitizeText(t *testing.T) {
	if got := SanitizeText("  hello  ", 100); got != "hello" {
		t.Errorf("Expected 'hello', got '%s'", got)
	}

	long := strings.Repeat("x", 200)
	if got := SanitizeText(long, 50); len([]rune(got)) != 50 {
		t.Errorf("Expected 50 runes, got %d", len([]rune(got)))
	}

	// Multi-byte input must be clamped on rune boundaries.
	unicode := strings.Repeat("é", 100)
	got := SanitizeText(unicode, 10)
	if len([]rune(got)) != 10 {
		t.Errorf("Expected 10 runes, got %d", len([]rune(got)))
	}
}

func TestSplitLines_Cap(t *testing.T) {
	input := strings.Repeat("line\n", 2000)
	lines := SplitLines(input)
	if len(lines) > MaxLines {
		t.Errorf("Expected at most %d lines, got %d", MaxLines, len(lines))
	}
}

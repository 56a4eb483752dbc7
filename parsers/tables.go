package parsers

import (
	"regexp"
	"strings"
)

// Section-title keywords per field, in declared priority order. Located by
// case-insensitive substring search; the first hit wins.
var (
	summaryKeywords     = []string{"professional summary", "summary", "objective", "profile", "about me"}
	experienceKeywords  = []string{"work experience", "professional experience", "experience", "employment", "work history"}
	educationKeywords   = []string{"education", "academic", "qualification"}
	skillsKeywords      = []string{"technical skills", "skills"}
	achievementKeywords = []string{"achievement", "accomplishment", "award", "recognition"}
	certKeywords        = []string{"certification", "certified", "certificate", "cert"}
)

// sectionHeaderWords flags lines that are themselves section headers, so the
// name and summary extractors can skip them.
var sectionHeaderWords = []string{
	"summary", "objective", "profile", "experience", "employment",
	"education", "skills", "projects", "achievement", "certification",
	"award", "contact", "references",
}

// roleWords signal that a line or block describes a job rather than a degree.
var roleWords = []string{
	"developer", "engineer", "analyst", "manager", "consultant", "architect",
	"designer", "specialist", "administrator", "scientist", "lead", "intern",
	"director", "coordinator",
}

// educationSignals reject a block from the experience section unless a role
// word is also present.
var educationSignals = []string{
	"college", "university", "degree", "bachelor", "master", "phd", "gpa", "%",
}

// Skill category tables. Category assignment is table membership only; the
// values are the canonical display casings.
var skillCategories = map[string][]string{
	"programming": {
		"Python", "Java", "JavaScript", "TypeScript", "Go", "C++", "C#", "C",
		"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "R", "MATLAB",
		"Perl", "DAX", "VBA",
	},
	"tools": {
		"Power BI", "Tableau", "Excel", "Git", "Docker", "Kubernetes",
		"Jenkins", "Jira", "Confluence", "Figma", "Postman", "Power Query",
		"Power Apps", "SSIS", "SSRS", "Airflow", "Terraform", "Grafana",
	},
	"databases": {
		"SQL", "MySQL", "PostgreSQL", "MongoDB", "Oracle", "SQL Server",
		"SQLite", "Redis", "Cassandra", "DynamoDB", "Snowflake", "BigQuery",
	},
	"cloud": {
		"AWS", "Azure", "GCP", "Google Cloud", "Heroku", "DigitalOcean",
		"Lambda", "S3", "EC2", "Azure Data Factory", "Databricks",
	},
	"others": {
		"REST API", "GraphQL", "Agile", "Scrum", "ETL", "Data Modeling",
		"Machine Learning", "Data Analysis", "Business Intelligence",
		"Microservices", "CI/CD", "Linux", "React", "Angular", "Vue",
		"Node.js", "Django", "Flask", "Spring",
	},
}

// skillCategoryOrder fixes iteration order over skillCategories so results
// are deterministic.
var skillCategoryOrder = []string{"programming", "tools", "databases", "cloud", "others"}

var (
	bulletMarkerRegex = regexp.MustCompile(`^(?:[•\-*]|\d+\.)\s+`)

	emailRegex    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRegex    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRegex = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9_-]+`)
	linkedinLabel = regexp.MustCompile(`(?i)linkedin\s*:\s*(\S+)`)
	githubRegex   = regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9_-]+`)
	portfolioLbl  = regexp.MustCompile(`(?i)(?:portfolio|website)\s*:\s*(\S+)`)
	bareDomain    = regexp.MustCompile(`\b[a-z0-9-]+\.(?:dev|io|me|net|org|com)/?[A-Za-z0-9./_-]*`)

	// nameShapeRegex matches 2-5 capitalized tokens, optionally hyphenated or
	// with middle initials ("Mary-Jane K. Watson").
	nameShapeRegex = regexp.MustCompile(`^[A-Z][a-zA-Z'.]*(?:-[A-Z][a-zA-Z'.]*)?(?:\s+[A-Z][a-zA-Z'.]*(?:-[A-Z][a-zA-Z'.]*)?){1,4}$`)

	// dateRangeRegex captures "<start> - <end|Present>" with hyphen, en dash
	// or em dash.
	dateRangeRegex = regexp.MustCompile(`(?i)([A-Za-z]{3,9}\.?\s*\d{4}|\d{4})\s*[-–—]\s*([A-Za-z]{3,9}\.?\s*\d{4}|\d{4}|present|current)`)
	yearRegex      = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	degreeRegex = regexp.MustCompile(`(?i)\b(b\.?\s?tech|m\.?\s?tech|b\.?\s?sc?|m\.?\s?sc?|b\.?\s?a|m\.?\s?a|b\.?\s?e|m\.?\s?e|mba|phd|ph\.d|bachelor(?:'?s)?|master(?:'?s)?|diploma|associate|doctorate)\b`)
	schoolRegex = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy)\b`)
	// locationRegex finds a trailing capitalized word sequence, e.g.
	// "Hyderabad, India" or "New York".
	locationRegex = regexp.MustCompile(`([A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s*[A-Z][a-zA-Z]+)`)

	quantifiedRegex = regexp.MustCompile(`(?i)(?:improved|increased|reduced|achieved|delivered|saved|grew|boosted|optimized|cut)[^.\n]*?\d+\s*%[^.\n]*`)
	achievementHint = regexp.MustCompile(`\d+\s*[%+]`)

	contributionRegex = regexp.MustCompile(`(?i)\b(developed|built|created|designed)\b`)
	techStackRegex    = regexp.MustCompile(`(?i)\b(tech|stack|technologies|tools)\b`)
	certWordRegex     = regexp.MustCompile(`(?i)\b(certified|certification|certificate|aws|azure|google|scrum|pmp|cisco|oracle|comptia)\b`)
)

// containsAny reports whether lower contains any of the given lowercase
// keywords.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

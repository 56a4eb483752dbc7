package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// canonicalCasings forces the known casing of high-value terms during
// deduplication. Keys are lowercase with spaces/hyphens removed so that
// "POWERBI", "power-bi" and "Power BI" all collapse to one entry.
var canonicalCasings = map[string]string{
	"powerbi":              "Power BI",
	"powerquery":           "Power Query",
	"powerapps":            "Power Apps",
	"sql":                  "SQL",
	"mysql":                "MySQL",
	"postgresql":           "PostgreSQL",
	"postgres":             "PostgreSQL",
	"golang":               "Go",
	"sqlserver":            "SQL Server",
	"mongodb":              "MongoDB",
	"businessintelligence": "Business Intelligence",
	"javascript":           "JavaScript",
	"typescript":           "TypeScript",
	"nodejs":               "Node.js",
	"node.js":              "Node.js",
	"reactjs":              "React",
	"react":                "React",
	"azure":                "Azure",
	"aws":                  "AWS",
	"gcp":                  "GCP",
	"dax":                  "DAX",
	"etl":                  "ETL",
	"restapi":              "REST API",
	"restapis":             "REST API",
	"cicd":                 "CI/CD",
	"ci/cd":                "CI/CD",
	"tableau":              "Tableau",
	"excel":                "Excel",
	"python":               "Python",
	"datamodeling":         "Data Modeling",
	"machinelearning":      "Machine Learning",
	"graphql":              "GraphQL",
	"kubernetes":           "Kubernetes",
	"docker":               "Docker",
}

// biPriorityTerms sort ahead of everything else inside a technology list,
// since downstream stages truncate to the first N entries.
var biPriorityTerms = map[string]bool{
	"Power BI":              true,
	"Business Intelligence": true,
	"Power Query":           true,
	"Power Apps":            true,
	"DAX":                   true,
	"Tableau":               true,
	"SQL":                   true,
	"Data Modeling":         true,
	"ETL":                   true,
}

// technologySynonyms maps informal spellings found in resume bullets to the
// canonical technology they refer to.
var technologySynonyms = map[string]string{
	"powerbi":    "Power BI",
	"power-bi":   "Power BI",
	"bi tools":   "Power BI",
	"bi tool":    "Power BI",
	"js":         "JavaScript",
	"ecmascript": "JavaScript",
	"ts":         "TypeScript",
	"postgres":   "PostgreSQL",
	"k8s":        "Kubernetes",
	"ms excel":   "Excel",
	"nodejs":     "Node.js",
	"node":       "Node.js",
	"golang":     "Go",
}

// relatedConcepts maps a canonical technology to concept words that suggest
// a bullet is about it even when it never names the technology.
var relatedConcepts = map[string][]string{
	"Power BI":              {"dashboard", "report", "visualization", "kpi"},
	"SQL":                   {"query", "queries", "database", "stored procedure"},
	"ETL":                   {"data pipeline", "data integration", "ingestion"},
	"Data Modeling":         {"schema", "data model", "star schema"},
	"Business Intelligence": {"analytics", "insights", "metrics"},
	"Azure":                 {"cloud migration", "data factory"},
	"Docker":                {"container", "containerized"},
	"Kubernetes":            {"orchestration", "cluster"},
}

// mustHaveTerms are force-surfaced in the optimized summary when the JD
// mentions them, as short "Proficient in X." clauses.
var mustHaveTerms = []string{
	"power bi", "business intelligence", "data modeling", "sql",
	"dashboards", "reports",
}

// weakVerbs get replaced by the job description's strongest action verb in
// short bullets.
var weakVerbs = []string{"made", "did", "helped", "assisted", "participated"}

// strongVerbs is the fixed vocabulary the analyzer checks the JD against.
var strongVerbs = []string{
	"developed", "designed", "implemented", "delivered", "led", "built",
	"optimized", "automated", "managed", "architected", "analyzed",
	"migrated", "streamlined", "launched", "improved", "transformed",
}

// methodologyTerms is the subset of skill terms counted as methodologies.
var methodologyTerms = []string{
	"agile", "scrum", "kanban", "waterfall", "tdd", "bdd", "devops",
	"ci/cd", "code review", "pair programming", "testing",
}

// techCategories places a canonical technology into the skill bucket it is
// injected into when the resume lacks it. Anything unlisted lands in others.
var techCategories = map[string]string{
	"Python":     "programming",
	"JavaScript": "programming",
	"TypeScript": "programming",
	"Java":       "programming",
	"Go":         "programming",
	"C#":         "programming",
	"C++":        "programming",
	"SQL":        "programming",
	"DAX":        "programming",
	"R":          "programming",
	"Scala":      "programming",

	"Power BI":    "tools",
	"Power Query": "tools",
	"Power Apps":  "tools",
	"Tableau":     "tools",
	"Excel":       "tools",
	"Git":         "tools",
	"Jira":        "tools",
	"Jenkins":     "tools",
	"Airflow":     "tools",

	"PostgreSQL":    "databases",
	"MySQL":         "databases",
	"SQL Server":    "databases",
	"MongoDB":       "databases",
	"Redis":         "databases",
	"Elasticsearch": "databases",
	"Snowflake":     "databases",

	"AWS":        "cloud",
	"Azure":      "cloud",
	"GCP":        "cloud",
	"Docker":     "cloud",
	"Kubernetes": "cloud",
	"Terraform":  "cloud",
}

// categoryForTech resolves the bucket for a technology name, matching on its
// canonical form so synonym spellings land in the same place.
func categoryForTech(tech string) string {
	if category, ok := techCategories[canonicalTerm(tech)]; ok {
		return category
	}
	return "others"
}

var titleCaser = cases.Title(language.English)

// canonicalTerm returns the forced casing for a known high-value term, or a
// title-cased version of the input otherwise.
func canonicalTerm(term string) string {
	key := strings.ToLower(strings.TrimSpace(term))
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "-", "")
	if canonical, ok := canonicalCasings[key]; ok {
		return canonical
	}
	return titleCaser.String(strings.TrimSpace(term))
}

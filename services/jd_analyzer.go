package services

import (
	"regexp"
	"sort"
	"strings"

	"resumelift/models"
	"resumelift/parsers"
	"resumelift/utils"
)

// JDAnalyzer scans a job description with curated pattern sets and produces
// a keyword profile. An all-empty profile is a valid result, not an error.
type JDAnalyzer struct {
	logger *utils.Logger
}

func NewJDAnalyzer(logger *utils.Logger) *JDAnalyzer {
	return &JDAnalyzer{logger: logger}
}

// roleTitleRegexes are tried in order; the first capture wins.
var roleTitleRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:seeking|looking for|hiring)\s+(?:an?\s+)?([A-Za-z][A-Za-z /&+-]{2,50}?(?:developer|engineer|analyst|manager|consultant|architect|designer|scientist|specialist|administrator|lead))\b`),
	regexp.MustCompile(`(?i)(?:position|role|title)\s*[:\-]?\s*([A-Za-z][A-Za-z /&+-]{2,50}?(?:developer|engineer|analyst|manager|consultant|architect|designer|scientist|specialist|administrator|lead))\b`),
	regexp.MustCompile(`(?m)^([A-Z][A-Za-z /&+-]{2,50}?(?:Developer|Engineer|Analyst|Manager|Consultant|Architect|Designer|Scientist|Specialist|Administrator|Lead))\s*$`),
}

// technologyRegexes are category-specific pattern sets applied globally over
// the job description. Matches are later deduplicated and canonicalized.
var technologyRegexes = []*regexp.Regexp{
	// BI tools
	regexp.MustCompile(`(?i)\b(power\s*-?\s*bi|tableau|qlik(?:view| sense)?|looker|ssrs|ssis|power query|power apps|dax)\b`),
	// data / analytics
	regexp.MustCompile(`(?i)\b(business intelligence|data model(?:ing|ling)?|data warehous\w*|etl|data analysis|data analytics|reporting|dashboards?)\b`),
	// databases
	regexp.MustCompile(`(?i)\b(sql server|postgresql|postgres|mysql|mongodb|oracle|sqlite|redis|snowflake|bigquery|sql)\b`),
	// cloud / Azure
	regexp.MustCompile(`(?i)\b(azure(?: data factory| synapse| devops)?|aws|amazon web services|gcp|google cloud|databricks|lambda|s3)\b`),
	// programming languages
	regexp.MustCompile(`(?i)\b(python|java|javascript|typescript|c\+\+|c#|golang|ruby|php|scala|kotlin|r)\b`),
	// frontend
	regexp.MustCompile(`(?i)\b(react(?:\.?js)?|angular|vue(?:\.?js)?|html5?|css3?|next\.?js|tailwind)\b`),
	// devops
	regexp.MustCompile(`(?i)\b(docker|kubernetes|k8s|jenkins|terraform|ansible|ci/cd|git(?:hub|lab)?)\b`),
	// APIs
	regexp.MustCompile(`(?i)\b(rest(?:ful)? apis?|graphql|grpc|microservices|soap)\b`),
	// AI / ML
	regexp.MustCompile(`(?i)\b(machine learning|deep learning|tensorflow|pytorch|nlp|computer vision|llms?)\b`),
	// blockchain
	regexp.MustCompile(`(?i)\b(blockchain|solidity|ethereum|smart contracts?|web3)\b`),
}

// skillTerms are methodology/soft-skill keywords collected into the profile's
// lowercase skills list.
var skillTerms = []string{
	"agile", "scrum", "kanban", "waterfall", "tdd", "bdd", "devops",
	"ci/cd", "code review", "pair programming", "testing", "leadership",
	"communication", "collaboration", "problem solving", "mentoring",
	"stakeholder management", "documentation",
}

var (
	roleLevelWordRegex = regexp.MustCompile(`(?i)\b(developer|engineer|analyst|manager|consultant|architect|designer|scientist|specialist|administrator)\b`)
	requirementRegex   = regexp.MustCompile(`(?i)\b(?:must|required|requires?|should|needs?|essential)\b[^.!?\n]*[.!?]`)
	leadingArticles    = regexp.MustCompile(`(?i)^(?:an?|the)\s+`)
)

// Analyze produces a JobProfile from raw job-description text. The input is
// clamped before any pattern runs.
func (a *JDAnalyzer) Analyze(jobDescription string) *models.JobProfile {
	text := parsers.SanitizeText(jobDescription, parsers.MaxJobDescChars)
	lower := strings.ToLower(text)
	profile := models.EmptyJobProfile()

	roleTitle := extractRoleTitle(text)
	if roleTitle != "" {
		profile.Title = strings.ToLower(roleTitle)
		profile.RoleKeywords = append(profile.RoleKeywords, profile.Title)
	}
	for _, m := range roleLevelWordRegex.FindAllString(lower, -1) {
		profile.RoleKeywords = appendUnique(profile.RoleKeywords, strings.ToLower(m))
	}

	profile.Technologies = collectTechnologies(text)

	for _, term := range skillTerms {
		if strings.Contains(lower, term) {
			profile.Skills = appendUnique(profile.Skills, term)
		}
	}
	for _, term := range methodologyTerms {
		for _, s := range profile.Skills {
			if s == term {
				profile.Methodologies = appendUnique(profile.Methodologies, term)
			}
		}
	}

	for _, verb := range strongVerbs {
		if strings.Contains(lower, verb) {
			profile.ActionVerbs = append(profile.ActionVerbs, verb)
		}
	}

	for _, sentence := range requirementRegex.FindAllString(text, -1) {
		if len(profile.Requirements) >= 10 {
			break
		}
		profile.Requirements = append(profile.Requirements, strings.TrimSpace(sentence))
	}

	a.logger.Info("job description analyzed", map[string]interface{}{
		"technologies": len(profile.Technologies),
		"skills":       len(profile.Skills),
		"role_title":   roleTitle,
		"requirements": len(profile.Requirements),
	})

	return profile
}

// extractRoleTitle tries the ordered role-title patterns and strips leading
// articles from the first capture.
func extractRoleTitle(text string) string {
	for _, re := range roleTitleRegexes {
		if m := re.FindStringSubmatch(text); m != nil {
			title := strings.TrimSpace(m[1])
			title = leadingArticles.ReplaceAllString(title, "")
			return strings.TrimSpace(title)
		}
	}
	return ""
}

// collectTechnologies runs every category regex, deduplicates via the
// canonical-casing table, and floats BI-related terms to the front.
func collectTechnologies(text string) []string {
	seen := map[string]bool{}
	var techs []string
	for _, re := range technologyRegexes {
		for _, m := range re.FindAllString(text, -1) {
			canonical := canonicalTerm(m)
			key := strings.ToLower(canonical)
			if seen[key] {
				continue
			}
			seen[key] = true
			techs = append(techs, canonical)
		}
	}

	// Stable partition: BI terms first, original order otherwise.
	sort.SliceStable(techs, func(i, j int) bool {
		return biPriorityTerms[techs[i]] && !biPriorityTerms[techs[j]]
	})

	if techs == nil {
		techs = []string{}
	}
	return techs
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}

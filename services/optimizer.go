package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"resumelift/models"
	"resumelift/utils"
)

const (
	summaryCharCap    = 500
	bulletAppendCap   = 200
	weakVerbBulletCap = 120
	techStackCharCap  = 200
	maxSummaryTechs   = 5
)

// Optimizer rewrites resume fields to maximize lexical overlap with a job
// profile. It only relabels terminology and reorders content; factual fields
// (names, companies, dates, metrics) are never modified and no numbers are
// ever fabricated.
type Optimizer struct {
	logger *utils.Logger
}

func NewOptimizer(logger *utils.Logger) *Optimizer {
	return &Optimizer{logger: logger}
}

var yearsClauseRegex = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*years?(?:\s+of)?\s+experience`)

// Optimize returns a new Resume with rewritten summary, bullets, skills and
// free-text fields. An empty profile makes this a near no-op.
func (o *Optimizer) Optimize(resume *models.Resume, profile *models.JobProfile, jobDescription string) *models.Resume {
	out := *resume
	if profile == nil || profile.IsEmpty() {
		return &out
	}

	out.Summary = o.optimizeSummary(resume.Summary, profile, jobDescription)

	out.Experience = make([]models.Experience, len(resume.Experience))
	for i, exp := range resume.Experience {
		opt := exp
		opt.Bullets = make([]string, len(exp.Bullets))
		for j, bullet := range exp.Bullets {
			opt.Bullets[j] = o.optimizeBullet(bullet, profile)
		}
		out.Experience[i] = opt
	}

	out.Skills = optimizeSkills(resume.Skills, profile)

	out.Achievements = make([]string, len(resume.Achievements))
	for i, a := range resume.Achievements {
		out.Achievements[i] = capWithEllipsis(substituteTerms(a, profile), summaryCharCap)
	}

	out.Projects = make([]models.Project, len(resume.Projects))
	for i, p := range resume.Projects {
		opt := p
		opt.Description = capWithEllipsis(substituteTerms(p.Description, profile), summaryCharCap)
		opt.Contribution = capWithEllipsis(substituteTerms(p.Contribution, profile), summaryCharCap)
		opt.TechStack = optimizeTechStack(p.TechStack, profile)
		out.Projects[i] = opt
	}

	o.logger.Info("resume optimized", map[string]interface{}{
		"technologies": len(profile.Technologies),
		"role_title":   profile.RoleTitle(),
	})

	return &out
}

// optimizeSummary rebuilds the summary around the JD vocabulary: role title,
// years-of-experience clause, top technologies, one responsibility sentence,
// then the substituted remainder of the original, then forced must-have
// clauses. Capped at 500 chars.
func (o *Optimizer) optimizeSummary(original string, profile *models.JobProfile, jobDescription string) string {
	var parts []string

	opening := ""
	if title := profile.RoleTitle(); title != "" {
		opening = titleCaser.String(title)
	}
	if m := yearsClauseRegex.FindStringSubmatch(original); m != nil {
		clause := fmt.Sprintf("%s+ years of experience", m[1])
		if opening != "" {
			opening += " with " + clause
		} else {
			opening = clause
		}
	}
	if opening != "" {
		parts = append(parts, opening+".")
	}

	if len(profile.Technologies) > 0 {
		top := profile.Technologies
		if len(top) > maxSummaryTechs {
			top = top[:maxSummaryTechs]
		}
		parts = append(parts, "Specialized in "+joinNatural(top)+".")
	}

	if len(profile.Requirements) > 0 {
		parts = append(parts, responsibilitySentence(profile.Requirements[0]))
	}

	remainder := substituteTerms(original, profile)
	if remainder != "" && remainder != models.DefaultSummary {
		parts = append(parts, remainder)
	}

	summary := strings.Join(parts, " ")

	// Force-append must-have terms present in the JD but still missing.
	jdLower := strings.ToLower(jobDescription)
	for _, term := range mustHaveTerms {
		if len(summary) >= summaryCharCap {
			break
		}
		if strings.Contains(jdLower, term) && !strings.Contains(strings.ToLower(summary), term) {
			summary += " Proficient in " + canonicalTerm(term) + "."
		}
	}

	return capWithEllipsis(summary, summaryCharCap)
}

// responsibilitySentence turns the first matched requirement phrase into a
// short experience claim.
func responsibilitySentence(requirement string) string {
	req := strings.TrimSpace(requirement)
	req = strings.TrimRight(req, ".!?")
	lower := strings.ToLower(req)
	for _, prefix := range []string{"must have ", "must be ", "must ", "required: ", "should have ", "should be ", "should ", "need ", "essential: "} {
		if strings.HasPrefix(lower, prefix) {
			req = req[len(prefix):]
			break
		}
	}
	req = strings.TrimSpace(req)
	if req == "" {
		return ""
	}
	return "Proven track record in " + strings.ToLower(req[:1]) + req[1:] + "."
}

// optimizeBullet canonicalizes technology mentions, resolves synonyms,
// appends a technology for related concepts, and strengthens weak verbs.
// Metrics and proper nouns in the bullet are left untouched.
func (o *Optimizer) optimizeBullet(bullet string, profile *models.JobProfile) string {
	out := substituteTerms(bullet, profile)

	// Synonym families: informal spellings become the JD's canonical term.
	for synonym, canonical := range technologySynonyms {
		if !profileHasTech(profile, canonical) {
			continue
		}
		out = replaceFoldWord(out, synonym, canonical)
	}

	// Related concepts: a bullet about dashboards that never names Power BI
	// gets a "using Power BI" clause, length permitting.
	lower := strings.ToLower(out)
	for _, tech := range profile.Technologies {
		concepts, ok := relatedConcepts[tech]
		if !ok || strings.Contains(lower, strings.ToLower(tech)) {
			continue
		}
		if len(out) >= bulletAppendCap {
			break
		}
		for _, concept := range concepts {
			if strings.Contains(lower, concept) {
				out = strings.TrimRight(out, ".") + " using " + tech
				lower = strings.ToLower(out)
				break
			}
		}
	}

	// Weak verbs in short bullets become the JD's first action verb.
	if len(out) < weakVerbBulletCap && len(profile.ActionVerbs) > 0 {
		replacement := titleCaser.String(profile.ActionVerbs[0])
		for _, weak := range weakVerbs {
			re := regexp.MustCompile(`(?i)\b` + weak + `\b`)
			if re.MatchString(out) {
				out = re.ReplaceAllString(out, replacement)
				break
			}
		}
	}

	return out
}

// optimizeSkills reorders each category so JD-matching skills sort first,
// then injects missing JD technologies into their table-assigned category.
func optimizeSkills(skills models.SkillSet, profile *models.JobProfile) models.SkillSet {
	out := models.SkillSet{
		Programming: reorderByProfile(skills.Programming, profile),
		Tools:       reorderByProfile(skills.Tools, profile),
		Databases:   reorderByProfile(skills.Databases, profile),
		Cloud:       reorderByProfile(skills.Cloud, profile),
		Others:      reorderByProfile(skills.Others, profile),
	}

	existing := map[string]bool{}
	for _, s := range out.All() {
		existing[strings.ToLower(s)] = true
	}

	for _, tech := range profile.Technologies {
		techLower := strings.ToLower(tech)
		present := existing[techLower]
		if !present {
			// Substring match either direction also counts as present.
			for s := range existing {
				if strings.Contains(s, techLower) || strings.Contains(techLower, s) {
					present = true
					break
				}
			}
		}
		if present {
			continue
		}
		existing[techLower] = true
		switch categoryForTech(tech) {
		case "programming":
			out.Programming = append([]string{tech}, out.Programming...)
		case "tools":
			out.Tools = append([]string{tech}, out.Tools...)
		case "databases":
			out.Databases = append([]string{tech}, out.Databases...)
		case "cloud":
			out.Cloud = append([]string{tech}, out.Cloud...)
		default:
			out.Others = append([]string{tech}, out.Others...)
		}
	}

	return out
}

func reorderByProfile(category []string, profile *models.JobProfile) []string {
	out := make([]string, len(category))
	copy(out, category)
	sort.SliceStable(out, func(i, j int) bool {
		return skillMatchesProfile(out[i], profile) && !skillMatchesProfile(out[j], profile)
	})
	return out
}

func skillMatchesProfile(skill string, profile *models.JobProfile) bool {
	skillLower := strings.ToLower(skill)
	for _, tech := range profile.Technologies {
		if strings.Contains(skillLower, strings.ToLower(tech)) ||
			strings.Contains(strings.ToLower(tech), skillLower) {
			return true
		}
	}
	return false
}

// optimizeTechStack substitutes canonical casings and appends up to 2
// missing JD technologies while the combined length stays under the cap.
func optimizeTechStack(techStack string, profile *models.JobProfile) string {
	out := substituteTerms(techStack, profile)
	if out == models.DefaultProjectTechStack {
		out = ""
	}
	appended := 0
	lower := strings.ToLower(out)
	for _, tech := range profile.Technologies {
		if appended >= 2 {
			break
		}
		if strings.Contains(lower, strings.ToLower(tech)) {
			continue
		}
		candidate := out
		if candidate == "" {
			candidate = tech
		} else {
			candidate += ", " + tech
		}
		if len(candidate) >= techStackCharCap {
			break
		}
		out = candidate
		lower = strings.ToLower(out)
		appended++
	}
	if out == "" {
		out = models.DefaultProjectTechStack
	}
	return out
}

// substituteTerms replaces any case-insensitive whole-term occurrence of a
// profile technology with its canonical casing.
func substituteTerms(text string, profile *models.JobProfile) string {
	out := text
	for _, tech := range profile.Technologies {
		out = replaceFold(out, tech, tech)
	}
	return out
}

func profileHasTech(profile *models.JobProfile, tech string) bool {
	for _, t := range profile.Technologies {
		if strings.EqualFold(t, tech) {
			return true
		}
	}
	return false
}

// replaceFold replaces case-insensitive occurrences of old with new.
// Occurrences embedded in a longer word are skipped, so a short technology
// name like "R" or "Go" never rewrites letters inside an unrelated word.
func replaceFold(text, old, new string) string {
	if old == "" {
		return text
	}
	lower := strings.ToLower(text)
	oldLower := strings.ToLower(old)
	var sb strings.Builder
	start := 0
	for {
		idx := strings.Index(lower[start:], oldLower)
		if idx < 0 {
			sb.WriteString(text[start:])
			return sb.String()
		}
		idx += start
		end := idx + len(old)
		if (idx > 0 && isWordByte(lower[idx-1])) || (end < len(lower) && isWordByte(lower[end])) {
			sb.WriteString(text[start:end])
			start = end
			continue
		}
		sb.WriteString(text[start:idx])
		sb.WriteString(new)
		start = end
	}
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// replaceFoldWord is replaceFold restricted to whole-word occurrences, so a
// synonym like "js" cannot fire inside "json".
func replaceFoldWord(text, old, new string) string {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(old) + `\b`)
	if err != nil {
		return text
	}
	return re.ReplaceAllString(text, new)
}

func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

func capWithEllipsis(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit-3])) + "..."
}

package matching

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/careerlaunch/internal/types"
)

// Experience level constants
const (
	LevelJunior = "junior"
	LevelMid    = "mid"
	LevelSenior = "senior"
)

// Role category constants
const (
	RoleFrontend  = "frontend"
	RoleBackend   = "backend"
	RoleFullstack = "fullstack"
	RoleData      = "data"
	RoleDevops    = "devops"
	RoleMobile    = "mobile"
	RoleGeneral   = "general"
)

// Profile is the candidate view derived from a resume. Nothing here is
// persisted; it is recomputed from the resume on every request.
type Profile struct {
	Skills          []string
	ExperienceLevel string
	PreferredRoles  []string
	Location        string
}

// BuildProfile derives the matching profile from resume content.
func BuildProfile(resume *types.Resume) *Profile {
	skills := ExtractSkills(resume)
	return &Profile{
		Skills:          skills,
		ExperienceLevel: ExperienceLevel(resume),
		PreferredRoles:  PreferredRoles(resume, skills),
		Location:        resume.Location,
	}
}

// ExtractSkills collects lowercased skills from the explicit skill list,
// experience descriptions, and project technologies and descriptions. Free
// text is scanned against the keyword vocabulary.
func ExtractSkills(resume *types.Resume) []string {
	seen := make(map[string]bool)
	var skills []string
	add := func(s string) {
		s = strings.ToLower(s)
		if s != "" && !seen[s] {
			seen[s] = true
			skills = append(skills, s)
		}
	}

	for _, s := range resume.Skills {
		add(s)
	}
	for _, exp := range resume.Experience {
		for _, kw := range extractTechKeywords(exp.Description) {
			add(kw)
		}
	}
	for _, project := range resume.Projects {
		for _, tech := range project.Technologies {
			add(tech)
		}
		for _, kw := range extractTechKeywords(project.Description) {
			add(kw)
		}
	}
	return skills
}

var yearsPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*years?`)

// ExperienceLevel averages the "N years" figures found in experience
// duration text and thresholds the average: >=5 senior, >=2 mid, else
// junior. Entries without a parseable duration are ignored.
func ExperienceLevel(resume *types.Resume) string {
	totalYears := 0.0
	counted := 0
	for _, exp := range resume.Experience {
		m := yearsPattern.FindStringSubmatch(exp.Duration)
		if m == nil {
			continue
		}
		years, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		totalYears += years
		counted++
	}
	if counted == 0 {
		return LevelJunior
	}
	avg := totalYears / float64(counted)
	switch {
	case avg >= 5:
		return LevelSenior
	case avg >= 2:
		return LevelMid
	default:
		return LevelJunior
	}
}

// PreferredRoles infers role categories from the skill set and from
// position/description text. Returns ["general"] when nothing matches.
func PreferredRoles(resume *types.Resume, skills []string) []string {
	var titleParts []string
	for _, exp := range resume.Experience {
		if exp.Position != "" {
			titleParts = append(titleParts, strings.ToLower(exp.Position))
		}
		if exp.Description != "" {
			titleParts = append(titleParts, strings.ToLower(exp.Description))
		}
	}
	titleText := strings.Join(titleParts, " ")

	var roles []string
	has := func(role string) bool {
		for _, r := range roles {
			if r == role {
				return true
			}
		}
		return false
	}

	if anyInSet(skills, frontendSkills) ||
		strings.Contains(titleText, "frontend") || strings.Contains(titleText, "front-end") {
		roles = append(roles, RoleFrontend)
	}
	if anyInSet(skills, backendSkills) ||
		strings.Contains(titleText, "backend") || strings.Contains(titleText, "back-end") ||
		strings.Contains(titleText, "server") {
		roles = append(roles, RoleBackend)
	}
	if has(RoleFrontend) && has(RoleBackend) {
		roles = append(roles, RoleFullstack)
	}
	if anyInSet(skills, dataSkills) ||
		strings.Contains(titleText, "data") || strings.Contains(titleText, "analyst") ||
		strings.Contains(titleText, "scientist") {
		roles = append(roles, RoleData)
	}
	if anyInSet(skills, devopsSkills) ||
		strings.Contains(titleText, "devops") || strings.Contains(titleText, "infrastructure") ||
		strings.Contains(titleText, "cloud") {
		roles = append(roles, RoleDevops)
	}
	if anyInSet(skills, mobileSkills) ||
		strings.Contains(titleText, "mobile") || strings.Contains(titleText, "ios") ||
		strings.Contains(titleText, "android") {
		roles = append(roles, RoleMobile)
	}

	if len(roles) == 0 {
		return []string{RoleGeneral}
	}
	return roles
}

package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/careerlaunch/internal/types"
)

// Score rates a posting against a candidate profile. All weights are added
// onto a base of 50 and the result is rounded and clamped to [0,100]:
// skill overlap contributes up to 40, experience-level fit +20 or -10,
// role-category fit +20, employer prestige +10, and location/remote +10.
func Score(job *types.JobPosting, profile *Profile) int {
	score := 50.0

	jobSkills := lowerAll(job.Skills)
	matched := matchedSkills(jobSkills, profile.Skills)
	denom := len(jobSkills)
	if denom < 1 {
		denom = 1
	}
	score += float64(len(matched)) / float64(denom) * 40

	title := strings.ToLower(job.Title)
	seniorRole := strings.Contains(title, "senior") || strings.Contains(title, "lead") || strings.Contains(title, "principal")
	juniorRole := strings.Contains(title, "junior") || strings.Contains(title, "entry") || strings.Contains(title, "associate")

	switch {
	case profile.ExperienceLevel == LevelSenior && seniorRole,
		profile.ExperienceLevel == LevelMid && !seniorRole && !juniorRole,
		profile.ExperienceLevel == LevelJunior && (juniorRole || !seniorRole):
		score += 20
	case profile.ExperienceLevel == LevelJunior && seniorRole,
		profile.ExperienceLevel == LevelSenior && juniorRole:
		score -= 10
	}

	jobRole := InferJobRole(job)
	for _, role := range profile.PreferredRoles {
		if role == jobRole && role != RoleGeneral {
			score += 20
			break
		}
	}

	if topCompanies[strings.ToLower(job.Company)] {
		score += 10
	}

	location := strings.ToLower(job.Location)
	if strings.Contains(location, "remote") ||
		strings.Contains(location, strings.ToLower(profile.Location)) {
		score += 10
	}

	rounded := int(math.Round(score))
	if rounded > 100 {
		return 100
	}
	if rounded < 0 {
		return 0
	}
	return rounded
}

// InferJobRole classifies a posting into a role category from its title
// first, then its skill list. Categories are checked in a fixed precedence
// order; the first hit wins.
func InferJobRole(job *types.JobPosting) string {
	title := strings.ToLower(job.Title)
	skills := lowerAll(job.Skills)

	if strings.Contains(title, "frontend") || strings.Contains(title, "front-end") ||
		anyInSet(skills, frontendSkills) {
		return RoleFrontend
	}
	if strings.Contains(title, "backend") || strings.Contains(title, "back-end") ||
		strings.Contains(title, "server") || anyInSet(skills, backendJobSkills) {
		return RoleBackend
	}
	if strings.Contains(title, "full") && strings.Contains(title, "stack") {
		return RoleFullstack
	}
	if strings.Contains(title, "data") || strings.Contains(title, "analyst") ||
		strings.Contains(title, "scientist") || anyInSet(skills, dataJobSkills) {
		return RoleData
	}
	if strings.Contains(title, "devops") || strings.Contains(title, "infrastructure") ||
		strings.Contains(title, "cloud") || anyInSet(skills, devopsJobSkills) {
		return RoleDevops
	}
	if strings.Contains(title, "mobile") || strings.Contains(title, "ios") ||
		strings.Contains(title, "android") || anyInSet(skills, mobileJobSkills) {
		return RoleMobile
	}
	return RoleGeneral
}

// MatchReasons builds up to three human-readable notes explaining a score.
func MatchReasons(job *types.JobPosting, profile *Profile) []string {
	var reasons []string

	matched := matchedSkills(lowerAll(job.Skills), profile.Skills)
	if len(matched) == 1 {
		reasons = append(reasons, "1 skill match found")
	} else if len(matched) > 1 {
		reasons = append(reasons, fmt.Sprintf("%d skill matches found", len(matched)))
	}

	title := strings.ToLower(job.Title)
	seniorRole := strings.Contains(title, "senior") || strings.Contains(title, "lead")
	juniorRole := strings.Contains(title, "junior") || strings.Contains(title, "entry")
	if (profile.ExperienceLevel == LevelSenior && seniorRole) ||
		(profile.ExperienceLevel == LevelMid && !seniorRole && !juniorRole) {
		reasons = append(reasons, "Experience level matches your background")
	}

	location := strings.ToLower(job.Location)
	if strings.Contains(location, "remote") {
		reasons = append(reasons, "Remote work opportunity")
	} else if profile.Location != "" && strings.Contains(location, strings.ToLower(profile.Location)) {
		reasons = append(reasons, "Location matches your preferences")
	}

	if topCompanies[strings.ToLower(job.Company)] {
		reasons = append(reasons, "Top-tier company opportunity")
	}

	if len(reasons) == 0 {
		reasons = []string{
			"Skills alignment with job requirements",
			"Relevant experience match",
		}
	}
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return reasons
}

// matchedSkills returns the job skills that match at least one candidate
// skill by case-insensitive substring in either direction.
func matchedSkills(jobSkills, candidateSkills []string) []string {
	var matched []string
	for _, jobSkill := range jobSkills {
		for _, skill := range candidateSkills {
			skill = strings.ToLower(skill)
			if strings.Contains(jobSkill, skill) || strings.Contains(skill, jobSkill) {
				matched = append(matched, jobSkill)
				break
			}
		}
	}
	return matched
}

func lowerAll(items []string) []string {
	lowered := make([]string, len(items))
	for i, item := range items {
		lowered[i] = strings.ToLower(item)
	}
	return lowered
}

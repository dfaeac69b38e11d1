package jobs

import (
	"strings"

	"github.com/jonathan/careerlaunch/internal/types"
)

// Filters are the optional search parameters applied to catalog results.
// Skills is comma-separated as received on the query string.
type Filters struct {
	Skills   string
	Location string
	Keywords string
}

func (f Filters) empty() bool {
	return f.Skills == "" && f.Location == "" && f.Keywords == ""
}

// Apply narrows postings by skills, location, and keywords. With no filters
// set the full list passes through. When every posting is filtered out, the
// first five are returned as suggestions instead of an empty result.
func (f Filters) Apply(postings []types.JobPosting) []types.JobPosting {
	if f.empty() {
		return postings
	}

	skillTerms := splitSkills(f.Skills)

	var matched []types.JobPosting
	for _, job := range postings {
		if len(skillTerms) > 0 && !matchesSkills(job, skillTerms) {
			continue
		}
		if f.Location != "" && !matchesLocation(job, f.Location) {
			continue
		}
		if f.Keywords != "" && !matchesKeywords(job, f.Keywords) {
			continue
		}
		matched = append(matched, job)
	}

	if len(matched) == 0 {
		if len(postings) > 5 {
			return postings[:5]
		}
		return postings
	}
	return matched
}

func splitSkills(skills string) []string {
	var terms []string
	for _, part := range strings.Split(skills, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}

// matchesSkills checks user skills against job skills by case-insensitive
// substring in either direction; one hit is enough.
func matchesSkills(job types.JobPosting, terms []string) bool {
	for _, term := range terms {
		for _, skill := range job.Skills {
			skill = strings.ToLower(skill)
			if strings.Contains(skill, term) || strings.Contains(term, skill) {
				return true
			}
		}
	}
	return false
}

func matchesLocation(job types.JobPosting, location string) bool {
	wanted := strings.ToLower(location)
	jobLocation := strings.ToLower(job.Location)
	city := strings.TrimSpace(strings.Split(jobLocation, ",")[0])
	return strings.Contains(jobLocation, wanted) ||
		strings.Contains(wanted, city) ||
		strings.Contains(jobLocation, "remote")
}

func matchesKeywords(job types.JobPosting, keywords string) bool {
	haystack := strings.ToLower(job.Title + " " + job.Description + " " + strings.Join(job.Skills, " "))
	return strings.Contains(haystack, strings.ToLower(keywords))
}

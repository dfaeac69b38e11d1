// Package matching infers a candidate profile from resume content and scores
// job postings against it.
package matching

import "strings"

// techKeywords is the fixed vocabulary scanned for in resume free text.
// Matching is unanchored substring search, so short entries over-match
// ("java" inside "javascript"). Kept for compatibility with existing
// inference results.
var techKeywords = []string{
	// Programming languages
	"javascript", "python", "java", "c++", "c#", "php", "ruby", "go", "rust", "swift", "kotlin", "typescript",
	// Web technologies
	"react", "angular", "vue", "node.js", "express", "django", "flask", "spring", "laravel", "html", "css", "sass", "less",
	// Databases
	"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle", "sql server",
	// Cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform", "ansible", "linux", "git",
	// Data science and ML
	"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "machine learning", "data science", "sql", "tableau", "power bi",
	// Mobile
	"ios", "android", "react native", "flutter", "xamarin",
	// Other
	"api", "rest", "graphql", "microservices", "agile", "scrum",
}

// Per-category skill sets used to infer a candidate's preferred roles.
var (
	frontendSkills = newSet("react", "angular", "vue", "javascript", "typescript", "html", "css")
	backendSkills  = newSet("node.js", "python", "java", "php", "ruby", "go", "c#", "spring", "django", "flask")
	dataSkills     = newSet("python", "r", "machine learning", "data science", "sql", "pandas", "numpy", "tableau")
	devopsSkills   = newSet("docker", "kubernetes", "aws", "azure", "jenkins", "terraform", "ansible", "linux")
	mobileSkills   = newSet("ios", "android", "swift", "kotlin", "react native", "flutter")
)

// Posting classification uses narrower sets than candidate inference.
// The frontend set is shared; the others differ.
var (
	backendJobSkills = newSet("node.js", "python", "java", "php", "ruby", "go", "c#", "spring", "django")
	dataJobSkills    = newSet("python", "r", "machine learning", "sql", "tableau", "pandas")
	devopsJobSkills  = newSet("docker", "kubernetes", "aws", "azure", "terraform", "ansible")
	mobileJobSkills  = newSet("swift", "kotlin", "react native", "flutter")
)

// topCompanies is the prestige allowlist checked case-insensitively against
// employer names.
var topCompanies = newSet("google", "microsoft", "amazon", "meta", "apple", "netflix", "tesla")

func newSet(items ...string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

// extractTechKeywords returns every vocabulary entry appearing as a
// substring of text, case-insensitively.
func extractTechKeywords(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, keyword := range techKeywords {
		if strings.Contains(lower, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

func anyInSet(skills []string, set map[string]bool) bool {
	for _, s := range skills {
		if set[s] {
			return true
		}
	}
	return false
}

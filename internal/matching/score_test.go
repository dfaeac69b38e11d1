package matching

import (
	"testing"

	"github.com/jonathan/careerlaunch/internal/types"
)

func midProfile(skills ...string) *Profile {
	return &Profile{
		Skills:          skills,
		ExperienceLevel: LevelMid,
		PreferredRoles:  []string{RoleGeneral},
	}
}

func TestScorePartialSkillOverlap(t *testing.T) {
	job := &types.JobPosting{
		Title:  "Developer",
		Skills: []string{"React", "TypeScript"},
	}
	// 1 of 2 job skills matched: base 50 + 20 skill + 20 level fit (mid,
	// non-senior non-junior title) + 10 empty-location quirk.
	got := Score(job, midProfile("react", "node.js"))
	if got != 100 {
		t.Errorf("score = %d, want 100", got)
	}

	// Same job without the level and location contributions isolates the
	// skill term: junior vs senior title pays -10 and a located candidate
	// removes the location bonus.
	job.Title = "Senior Developer"
	profile := &Profile{
		Skills:          []string{"react", "node.js"},
		ExperienceLevel: LevelJunior,
		PreferredRoles:  []string{RoleGeneral},
		Location:        "Berlin",
	}
	if got := Score(job, profile); got != 60 {
		t.Errorf("score = %d, want 60 (50 + 20 skill - 10 mismatch)", got)
	}
}

func TestScoreSeniorMismatchPenalty(t *testing.T) {
	job := &types.JobPosting{Title: "Senior Backend Engineer", Location: "Berlin"}
	profile := &Profile{
		ExperienceLevel: LevelJunior,
		PreferredRoles:  []string{RoleGeneral},
		Location:        "Austin",
	}
	if got := Score(job, profile); got != 40 {
		t.Errorf("score = %d, want 40 (base 50 - 10 penalty)", got)
	}
}

func TestScoreMonotonicInSkillOverlap(t *testing.T) {
	job := &types.JobPosting{
		Title:  "Senior Backend Engineer",
		Skills: []string{"Go", "PostgreSQL", "Kubernetes", "Kafka"},
	}
	profile := &Profile{
		ExperienceLevel: LevelJunior,
		PreferredRoles:  []string{RoleGeneral},
		Location:        "Austin",
	}

	prev := Score(job, profile)
	for _, skill := range []string{"go", "postgresql", "kubernetes", "kafka"} {
		profile.Skills = append(profile.Skills, skill)
		got := Score(job, profile)
		if got < prev {
			t.Fatalf("score decreased from %d to %d after adding %q", prev, got, skill)
		}
		prev = got
	}
}

func TestScoreClamped(t *testing.T) {
	// Every bonus at once: full overlap, senior/senior, role fit, prestige,
	// remote. Raw total is 150; the result must clamp to 100.
	job := &types.JobPosting{
		Title:    "Senior Frontend Developer",
		Company:  "Google",
		Location: "Remote",
		Skills:   []string{"React", "CSS"},
	}
	profile := &Profile{
		Skills:          []string{"react", "css"},
		ExperienceLevel: LevelSenior,
		PreferredRoles:  []string{RoleFrontend},
		Location:        "Remote",
	}
	if got := Score(job, profile); got != 100 {
		t.Errorf("score = %d, want 100", got)
	}

	// Worst case stays at the floor of the additive range.
	bad := &types.JobPosting{Title: "Senior Architect", Location: "Tokyo"}
	low := &Profile{ExperienceLevel: LevelJunior, PreferredRoles: []string{RoleGeneral}, Location: "Lima"}
	if got := Score(bad, low); got < 0 || got > 100 {
		t.Errorf("score %d outside [0,100]", got)
	}
}

func TestScoreNoSkillsListed(t *testing.T) {
	job := &types.JobPosting{Title: "Developer", Location: "Berlin"}
	profile := &Profile{
		Skills:          []string{"go"},
		ExperienceLevel: LevelMid,
		PreferredRoles:  []string{RoleGeneral},
		Location:        "Austin",
	}
	// Empty skill list contributes nothing rather than dividing by zero.
	if got := Score(job, profile); got != 70 {
		t.Errorf("score = %d, want 70", got)
	}
}

func TestInferJobRole(t *testing.T) {
	tests := []struct {
		job  types.JobPosting
		want string
	}{
		{types.JobPosting{Title: "Frontend Developer"}, RoleFrontend},
		{types.JobPosting{Title: "Backend Developer"}, RoleBackend},
		{types.JobPosting{Title: "Platform Engineer", Skills: []string{"node.js"}}, RoleBackend},
		{types.JobPosting{Title: "Data Scientist"}, RoleData},
		{types.JobPosting{Title: "DevOps Engineer"}, RoleDevops},
		{types.JobPosting{Title: "Mobile App Developer"}, RoleMobile},
		{types.JobPosting{Title: "Product Manager"}, RoleGeneral},
		// Posting classification uses narrower skill sets than candidate
		// inference: jenkins, linux, flask, and ios count toward a
		// candidate's roles but never classify a posting.
		{types.JobPosting{Title: "Engineer", Skills: []string{"Jenkins", "Linux"}}, RoleGeneral},
		{types.JobPosting{Title: "Engineer", Skills: []string{"Flask"}}, RoleGeneral},
		{types.JobPosting{Title: "Engineer", Skills: []string{"iOS"}}, RoleGeneral},
		{types.JobPosting{Title: "Engineer", Skills: []string{"Swift"}}, RoleMobile},
		// Title keywords outrank skill-list keywords: a full stack title
		// never reaches the fullstack branch because the frontend check
		// sees the React skill first.
		{types.JobPosting{Title: "Full Stack Developer", Skills: []string{"React", "Node.js"}}, RoleFrontend},
	}

	for _, tc := range tests {
		if got := InferJobRole(&tc.job); got != tc.want {
			t.Errorf("InferJobRole(%q) = %q, want %q", tc.job.Title, got, tc.want)
		}
	}
}

func TestMatchReasons(t *testing.T) {
	job := &types.JobPosting{
		Title:    "Software Engineer",
		Company:  "Amazon",
		Location: "Remote",
		Skills:   []string{"Python", "AWS"},
	}
	profile := &Profile{
		Skills:          []string{"python", "aws"},
		ExperienceLevel: LevelMid,
		PreferredRoles:  []string{RoleBackend},
	}

	reasons := MatchReasons(job, profile)
	if len(reasons) != 3 {
		t.Fatalf("expected 3 reasons, got %d: %v", len(reasons), reasons)
	}
	if reasons[0] != "2 skill matches found" {
		t.Errorf("first reason = %q", reasons[0])
	}
}

func TestMatchReasonsFallback(t *testing.T) {
	job := &types.JobPosting{Title: "Senior Architect", Location: "Tokyo"}
	profile := &Profile{ExperienceLevel: LevelJunior}

	reasons := MatchReasons(job, profile)
	if len(reasons) != 2 {
		t.Fatalf("expected 2 fallback reasons, got %v", reasons)
	}
}

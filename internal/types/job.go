package types

import "time"

// JobPosting is one job listing, either from the live search provider or the
// baked-in demo catalog. Immutable reference data; not user-owned.
type JobPosting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"` // display string, e.g. "$120k - $180k"
	Description  string    `json:"description"`
	Skills       []string  `json:"skills"`
	PostedDate   time.Time `json:"postedDate"`
	ApplyURL     string    `json:"applyUrl"`
	MatchScore   int       `json:"matchScore"`
	MatchReasons []string  `json:"matchReasons,omitempty"`
}

// JobDetails is the expanded view returned by GET /jobs/{id}.
type JobDetails struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Benefits     []string  `json:"benefits"`
	PostedDate   time.Time `json:"postedDate"`
	ApplyURL     string    `json:"applyUrl"`
}

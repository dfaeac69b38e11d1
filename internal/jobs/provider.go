package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jonathan/careerlaunch/internal/types"
)

// DefaultTimeout is the HTTP request timeout for provider calls.
const DefaultTimeout = 30 * time.Second

const defaultBaseURL = "https://jsearch.p.rapidapi.com"

// ProviderError represents a failed call to the job search provider.
type ProviderError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job provider %s: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("job provider %s: %s", e.Operation, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// Provider is a JSearch (RapidAPI) client. A Provider with an empty API key
// is unconfigured and callers should use the demo catalog instead.
type Provider struct {
	baseURL string
	apiKey  string
	apiHost string
	client  *http.Client
}

// NewProvider builds a JSearch client. Key and host come from configuration;
// an empty key yields an unconfigured provider.
func NewProvider(apiKey, apiHost string) *Provider {
	return &Provider{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		apiHost: apiHost,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// Configured reports whether a usable API key is present.
func (p *Provider) Configured() bool {
	return p.apiKey != "" && p.apiKey != "your-rapidapi-key-here"
}

// searchResponse mirrors the JSearch wire format, decoding only the fields
// the transform uses.
type searchResponse struct {
	Data []searchResult `json:"data"`
}

type searchResult struct {
	JobID             string   `json:"job_id"`
	JobTitle          string   `json:"job_title"`
	EmployerName      string   `json:"employer_name"`
	JobCity           string   `json:"job_city"`
	JobCountry        string   `json:"job_country"`
	JobMinSalary      *float64 `json:"job_min_salary"`
	JobMaxSalary      *float64 `json:"job_max_salary"`
	JobDescription    string   `json:"job_description"`
	JobRequiredSkills []string `json:"job_required_skills"`
	JobPostedAt       string   `json:"job_posted_at_datetime_utc"`
	JobApplyLink      string   `json:"job_apply_link"`
	JobBenefits       []string `json:"job_benefits"`
}

// Search queries the live provider and returns postings in the catalog
// shape. Live results carry a flat default match score; personalization
// only applies to catalog scoring.
func (p *Provider) Search(ctx context.Context, query, location string, page int) ([]types.JobPosting, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("query", query+" developer")
	params.Set("location", location)
	params.Set("page", strconv.Itoa(page))
	params.Set("num_pages", "1")

	var decoded searchResponse
	if err := p.get(ctx, "/search", params, &decoded); err != nil {
		return nil, &ProviderError{Operation: "search", Message: "request failed", Cause: err}
	}

	postings := make([]types.JobPosting, 0, len(decoded.Data))
	for _, result := range decoded.Data {
		postings = append(postings, types.JobPosting{
			ID:          result.JobID,
			Title:       result.JobTitle,
			Company:     result.EmployerName,
			Location:    formatLocation(result.JobCity, result.JobCountry),
			Salary:      formatSalary(result.JobMinSalary, result.JobMaxSalary),
			Description: firstNonEmpty(result.JobDescription, "No description available"),
			Skills:      result.JobRequiredSkills,
			PostedDate:  parsePostedDate(result.JobPostedAt),
			ApplyURL:    firstNonEmpty(result.JobApplyLink, "https://linkedin.com/jobs/view/"+result.JobID),
			MatchScore:  75,
			MatchReasons: []string{
				"Skills alignment",
				"Experience match",
				"Location fit",
			},
		})
	}
	return postings, nil
}

// Details fetches the expanded view of one posting.
func (p *Provider) Details(ctx context.Context, jobID string) (*types.JobDetails, error) {
	params := url.Values{}
	params.Set("job_id", jobID)

	var decoded searchResponse
	if err := p.get(ctx, "/job-details", params, &decoded); err != nil {
		return nil, &ProviderError{Operation: "details", Message: "request failed", Cause: err}
	}
	if len(decoded.Data) == 0 {
		return nil, &ProviderError{Operation: "details", Message: "job not found: " + jobID}
	}

	result := decoded.Data[0]
	return &types.JobDetails{
		ID:           result.JobID,
		Title:        result.JobTitle,
		Company:      result.EmployerName,
		Location:     formatLocation(result.JobCity, result.JobCountry),
		Salary:       formatSalary(result.JobMinSalary, result.JobMaxSalary),
		Description:  result.JobDescription,
		Requirements: result.JobRequiredSkills,
		Benefits:     result.JobBenefits,
		PostedDate:   parsePostedDate(result.JobPostedAt),
		ApplyURL:     result.JobApplyLink,
	}, nil
}

func (p *Provider) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-RapidAPI-Key", p.apiKey)
	req.Header.Set("X-RapidAPI-Host", p.apiHost)

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func formatLocation(city, country string) string {
	if city != "" {
		return city + ", " + country
	}
	if country != "" {
		return country
	}
	return "Remote"
}

func formatSalary(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("$%.0fk - $%.0fk", *min, *max)
	case min != nil:
		return fmt.Sprintf("$%.0fk+", *min)
	default:
		return "Salary not specified"
	}
}

func parsePostedDate(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Now().UTC()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

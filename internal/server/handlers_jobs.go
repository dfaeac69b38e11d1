package server

import (
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/careerlaunch/internal/jobs"
	"github.com/jonathan/careerlaunch/internal/matching"
	"github.com/jonathan/careerlaunch/internal/server/middleware"
	"github.com/jonathan/careerlaunch/internal/types"
)

// ---------------------------------------------------------------------
// Job Search Handlers
// ---------------------------------------------------------------------

func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	q := r.URL.Query()
	skills := q.Get("skills")
	location := q.Get("location")
	keywords := q.Get("keywords")

	// A resume ID switches the search to personalized recommendations over
	// the demo catalog.
	if resumeIDStr := q.Get("resumeId"); resumeIDStr != "" {
		resumeID, err := uuid.Parse(resumeIDStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
			return
		}
		s.personalizedJobs(w, r, userID, resumeID)
		return
	}

	// Live search when a provider key is configured
	if s.jobProvider.Configured() {
		query := "developer"
		if keywords != "" {
			query = keywords
		} else if skills != "" {
			query = strings.TrimSpace(strings.Split(skills, ",")[0])
		}

		page := 1
		if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
			page = p
		}

		postings, err := s.jobProvider.Search(r.Context(), query, location, page)
		if err != nil {
			log.Printf("Job search error: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "Job search failed")
			return
		}
		s.jsonResponse(w, http.StatusOK, postings)
		return
	}

	// Demo catalog with basic filtering
	catalog, err := jobs.Catalog()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Job search failed")
		return
	}

	filtered := jobs.Filters{
		Skills:   skills,
		Location: location,
		Keywords: keywords,
	}.Apply(catalog)

	log.Printf("Returning filtered demo jobs: skills=%q location=%q keywords=%q count=%d",
		skills, location, keywords, len(filtered))
	s.jsonResponse(w, http.StatusOK, filtered)
}

// personalizedJobs scores the demo catalog against the resume's profile and
// returns the top matches. Any failure degrades to an unscored catalog slice
// rather than an error.
func (s *Server) personalizedJobs(w http.ResponseWriter, r *http.Request, userID, resumeID uuid.UUID) {
	catalog, err := jobs.Catalog()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Job search failed")
		return
	}

	resume, err := s.db.GetResume(r.Context(), resumeID, userID)
	if err != nil || resume == nil {
		if err != nil {
			log.Printf("Personalized job recommendations error: %v", err)
		}
		if len(catalog) > 6 {
			catalog = catalog[:6]
		}
		s.jsonResponse(w, http.StatusOK, catalog)
		return
	}

	profile := matching.BuildProfile(resume)
	for i := range catalog {
		catalog[i].MatchScore = matching.Score(&catalog[i], profile)
		catalog[i].MatchReasons = matching.MatchReasons(&catalog[i], profile)
	}

	// Stable sort keeps catalog order for equal scores
	sort.SliceStable(catalog, func(i, j int) bool {
		return catalog[i].MatchScore > catalog[j].MatchScore
	})
	if len(catalog) > 8 {
		catalog = catalog[:8]
	}

	log.Printf("Generated %d personalized job recommendations for resume %s", len(catalog), resumeID)
	s.jsonResponse(w, http.StatusOK, catalog)
}

func (s *Server) handleGetJobDetails(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.GetUserID(r); err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	jobID := r.PathValue("id")

	if !s.jobProvider.Configured() {
		s.jsonResponse(w, http.StatusOK, demoJobDetails(jobID))
		return
	}

	details, err := s.jobProvider.Details(r.Context(), jobID)
	if err != nil {
		log.Printf("Job details error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch job details")
		return
	}

	s.jsonResponse(w, http.StatusOK, details)
}

// demoJobDetails is the canned detail view served when no provider key is set.
func demoJobDetails(jobID string) *types.JobDetails {
	return &types.JobDetails{
		ID:          jobID,
		Title:       "Software Developer",
		Company:     "Tech Company",
		Location:    "San Francisco, CA",
		Salary:      "$100k - $130k",
		Description: "We are looking for a talented software developer to join our team. You will work on cutting-edge web applications using modern technologies including React, Node.js, and cloud services.",
		Requirements: []string{
			"3+ years experience", "React", "Node.js", "JavaScript", "Git",
		},
		Benefits: []string{
			"Health insurance", "Remote work options", "401k matching", "Professional development budget",
		},
		PostedDate: time.Now().UTC(),
		ApplyURL:   "https://linkedin.com/jobs/view/software-developer-tech-company",
	}
}

package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/careerlaunch/internal/render"
	"github.com/jonathan/careerlaunch/internal/server/middleware"
	"github.com/jonathan/careerlaunch/internal/types"
)

// ---------------------------------------------------------------------
// Resume Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resume := resumeFromRequest(&req)
	created, err := s.db.CreateResume(r.Context(), userID, resume)
	if err != nil {
		s.persistenceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	resumes, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		s.persistenceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resumes": resumes,
		"count":   len(resumes),
	})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, resumeID, ok := s.resumeRequestIDs(w, r)
	if !ok {
		return
	}

	resume, err := s.db.GetResume(r.Context(), resumeID, userID)
	if err != nil {
		s.persistenceError(w, err)
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, resumeID, ok := s.resumeRequestIDs(w, r)
	if !ok {
		return
	}

	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resume := resumeFromRequest(&req)
	updated, err := s.db.UpdateResume(r.Context(), resumeID, userID, resume)
	if err != nil {
		s.persistenceError(w, err)
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, resumeID, ok := s.resumeRequestIDs(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteResume(r.Context(), resumeID, userID)
	if err != nil {
		s.persistenceError(w, err)
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleGenerateResume produces AI-assisted resume content. Upstream failures
// never surface to the client; the fallback content is returned instead.
func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.GetUserID(r); err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req types.GenerateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	content, err := s.assistant.GenerateResumeContent(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate resume content")
		return
	}

	s.jsonResponse(w, http.StatusOK, content)
}

func (s *Server) handleExportResumePDF(w http.ResponseWriter, r *http.Request) {
	userID, resumeID, ok := s.resumeRequestIDs(w, r)
	if !ok {
		return
	}

	if s.renderer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "PDF export is not available")
		return
	}

	resume, err := s.db.GetResume(r.Context(), resumeID, userID)
	if err != nil {
		s.persistenceError(w, err)
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	html, err := render.HTML(resume)
	if err != nil {
		log.Printf("Error rendering resume %s: %v", resumeID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to export PDF")
		return
	}

	pdf, err := s.renderer.RenderHTMLToPDF(r.Context(), html)
	if err != nil {
		log.Printf("Error exporting resume %s to PDF: %v", resumeID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to export PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.Title+".pdf"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

// resumeRequestIDs extracts the authenticated user ID and the resume path ID.
// Writes the error response and returns ok=false on failure.
func (s *Server) resumeRequestIDs(w http.ResponseWriter, r *http.Request) (userID, resumeID uuid.UUID, ok bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	resumeID, err = uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, resumeID, true
}

// resumeFromRequest maps a create/update request onto a resume document.
// The template defaults to professional when omitted.
func resumeFromRequest(req *types.CreateResumeRequest) *types.Resume {
	template := req.Template
	if template == "" {
		template = types.TemplateProfessional
	}
	return &types.Resume{
		Title:          req.Title,
		Template:       template,
		PersonalInfo:   req.PersonalInfo,
		Summary:        req.Summary,
		Location:       req.Location,
		Experience:     req.Experience,
		Education:      req.Education,
		Skills:         req.Skills,
		Projects:       req.Projects,
		Certifications: req.Certifications,
		Languages:      req.Languages,
	}
}

package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/careerlaunch/internal/interview"
	"github.com/jonathan/careerlaunch/internal/server/middleware"
	"github.com/jonathan/careerlaunch/internal/types"
)

// ---------------------------------------------------------------------
// Interview Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateInterview(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req types.CreateInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	settings := req.Normalize()
	iv := &types.Interview{
		JobRole:        req.JobRole,
		JobDescription: req.JobDescription,
		Status:         types.InterviewStatusActive,
		Questions:      interview.GenerateQuestions(req.JobRole, settings),
		Responses:      []types.Response{},
		StartTime:      time.Now(),
		Settings:       settings,
	}

	created, err := s.db.CreateInterview(r.Context(), userID, iv)
	if err != nil {
		s.persistenceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	interviews, err := s.db.ListInterviews(r.Context(), userID)
	if err != nil {
		s.persistenceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"interviews": interviews,
		"count":      len(interviews),
	})
}

func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	iv, ok := s.loadInterview(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, iv)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	iv, ok := s.loadInterview(w, r)
	if !ok {
		return
	}

	var req types.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.QuestionID == uuid.Nil {
		s.errorResponse(w, http.StatusBadRequest, "questionId is required")
		return
	}

	resp, err := interview.SubmitAnswer(iv, req, s.synthesizer)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if _, err := s.db.UpdateInterview(r.Context(), iv); err != nil {
		s.persistenceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handlePauseInterview(w http.ResponseWriter, r *http.Request) {
	s.transitionInterview(w, r, interview.Pause)
}

func (s *Server) handleResumeInterview(w http.ResponseWriter, r *http.Request) {
	s.transitionInterview(w, r, interview.Resume)
}

func (s *Server) handleDeleteInterview(w http.ResponseWriter, r *http.Request) {
	userID, interviewID, ok := s.interviewRequestIDs(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteInterview(r.Context(), interviewID, userID)
	if err != nil {
		s.persistenceError(w, err)
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Interview not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// transitionInterview applies a status transition and persists the result.
func (s *Server) transitionInterview(w http.ResponseWriter, r *http.Request, transition func(*types.Interview) error) {
	iv, ok := s.loadInterview(w, r)
	if !ok {
		return
	}

	if err := transition(iv); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	updated, err := s.db.UpdateInterview(r.Context(), iv)
	if err != nil {
		s.persistenceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// loadInterview fetches the interview addressed by the request path, scoped to
// the authenticated user. Writes the error response and returns ok=false on
// failure.
func (s *Server) loadInterview(w http.ResponseWriter, r *http.Request) (*types.Interview, bool) {
	userID, interviewID, ok := s.interviewRequestIDs(w, r)
	if !ok {
		return nil, false
	}

	iv, err := s.db.GetInterview(r.Context(), interviewID, userID)
	if err != nil {
		s.persistenceError(w, err)
		return nil, false
	}
	if iv == nil {
		s.errorResponse(w, http.StatusNotFound, "Interview not found")
		return nil, false
	}
	return iv, true
}

func (s *Server) interviewRequestIDs(w http.ResponseWriter, r *http.Request) (userID, interviewID uuid.UUID, ok bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	interviewID, err = uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, interviewID, true
}

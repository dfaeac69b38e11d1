// Package server provides the HTTP REST API for the career launch backend.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/careerlaunch/internal/assistant"
	"github.com/jonathan/careerlaunch/internal/config"
	"github.com/jonathan/careerlaunch/internal/db"
	"github.com/jonathan/careerlaunch/internal/interview"
	"github.com/jonathan/careerlaunch/internal/jobs"
	"github.com/jonathan/careerlaunch/internal/render"
	"github.com/jonathan/careerlaunch/internal/server/middleware"
	"github.com/jonathan/careerlaunch/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	assistant   assistant.Assistant
	jobProvider *jobs.Provider
	renderer    render.PDFRenderer
	synthesizer *interview.Synthesizer
}

// New creates a new server instance
func New(cfg *config.ServerConfig) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.EnsureSchema(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	s := &Server{
		db:          database,
		jobProvider: jobs.NewProvider(cfg.RapidAPIKey, cfg.RapidAPIHost),
		synthesizer: interview.NewSynthesizer(),
	}

	if render.ChromeAvailable() {
		s.renderer = render.NewChromedpRenderer()
	} else {
		log.Printf("No Chrome binary found, PDF export disabled")
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Initialize authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)

	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// Initialize the resume assistant. A missing or failing upstream is not
	// fatal: generation falls back to static content.
	var primary assistant.Assistant
	if cfg.GeminiAPIKey != "" {
		gemini, err := assistant.NewGemini(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("Resume assistant unavailable, using fallback: %v", err)
		} else {
			primary = gemini
		}
	}
	s.assistant = assistant.NewWithFallback(primary)

	// Setup router
	mux := http.NewServeMux()

	// Auth endpoints
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.Handle("PUT /auth/password", s.requireAuth(s.handleUpdatePassword))

	// Resume endpoints
	mux.Handle("POST /resumes", s.requireAuth(s.handleCreateResume))
	mux.Handle("GET /resumes", s.requireAuth(s.handleListResumes))
	mux.Handle("POST /resumes/generate", s.requireAuth(s.handleGenerateResume))
	mux.Handle("GET /resumes/{id}", s.requireAuth(s.handleGetResume))
	mux.Handle("PUT /resumes/{id}", s.requireAuth(s.handleUpdateResume))
	mux.Handle("DELETE /resumes/{id}", s.requireAuth(s.handleDeleteResume))
	mux.Handle("GET /resumes/{id}/export.pdf", s.requireAuth(s.handleExportResumePDF))

	// Interview endpoints
	mux.Handle("POST /interviews", s.requireAuth(s.handleCreateInterview))
	mux.Handle("GET /interviews", s.requireAuth(s.handleListInterviews))
	mux.Handle("GET /interviews/{id}", s.requireAuth(s.handleGetInterview))
	mux.Handle("POST /interviews/{id}/answer", s.requireAuth(s.handleSubmitAnswer))
	mux.Handle("POST /interviews/{id}/pause", s.requireAuth(s.handlePauseInterview))
	mux.Handle("POST /interviews/{id}/resume", s.requireAuth(s.handleResumeInterview))
	mux.Handle("DELETE /interviews/{id}", s.requireAuth(s.handleDeleteInterview))

	// Job search endpoints
	mux.Handle("GET /jobs/search", s.requireAuth(s.handleSearchJobs))
	mux.Handle("GET /jobs/{id}", s.requireAuth(s.handleGetJobDetails))

	mux.HandleFunc("GET /health", s.handleHealth)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for PDF export
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.assistant != nil {
		if err := s.assistant.Close(); err != nil {
			log.Printf("Error closing resume assistant: %v", err)
		}
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// requireAuth wraps a handler with JWT bearer token authentication.
func (s *Server) requireAuth(handler http.HandlerFunc) http.Handler {
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(handler)
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract client identifier (IP address)
		clientID := s.extractClientID(r)

		// Check rate limit
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			// Set rate limit headers
			s.setRateLimitHeaders(w, info)
			// Return 429 Too Many Requests
			s.rateLimitResponse(w, info)
			return
		}

		// Set rate limit headers for successful requests
		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// persistenceError logs the store failure and answers with an opaque 500.
// Driver error text never reaches the client.
func (s *Server) persistenceError(w http.ResponseWriter, err error) {
	log.Printf("Database error: %v", err)
	s.errorResponse(w, http.StatusInternalServerError, "Database error")
}

// handleRegister handles user registration requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Register(w, r)
}

// handleLogin handles user login requests.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Login(w, r)
}

// handleUpdatePassword handles password update requests.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	// Log rate limit hit
	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

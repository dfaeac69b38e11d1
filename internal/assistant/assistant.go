// Package assistant generates resume content with an AI backend when one is
// configured and a canned fallback otherwise.
package assistant

import (
	"context"

	"github.com/jonathan/careerlaunch/internal/types"
)

// Assistant produces resume content suggestions from a free-text prompt.
type Assistant interface {
	GenerateResumeContent(ctx context.Context, req *types.GenerateResumeRequest) (*types.GeneratedResumeContent, error)
	Close() error
}

// Static is the fallback assistant. It always succeeds with fixed content,
// so resume generation keeps working when no AI backend is configured or the
// backend errors.
type Static struct{}

// NewStatic returns the fallback assistant.
func NewStatic() *Static {
	return &Static{}
}

// GenerateResumeContent returns the canned suggestion set.
func (s *Static) GenerateResumeContent(_ context.Context, _ *types.GenerateResumeRequest) (*types.GeneratedResumeContent, error) {
	return &types.GeneratedResumeContent{
		Summary: "Generated professional summary based on your experience.",
		Skills:  []string{"JavaScript", "React", "Node.js", "Python"},
		Experience: []types.ExperienceEntry{
			{
				Company:     "Tech Company",
				Position:    "Software Developer",
				Description: "Developed web applications using modern technologies.",
			},
		},
	}, nil
}

// Close is a no-op for the static assistant.
func (s *Static) Close() error {
	return nil
}

// WithFallback wraps an assistant so that any failure degrades to the static
// content instead of surfacing an error to the caller.
type WithFallback struct {
	primary Assistant
	static  *Static
}

// NewWithFallback wraps primary with the static fallback. A nil primary
// means only the fallback is used.
func NewWithFallback(primary Assistant) *WithFallback {
	return &WithFallback{primary: primary, static: NewStatic()}
}

// GenerateResumeContent tries the primary assistant and falls back on error.
func (w *WithFallback) GenerateResumeContent(ctx context.Context, req *types.GenerateResumeRequest) (*types.GeneratedResumeContent, error) {
	if w.primary != nil {
		content, err := w.primary.GenerateResumeContent(ctx, req)
		if err == nil {
			return content, nil
		}
	}
	return w.static.GenerateResumeContent(ctx, req)
}

// Close releases the primary assistant's resources.
func (w *WithFallback) Close() error {
	if w.primary != nil {
		return w.primary.Close()
	}
	return nil
}

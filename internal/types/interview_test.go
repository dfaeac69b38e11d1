package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestCreateInterviewRequest_Validate(t *testing.T) {
	t.Run("job role required", func(t *testing.T) {
		req := &CreateInterviewRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("valid", func(t *testing.T) {
		req := &CreateInterviewRequest{JobRole: "Software Engineer"}
		assert.NoError(t, req.Validate())
	})
}

func TestCreateInterviewRequest_Normalize(t *testing.T) {
	t.Run("defaults when settings omitted", func(t *testing.T) {
		req := &CreateInterviewRequest{JobRole: "Software Engineer"}
		s := req.Normalize()
		assert.Equal(t, 10, s.TotalQuestions)
		assert.True(t, s.IncludeTechnical)
		assert.True(t, s.IncludeBehavioral)
		assert.Equal(t, 0, s.TimeLimit)
	})

	t.Run("omitted flags default to true", func(t *testing.T) {
		req := &CreateInterviewRequest{
			JobRole:  "Software Engineer",
			Settings: &CreateInterviewOptions{TotalQuestions: 6},
		}
		s := req.Normalize()
		assert.Equal(t, 6, s.TotalQuestions)
		assert.True(t, s.IncludeTechnical)
		assert.True(t, s.IncludeBehavioral)
	})

	t.Run("explicit false is honored", func(t *testing.T) {
		req := &CreateInterviewRequest{
			JobRole: "Software Engineer",
			Settings: &CreateInterviewOptions{
				IncludeBehavioral: boolPtr(false),
			},
		}
		s := req.Normalize()
		assert.True(t, s.IncludeTechnical)
		assert.False(t, s.IncludeBehavioral)
	})

	t.Run("zero question count falls back to default", func(t *testing.T) {
		req := &CreateInterviewRequest{
			JobRole:  "Software Engineer",
			Settings: &CreateInterviewOptions{TotalQuestions: 0},
		}
		s := req.Normalize()
		assert.Equal(t, 10, s.TotalQuestions)
	})
}

func TestCreateResumeRequest_Validate(t *testing.T) {
	t.Run("title required", func(t *testing.T) {
		req := &CreateResumeRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("template restricted to known values", func(t *testing.T) {
		req := &CreateResumeRequest{Title: "My Resume", Template: "neon"}
		assert.Error(t, req.Validate())

		for _, template := range []string{TemplateProfessional, TemplateCreative, TemplateMinimalist, ""} {
			req := &CreateResumeRequest{Title: "My Resume", Template: template}
			require.NoError(t, req.Validate(), "template %q should be accepted", template)
		}
	})
}

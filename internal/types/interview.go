package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Interview status constants. Active and paused are reversible by explicit
// user action; completed is terminal.
const (
	InterviewStatusActive    = "active"
	InterviewStatusPaused    = "paused"
	InterviewStatusCompleted = "completed"
)

// Question type constants
const (
	QuestionTypeTechnical   = "technical"
	QuestionTypeBehavioral  = "behavioral"
	QuestionTypeSituational = "situational"
)

// Question difficulty constants
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question is one interview question. Generated once at session creation and
// never mutated afterwards.
type Question struct {
	ID         uuid.UUID `json:"id"`
	Question   string    `json:"question"`
	Type       string    `json:"type"`
	Difficulty string    `json:"difficulty"`
	Topic      string    `json:"topic"`
	Order      int       `json:"order"`
}

// Feedback is the synthesized evaluation of one answer. Constructed once per
// response at submission time; immutable thereafter.
type Feedback struct {
	Score        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Relevance    int      `json:"relevance"`
	Clarity      int      `json:"clarity"`
	Completeness int      `json:"completeness"`
	Comments     string   `json:"comments"`
}

// Response is one submitted answer with its feedback. The response list is
// append-only.
type Response struct {
	QuestionID   uuid.UUID `json:"questionId"`
	Answer       string    `json:"answer"`
	ResponseTime int       `json:"responseTime"` // seconds
	Feedback     Feedback  `json:"feedback"`
	Timestamp    time.Time `json:"timestamp"`
}

// InterviewSettings controls question generation for a session.
type InterviewSettings struct {
	TimeLimit         int  `json:"timeLimit"` // minutes per question, 0 = no limit
	TotalQuestions    int  `json:"totalQuestions"`
	IncludeTechnical  bool `json:"includeTechnical"`
	IncludeBehavioral bool `json:"includeBehavioral"`
}

// Interview is a mock interview session owned by one user.
// TotalScore and AverageScore are derived from response feedback and
// recomputed on every persist, never set independently.
type Interview struct {
	ID                   uuid.UUID         `json:"id"`
	UserID               uuid.UUID         `json:"-"`
	JobRole              string            `json:"jobRole"`
	JobDescription       string            `json:"jobDescription,omitempty"`
	Status               string            `json:"status"`
	Questions            []Question        `json:"questions"`
	Responses            []Response        `json:"responses"`
	CurrentQuestionIndex int               `json:"currentQuestionIndex"`
	TotalScore           int               `json:"totalScore"`
	AverageScore         float64           `json:"averageScore"`
	StartTime            time.Time         `json:"startTime"`
	EndTime              *time.Time        `json:"endTime,omitempty"`
	Duration             int               `json:"duration,omitempty"` // minutes
	Settings             InterviewSettings `json:"settings"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// CreateInterviewRequest is the request body for starting a session.
type CreateInterviewRequest struct {
	JobRole        string                  `json:"jobRole" validate:"required,min=1"`
	JobDescription string                  `json:"jobDescription,omitempty"`
	Settings       *CreateInterviewOptions `json:"settings,omitempty"`
}

// CreateInterviewOptions mirrors InterviewSettings with pointer flags so that
// an omitted flag defaults to true, matching the API contract.
type CreateInterviewOptions struct {
	TimeLimit         int   `json:"timeLimit,omitempty"`
	TotalQuestions    int   `json:"totalQuestions,omitempty"`
	IncludeTechnical  *bool `json:"includeTechnical,omitempty"`
	IncludeBehavioral *bool `json:"includeBehavioral,omitempty"`
}

// Validate validates the CreateInterviewRequest using the validator.
func (r *CreateInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Normalize resolves defaults: 10 questions, both categories included.
func (r *CreateInterviewRequest) Normalize() InterviewSettings {
	s := InterviewSettings{
		TotalQuestions:    10,
		IncludeTechnical:  true,
		IncludeBehavioral: true,
	}
	if r.Settings == nil {
		return s
	}
	s.TimeLimit = r.Settings.TimeLimit
	if r.Settings.TotalQuestions > 0 {
		s.TotalQuestions = r.Settings.TotalQuestions
	}
	if r.Settings.IncludeTechnical != nil {
		s.IncludeTechnical = *r.Settings.IncludeTechnical
	}
	if r.Settings.IncludeBehavioral != nil {
		s.IncludeBehavioral = *r.Settings.IncludeBehavioral
	}
	return s
}

// SubmitAnswerRequest is the request body for answering a question.
type SubmitAnswerRequest struct {
	QuestionID   uuid.UUID `json:"questionId" validate:"required"`
	Answer       string    `json:"answer"`
	ResponseTime int       `json:"responseTime,omitempty"`
}

// SubmitAnswerResponse returns the synthesized feedback and whether the
// submission completed the session.
type SubmitAnswerResponse struct {
	Feedback  Feedback `json:"feedback"`
	Completed bool     `json:"completed"`
}

// InterviewSummary is the list projection for GET /interviews.
type InterviewSummary struct {
	ID           uuid.UUID  `json:"id"`
	JobRole      string     `json:"jobRole"`
	Status       string     `json:"status"`
	AverageScore float64    `json:"averageScore"`
	Duration     int        `json:"duration,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	EndTime      *time.Time `json:"endTime,omitempty"`
}

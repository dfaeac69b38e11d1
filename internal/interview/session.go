package interview

import (
	"math"
	"time"

	"github.com/jonathan/careerlaunch/internal/types"
)

// SubmitAnswer records an answer against the session and returns the
// synthesized feedback. The cursor is advanced to the matched question's
// position plus one, not to the count of recorded responses, so answering
// out of order desynchronizes currentQuestionIndex from len(responses).
// Known quirk, kept for compatibility with existing clients.
func SubmitAnswer(iv *types.Interview, req types.SubmitAnswerRequest, syn *Synthesizer) (*types.SubmitAnswerResponse, error) {
	if iv.Status == types.InterviewStatusCompleted {
		return nil, &ErrSessionCompleted{InterviewID: iv.ID}
	}

	matched := -1
	for i, q := range iv.Questions {
		if q.ID == req.QuestionID {
			matched = i
			break
		}
	}
	if matched < 0 {
		return nil, &ErrQuestionNotFound{QuestionID: req.QuestionID}
	}

	feedback := syn.Synthesize(iv.Questions[matched], req.Answer)
	iv.Responses = append(iv.Responses, types.Response{
		QuestionID:   req.QuestionID,
		Answer:       req.Answer,
		ResponseTime: req.ResponseTime,
		Feedback:     feedback,
		Timestamp:    time.Now(),
	})

	iv.CurrentQuestionIndex = matched + 1

	if iv.CurrentQuestionIndex >= len(iv.Questions) {
		now := time.Now()
		iv.Status = types.InterviewStatusCompleted
		iv.EndTime = &now
		iv.Duration = int(math.Round(now.Sub(iv.StartTime).Minutes()))
	}

	RecomputeScores(iv)

	return &types.SubmitAnswerResponse{
		Feedback:  feedback,
		Completed: iv.Status == types.InterviewStatusCompleted,
	}, nil
}

// Pause marks an in-progress session paused. Completed sessions are terminal.
func Pause(iv *types.Interview) error {
	if iv.Status == types.InterviewStatusCompleted {
		return &ErrSessionCompleted{InterviewID: iv.ID}
	}
	iv.Status = types.InterviewStatusPaused
	return nil
}

// Resume returns a paused session to active. Completed sessions are terminal.
func Resume(iv *types.Interview) error {
	if iv.Status == types.InterviewStatusCompleted {
		return &ErrSessionCompleted{InterviewID: iv.ID}
	}
	iv.Status = types.InterviewStatusActive
	return nil
}

// RecomputeScores rebuilds totalScore and averageScore from the feedback of
// recorded responses. Responses whose feedback carries a zero score are
// skipped. Called on every mutation so the derived fields never drift from
// the response list.
func RecomputeScores(iv *types.Interview) {
	total := 0
	counted := 0
	for _, r := range iv.Responses {
		if r.Feedback.Score > 0 {
			total += r.Feedback.Score
			counted++
		}
	}
	if counted == 0 {
		iv.TotalScore = 0
		iv.AverageScore = 0
		return
	}
	iv.TotalScore = total
	iv.AverageScore = float64(total) / float64(counted)
}

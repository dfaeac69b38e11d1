package interview

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrQuestionNotFound indicates the submitted questionId does not belong to
// the session.
type ErrQuestionNotFound struct {
	QuestionID uuid.UUID
}

func (e *ErrQuestionNotFound) Error() string {
	return fmt.Sprintf("question not found in session: %s", e.QuestionID)
}

// ErrSessionCompleted indicates an operation on a completed session.
type ErrSessionCompleted struct {
	InterviewID uuid.UUID
}

func (e *ErrSessionCompleted) Error() string {
	return fmt.Sprintf("interview already completed: %s", e.InterviewID)
}

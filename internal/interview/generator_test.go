package interview

import (
	"testing"

	"github.com/jonathan/careerlaunch/internal/types"
)

func settingsFor(total int, technical, behavioral bool) types.InterviewSettings {
	return types.InterviewSettings{
		TotalQuestions:    total,
		IncludeTechnical:  technical,
		IncludeBehavioral: behavioral,
	}
}

func TestGenerateQuestionsSplit(t *testing.T) {
	questions := GenerateQuestions("Software Engineer", settingsFor(10, true, true))

	if len(questions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(questions))
	}

	technical := 0
	for i, q := range questions {
		if q.Order != i {
			t.Errorf("question %d has order %d", i, q.Order)
		}
		if q.Type == types.QuestionTypeTechnical {
			technical++
			if i >= 6 {
				t.Errorf("technical question at position %d after behavioral block", i)
			}
		}
	}
	if technical != 6 {
		t.Errorf("expected 6 technical questions, got %d", technical)
	}
}

func TestGenerateQuestionsDifficultyRamp(t *testing.T) {
	questions := GenerateQuestions("Software Engineer", settingsFor(10, true, true))

	// 6 technical: 30%/70% cutoffs put positions 0-1 easy, 2-4 medium, 5 hard.
	wantTechnical := []string{"easy", "easy", "medium", "medium", "medium", "hard"}
	for i, want := range wantTechnical {
		if questions[i].Difficulty != want {
			t.Errorf("technical question %d: difficulty %q, want %q", i, questions[i].Difficulty, want)
		}
	}
	// 4 behavioral: 40%/80% cutoffs put positions 0-1 easy, 2-3 medium.
	wantBehavioral := []string{"easy", "easy", "medium", "medium"}
	for i, want := range wantBehavioral {
		if questions[6+i].Difficulty != want {
			t.Errorf("behavioral question %d: difficulty %q, want %q", i, questions[6+i].Difficulty, want)
		}
	}
}

func TestGenerateQuestionsNoCategories(t *testing.T) {
	for _, total := range []int{1, 10, 50} {
		if got := GenerateQuestions("Software Engineer", settingsFor(total, false, false)); len(got) != 0 {
			t.Errorf("total=%d: expected no questions, got %d", total, len(got))
		}
	}
}

func TestGenerateQuestionsTechnicalOnly(t *testing.T) {
	questions := GenerateQuestions("Software Engineer", settingsFor(10, true, false))

	// Only the technical share of the request is filled when behavioral
	// questions are excluded.
	if len(questions) != 6 {
		t.Fatalf("expected 6 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if q.Type != types.QuestionTypeTechnical {
			t.Errorf("unexpected question type %q", q.Type)
		}
	}
}

func TestGenerateQuestionsCyclesBank(t *testing.T) {
	questions := GenerateQuestions("Software Engineer", settingsFor(30, true, true))

	if len(questions) != 30 {
		t.Fatalf("expected 30 questions, got %d", len(questions))
	}
	bank := BankFor("Software Engineer")
	// 18 technical from a bank of 8, so the first entries repeat.
	if questions[0].Question != bank.Technical[0] || questions[8].Question != bank.Technical[0] {
		t.Error("expected technical bank to cycle from the start")
	}
}

func TestGenerateQuestionsUnknownRoleFallsBack(t *testing.T) {
	questions := GenerateQuestions("Underwater Basket Weaver", settingsFor(10, true, true))

	bank := BankFor(DefaultRole)
	if questions[0].Question != bank.Technical[0] {
		t.Errorf("expected default bank question, got %q", questions[0].Question)
	}
}

func TestBankShapes(t *testing.T) {
	for _, role := range Roles() {
		bank := BankFor(role)
		if len(bank.Technical) == 0 || len(bank.Behavioral) == 0 {
			t.Errorf("role %q has an empty category", role)
		}
	}
}

package interview

import (
	"math"

	"github.com/google/uuid"

	"github.com/jonathan/careerlaunch/internal/types"
)

// GenerateQuestions builds the ordered question list for a session from the
// role's bank. Technical questions fill ceil(60%) of the requested total and
// behavioral questions fill whatever remains; shorter banks are cycled.
// Disabling a category simply skips it, so technical-only sessions end up
// with 60% of the requested count. When both categories are disabled the
// list is empty.
func GenerateQuestions(jobRole string, settings types.InterviewSettings) []types.Question {
	bank := BankFor(jobRole)

	total := settings.TotalQuestions
	if total <= 0 {
		total = 10
	}

	var questions []types.Question
	if settings.IncludeTechnical {
		count := int(math.Ceil(float64(total) * 0.6))
		if count > total {
			count = total
		}
		questions = appendQuestions(questions, bank.Technical, count, types.QuestionTypeTechnical)
	}
	if settings.IncludeBehavioral {
		count := total - len(questions)
		questions = appendQuestions(questions, bank.Behavioral, count, types.QuestionTypeBehavioral)
	}
	return questions
}

func appendQuestions(questions []types.Question, pool []string, count int, qtype string) []types.Question {
	if count <= 0 || len(pool) == 0 {
		return questions
	}
	topic := "Technical Skills"
	if qtype == types.QuestionTypeBehavioral {
		topic = "Behavioral Skills"
	}
	for i := 0; i < count; i++ {
		questions = append(questions, types.Question{
			ID:         uuid.New(),
			Question:   pool[i%len(pool)],
			Type:       qtype,
			Difficulty: difficultyFor(qtype, i, count),
			Topic:      topic,
			Order:      len(questions),
		})
	}
	return questions
}

// difficultyFor ramps difficulty by position within the category: technical
// splits easy/medium/hard at 30%/70%, behavioral at 40%/80%.
func difficultyFor(qtype string, index, count int) string {
	position := float64(index) / float64(count)
	easyCut, mediumCut := 0.3, 0.7
	if qtype == types.QuestionTypeBehavioral {
		easyCut, mediumCut = 0.4, 0.8
	}
	switch {
	case position < easyCut:
		return types.DifficultyEasy
	case position < mediumCut:
		return types.DifficultyMedium
	default:
		return types.DifficultyHard
	}
}

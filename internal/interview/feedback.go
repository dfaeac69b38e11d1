package interview

import (
	"math"
	"math/rand"
	"time"

	"github.com/jonathan/careerlaunch/internal/types"
)

// Synthesizer produces scored feedback for a submitted answer. Scores are
// synthesized from per-type templates rather than judged from the answer
// text, so results are plausible but not content-sensitive.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer returns a Synthesizer seeded from the clock.
func NewSynthesizer() *Synthesizer {
	return NewSynthesizerWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewSynthesizerWithSource returns a Synthesizer backed by the given source.
// Tests pass a fixed seed to pin outputs.
func NewSynthesizerWithSource(src rand.Source) *Synthesizer {
	return &Synthesizer{rng: rand.New(src)}
}

type feedbackTemplate struct {
	strengths    []string
	improvements []string
	comments     map[string][]string
}

// Synthesize builds feedback for one answer. Sub-scores jitter around a base
// in the 6-9 range, the overall score is their rounded mean, and the comment
// is picked from the bracket the overall score lands in.
func (s *Synthesizer) Synthesize(question types.Question, answer string) types.Feedback {
	tmpl := technicalTemplate
	if question.Type == types.QuestionTypeBehavioral {
		tmpl = behavioralTemplate
	}

	base := s.rng.Intn(4) + 6
	relevance := s.rng.Intn(3) + base - 1
	clarity := s.rng.Intn(3) + base - 1
	completeness := s.rng.Intn(3) + base - 1
	score := int(math.Round(float64(relevance+clarity+completeness) / 3))

	return types.Feedback{
		Score:        score,
		Strengths:    tmpl.strengths[:s.rng.Intn(2)+2],
		Improvements: tmpl.improvements[:s.rng.Intn(2)+1],
		Relevance:    relevance,
		Clarity:      clarity,
		Completeness: completeness,
		Comments:     s.pickComment(tmpl, score),
	}
}

func (s *Synthesizer) pickComment(tmpl feedbackTemplate, score int) string {
	bracket := "low"
	switch {
	case score >= 8:
		bracket = "high"
	case score >= 6:
		bracket = "medium"
	}
	pool := tmpl.comments[bracket]
	return pool[s.rng.Intn(len(pool))]
}

var technicalTemplate = feedbackTemplate{
	strengths: []string{
		"Clear technical understanding demonstrated",
		"Good use of relevant terminology",
		"Logical problem-solving approach",
		"Practical experience evident",
	},
	improvements: []string{
		"Could provide more specific examples",
		"Consider mentioning alternative approaches",
		"Add more technical depth",
		"Include performance considerations",
	},
	comments: map[string][]string{
		"high": {
			"Excellent technical response with strong problem-solving approach.",
			"Demonstrates deep understanding of technical concepts.",
			"Clear, concise, and technically accurate answer.",
		},
		"medium": {
			"Good technical foundation, could benefit from more specific examples.",
			"Solid understanding shown, consider adding implementation details.",
			"Technical knowledge is evident, focus on practical applications.",
		},
		"low": {
			"Basic understanding demonstrated, recommend deeper technical study.",
			"Response lacks technical depth, consider researching the topic further.",
			"More technical details and examples would strengthen this answer.",
		},
	},
}

var behavioralTemplate = feedbackTemplate{
	strengths: []string{
		"Good communication skills",
		"Clear example provided",
		"Shows self-awareness",
		"Demonstrates growth mindset",
	},
	improvements: []string{
		"Could be more specific about outcomes",
		"Consider quantifying impact",
		"Add more context about challenges",
		"Include lessons learned",
	},
	comments: map[string][]string{
		"high": {
			"Excellent example with clear structure and strong communication.",
			"Well-articulated response showing self-awareness and growth.",
			"Compelling story with clear lessons learned and impact.",
		},
		"medium": {
			"Good example provided, could be more specific about outcomes.",
			"Solid response, consider adding more context about challenges faced.",
			"Clear communication, focus on quantifying impact and results.",
		},
		"low": {
			"Response needs more specific examples and outcomes.",
			"Consider providing more context and measurable results.",
			"Focus on specific situations and learnings from experiences.",
		},
	},
}

package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/careerlaunch/internal/types"
)

const geminiModel = "gemini-1.5-flash"

// Gemini implements Assistant on the Google Gemini API.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates a Gemini-backed assistant.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client}, nil
}

// GenerateResumeContent asks the model for summary, skills, and experience
// suggestions as JSON and decodes them into the content shape.
func (g *Gemini) GenerateResumeContent(ctx context.Context, req *types.GenerateResumeRequest) (*types.GeneratedResumeContent, error) {
	model := g.client.GenerativeModel(geminiModel)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(req)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	var content types.GeneratedResumeContent
	if err := json.Unmarshal([]byte(cleanJSONBlock(text)), &content); err != nil {
		return nil, fmt.Errorf("failed to decode generated content: %w", err)
	}
	if content.Summary == "" {
		return nil, fmt.Errorf("generated content has no summary")
	}
	return &content, nil
}

// Close releases resources held by the client.
func (g *Gemini) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func buildPrompt(req *types.GenerateResumeRequest) string {
	var sb strings.Builder
	sb.WriteString("You are a resume writing assistant. Produce JSON with the fields ")
	sb.WriteString(`"summary" (a 2-3 sentence professional summary), "skills" (a list of skill names), `)
	sb.WriteString(`and "experience" (a list of objects with "company", "position", "description").`)
	if req.TargetRole != "" {
		sb.WriteString("\nTarget role: ")
		sb.WriteString(req.TargetRole)
	}
	if req.Prompt != "" {
		sb.WriteString("\nCandidate background:\n")
		sb.WriteString(req.Prompt)
	}
	return sb.String()
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON. Models
// often wrap JSON in ```json fences even when instructed not to.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

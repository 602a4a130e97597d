package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/khanhngo/campus-hub/internal/application/service"
	"github.com/khanhngo/campus-hub/internal/config"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type openAIResumeGenerator struct {
	client *openai.Client
	model  string
	log    logger.Logger
}

// NewOpenAIResumeGenerator talks to any OpenAI-compatible chat endpoint
// (OpenAI itself, or a local Ollama behind its compatibility API).
func NewOpenAIResumeGenerator(cfg config.Config, log logger.Logger) (service.ResumeGenerator, error) {
	if cfg.AI.BaseURL == "" {
		return nil, fmt.Errorf("AI base_url is not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.AI.APIKey)
	clientConfig.BaseURL = cfg.AI.BaseURL

	model := cfg.AI.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	log.Info("Resume generator (LLM) adapter initialized")
	return &openAIResumeGenerator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		log:    log,
	}, nil
}

const systemPrompt = `You are a resume writer for college students. Respond with ONLY a single JSON object, no code fences, of the shape:
{"summary": string, "sections": {"education": string, "projects": string, "skills": string, "certifications": string, "achievements": string, "extracurricular": string}, "ats_score": integer 0-100}`

func (g *openAIResumeGenerator) Generate(ctx context.Context, targetRole string, profileContext string) (*service.GeneratedResume, error) {
	var promptBuilder strings.Builder
	promptBuilder.WriteString("Target role: ")
	promptBuilder.WriteString(targetRole)
	promptBuilder.WriteString("\n\n--- Candidate data ---\n")
	promptBuilder.WriteString(profileContext)

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: promptBuilder.String()},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("resume generation request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("resume generator returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	// Some models wrap JSON in fences despite instructions.
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var generated service.GeneratedResume
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &generated); err != nil {
		return nil, fmt.Errorf("resume generator returned malformed payload: %w", err)
	}

	if generated.ATSScore < 0 {
		generated.ATSScore = 0
	}
	if generated.ATSScore > 100 {
		generated.ATSScore = 100
	}
	return &generated, nil
}

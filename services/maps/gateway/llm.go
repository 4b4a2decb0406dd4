package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/codeforher/backend/internal/pkg/apperr"
	"github.com/codeforher/backend/internal/pkg/models"
)

const routeSafetyPrompt = `### Input Data
- Route Steps:
%s

Analyze the following route and provide safety insights and tips. Consider road conditions, traffic patterns, and general safety aspects.

Please provide:
1. General Insights about the route
2. Safety Tips for different times of day
3. Road conditions and traffic patterns
4. Any specific areas of concern

### Output Format
Return a valid JSON object following this structure:
{
    "general_insights": "<general insights about the route>",
    "safety_tips": "<safety tips for different times of day>",
    "road_conditions": "<road conditions and traffic patterns>",
    "areas_of_concern": "<specific areas of concern>"
}`

// LLMGW produces route safety commentary through an OpenAI-compatible API
type LLMGW struct {
	client *openai.Client
	config models.LLMConfig
}

// NewLLMGW creates a new LLM gateway
func NewLLMGW(config models.LLMConfig) *LLMGW {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	return &LLMGW{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}
}

// RouteSafety prompts the model with the route steps and parses the JSON
// commentary it returns
func (g *LLMGW) RouteSafety(ctx context.Context, req *models.RouteSafetyRequest) (*models.RouteSafetyResponse, error) {
	steps := make([]string, 0, len(req.RouteSteps))
	for i, step := range req.RouteSteps {
		steps = append(steps, fmt.Sprintf("%d. %s (%s • %s)", i+1, step.Instructions, step.Distance, step.Duration))
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(routeSafetyPrompt, strings.Join(steps, "\n")),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: llm: %v", apperr.ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: llm: empty completion", apperr.ErrUpstream)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var safety models.RouteSafetyResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &safety); err != nil {
		return nil, fmt.Errorf("%w: llm: malformed commentary: %v", apperr.ErrUpstream, err)
	}
	return &safety, nil
}

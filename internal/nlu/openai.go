package nlu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Default models per OpenAI-compatible provider.
const (
	DefaultGroqModel     = "llama-3.3-70b-versatile"
	DefaultCerebrasModel = "llama-3.3-70b"
)

// OpenAIClassifier classifies utterances through any OpenAI-compatible
// chat completion API. Used for Groq and Cerebras.
type OpenAIClassifier struct {
	client   openai.Client
	model    string
	provider Provider
	matcher  *TermMatcher
}

// NewOpenAIClassifier creates a classifier for an OpenAI-compatible
// provider. Returns nil when apiKey is empty (tier disabled).
func NewOpenAIClassifier(provider Provider, apiKey, model string, matcher *TermMatcher) (*OpenAIClassifier, error) {
	if apiKey == "" {
		return nil, nil
	}

	baseURL, ok := ProviderEndpoint[provider]
	if !ok {
		return nil, fmt.Errorf("unsupported OpenAI-compatible provider: %s", provider)
	}
	if model == "" {
		switch provider {
		case ProviderGroq:
			model = DefaultGroqModel
		case ProviderCerebras:
			model = DefaultCerebrasModel
		}
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &OpenAIClassifier{
		client:   client,
		model:    model,
		provider: provider,
		matcher:  matcher,
	}, nil
}

func openaiClassifyTool() openai.ChatCompletionToolUnionParam {
	return openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
		Name:        classifyFunctionName,
		Description: openai.String("Report the intent of the user's question."),
		Parameters: openai.FunctionParameters{
			"type": "object",
			"properties": map[string]any{
				"intent": map[string]string{
					"type":        "string",
					"description": intentParamDescription(),
				},
				"confidence": map[string]string{
					"type":        "number",
					"description": "Probability estimate between 0 and 1.",
				},
				"person_name": map[string]string{
					"type":        "string",
					"description": "The user's own name if they state it, otherwise empty.",
				},
				"alternatives": map[string]any{
					"type":        "array",
					"description": "Up to two other plausible intents, strongest first. Empty when the choice is clear.",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"intent":     map[string]string{"type": "string"},
							"confidence": map[string]string{"type": "number"},
						},
						"required": []string{"intent", "confidence"},
					},
				},
			},
			"required": []string{"intent", "confidence"},
		},
	})
}

// Classify sends the utterance with forced tool calling and maps the
// tool call back to a Result.
func (c *OpenAIClassifier) Classify(ctx context.Context, text string) (*Result, error) {
	if c == nil {
		return nil, errors.New("openai classifier is nil")
	}

	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt()),
			openai.UserMessage(text),
		},
		Tools: []openai.ChatCompletionToolUnionParam{openaiClassifyTool()},
		ToolChoice: openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String(string(openai.ChatCompletionToolChoiceOptionAutoRequired)),
		},
		Temperature: openai.Float(0.1),
		MaxTokens:   openai.Int(256),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return nil, errors.New("empty response from model")
	}

	toolCalls := resp.Choices[0].Message.ToolCalls
	if len(toolCalls) == 0 {
		return nil, errors.New("no tool call in response (expected with required mode)")
	}
	tc := toolCalls[0]
	if tc.Type != "function" {
		return nil, fmt.Errorf("unexpected tool type: %s", tc.Type)
	}
	if tc.Function.Name != classifyFunctionName {
		return nil, fmt.Errorf("unknown function: %s", tc.Function.Name)
	}

	var args map[string]any
	if tc.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return nil, fmt.Errorf("failed to parse function arguments: %w", err)
		}
	}

	intent, confidence, person, scores, err := parseClassifyArgs(args)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Scores:   scores,
		Intent:   intent,
		Score:    confidence,
		Provider: c.provider,
	}
	if person != "" {
		result.Persons = []string{person}
	}
	if c.matcher != nil {
		c.matcher.Annotate(result, text)
	}
	return result, nil
}

// IsEnabled reports whether the tier is configured.
func (c *OpenAIClassifier) IsEnabled() bool {
	return c != nil
}

// Provider returns the backend identity.
func (c *OpenAIClassifier) Provider() Provider {
	if c == nil {
		return ""
	}
	return c.provider
}

// Close releases resources. The openai client needs no cleanup.
func (c *OpenAIClassifier) Close() error {
	return nil
}

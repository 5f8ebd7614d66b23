package nlu

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	apperrors "github.com/unanda-ft/faqbot/internal/errors"
)

// DefaultGeminiModel is used when no model is configured. The flash
// lite tier is fast and cheap enough for per-turn classification.
const DefaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiClassifier classifies utterances with Gemini function calling.
type GeminiClassifier struct {
	client  *genai.Client
	model   string
	tools   []*genai.Tool
	matcher *TermMatcher
}

// NewGeminiClassifier creates a Gemini-backed classifier. Returns nil
// when apiKey is empty (tier disabled).
func NewGeminiClassifier(ctx context.Context, apiKey, model string, matcher *TermMatcher) (*GeminiClassifier, error) {
	if apiKey == "" {
		return nil, nil
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClassifier{
		client: client,
		model:  model,
		tools: []*genai.Tool{{
			FunctionDeclarations: []*genai.FunctionDeclaration{geminiClassifyFunction()},
		}},
		matcher: matcher,
	}, nil
}

func geminiClassifyFunction() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        classifyFunctionName,
		Description: "Report the intent of the user's question.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"intent": {
					Type:        genai.TypeString,
					Description: intentParamDescription(),
				},
				"confidence": {
					Type:        genai.TypeNumber,
					Description: "Probability estimate between 0 and 1.",
				},
				"person_name": {
					Type:        genai.TypeString,
					Description: "The user's own name if they state it, otherwise empty.",
				},
				"alternatives": {
					Type:        genai.TypeArray,
					Description: "Up to two other plausible intents, strongest first. Empty when the choice is clear.",
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"intent":     {Type: genai.TypeString},
							"confidence": {Type: genai.TypeNumber},
						},
						Required: []string{"intent", "confidence"},
					},
				},
			},
			Required: []string{"intent", "confidence"},
		},
	}
}

// Classify sends the utterance to Gemini and maps the function call
// back to a Result. Entity detections are always rule-based.
func (c *GeminiClassifier) Classify(ctx context.Context, text string) (*Result, error) {
	if c == nil {
		return nil, fmt.Errorf("gemini classifier is nil")
	}

	config := &genai.GenerateContentConfig{
		Tools:             c.tools,
		SystemInstruction: genai.NewContentFromText(systemPrompt(), genai.RoleUser),
		ToolConfig: &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeAny,
			},
		},
		Temperature:     genai.Ptr[float32](0.1),
		MaxOutputTokens: 256,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(text), config)
	if err != nil {
		return nil, fmt.Errorf("generate content failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from model")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.FunctionCall == nil {
			continue
		}
		return c.resultFromArgs(part.FunctionCall.Name, part.FunctionCall.Args, text)
	}
	return nil, fmt.Errorf("no function call in response")
}

func (c *GeminiClassifier) resultFromArgs(funcName string, args map[string]any, text string) (*Result, error) {
	if funcName != classifyFunctionName {
		return nil, fmt.Errorf("unknown function: %s", funcName)
	}

	intent, confidence, person, scores, err := parseClassifyArgs(args)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Scores:   scores,
		Intent:   intent,
		Score:    confidence,
		Provider: ProviderGemini,
	}
	if person != "" {
		result.Persons = []string{person}
	}
	if c.matcher != nil {
		c.matcher.Annotate(result, text)
	}
	return result, nil
}

// parseClassifyArgs validates the function-call arguments shared by
// the Gemini and OpenAI-compatible tiers. The returned scores map holds
// the winning intent plus any known runner-ups the model listed, so the
// disambiguation logic sees the same score distribution regardless of
// which tier answered.
func parseClassifyArgs(args map[string]any) (intent string, confidence float64, person string, scores map[string]float64, err error) {
	raw, ok := args["intent"]
	if !ok {
		return "", 0, "", nil, fmt.Errorf("missing required parameter %q", "intent")
	}
	intent, ok = raw.(string)
	if !ok || intent == "" {
		return "", 0, "", nil, fmt.Errorf("parameter %q is not a non-empty string (got %T)", "intent", raw)
	}
	if _, known := trainingUtterances[intent]; !known {
		return "", 0, "", nil, fmt.Errorf("%w: model returned %q", apperrors.ErrUnknownIntent, intent)
	}

	confidence = 1.0
	if raw, ok := args["confidence"]; ok {
		confidence, ok = asConfidence(raw)
		if !ok {
			return "", 0, "", nil, fmt.Errorf("parameter %q is not a number (got %T)", "confidence", raw)
		}
	}

	scores = map[string]float64{intent: confidence}
	if raw, ok := args["alternatives"].([]any); ok {
		for _, entry := range raw {
			fields, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			alt, _ := fields["intent"].(string)
			if _, known := trainingUtterances[alt]; !known || alt == intent {
				continue
			}
			if score, ok := asConfidence(fields["confidence"]); ok {
				scores[alt] = score
			}
		}
	}

	if raw, ok := args["person_name"]; ok {
		if s, ok := raw.(string); ok {
			person = s
		}
	}
	return intent, confidence, person, scores, nil
}

// asConfidence coerces a JSON number to a probability in [0, 1].
func asConfidence(raw any) (float64, bool) {
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	default:
		return 0, false
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v, true
}

// IsEnabled reports whether the tier is configured.
func (c *GeminiClassifier) IsEnabled() bool {
	return c != nil && c.client != nil
}

// Provider returns the backend identity.
func (c *GeminiClassifier) Provider() Provider {
	return ProviderGemini
}

// Close releases resources. The genai client is stateless.
func (c *GeminiClassifier) Close() error {
	return nil
}

package gemini

import (
	"context"
	"fmt"
	"strings"

	"redditleads/internal/observability"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-1.5-flash"

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

const classifyPrompt = `
You are labelling replies to an outreach message sent on Reddit.
Classify the sentiment of the reply toward the outreach as exactly one word: positive, negative or neutral.

Reply:
%s

Label:`

// Classifier labels inbound replies as positive, negative or neutral.
type Classifier struct {
	apiKey string
	model  string
	logger *observability.Logger
}

func NewClassifier(apiKey, model string, logger *observability.Logger) *Classifier {
	if model == "" {
		model = DefaultModel
	}
	return &Classifier{apiKey: apiKey, model: model, logger: logger}
}

// ClassifyReply returns one of the Sentiment constants.
func (c *Classifier) ClassifyReply(ctx context.Context, body string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	model.SetTemperature(0)
	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(classifyPrompt, body)))
	if err != nil {
		return "", fmt.Errorf("failed to classify reply: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no label returned from Gemini")
	}

	part, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response format")
	}

	label := normalizeLabel(string(part))
	c.logger.Debug(observability.WithFields(ctx,
		observability.Field{Key: "sentiment_raw", Value: string(part)},
		observability.Field{Key: "sentiment", Value: label},
	), "classified reply")
	return label, nil
}

// normalizeLabel maps free-form model output onto a known label, falling back to neutral.
func normalizeLabel(raw string) string {
	label := strings.ToLower(strings.TrimSpace(raw))
	label = strings.Trim(label, ".!\"'` \n")
	switch {
	case strings.HasPrefix(label, SentimentPositive):
		return SentimentPositive
	case strings.HasPrefix(label, SentimentNegative):
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

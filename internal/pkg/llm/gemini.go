package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements CompletionProvider on top of the Gemini API.
type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

// NewGeminiProvider creates a Gemini-backed completion provider.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not configured")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &GeminiProvider{client: cl, modelName: modelName}, nil
}

// Complete sends the prompt with the replayed transcript as chat history.
func (g *GeminiProvider) Complete(ctx context.Context, systemPrompt string, history []Turn, userPrompt string) (string, error) {
	m := g.client.GenerativeModel(g.modelName)
	if systemPrompt != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	cs := m.StartChat()
	for _, turn := range history {
		cs.History = append(cs.History,
			&genai.Content{Role: "user", Parts: []genai.Part{genai.Text(turn.Message)}},
			&genai.Content{Role: "model", Parts: []genai.Part{genai.Text(turn.Response)}},
		)
	}

	resp, err := cs.SendMessage(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String(), nil
}

// Close releases the underlying client.
func (g *GeminiProvider) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

var _ CompletionProvider = (*GeminiProvider)(nil)

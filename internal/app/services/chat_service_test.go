package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
)

func newChatFixture(provider *fakeProvider) (*ChatService, *fakeConversationRepo, *fakeConfigRepo) {
	convRepo := &fakeConversationRepo{}
	configRepo := &fakeConfigRepo{}
	svc := NewChatService(convRepo, configRepo, provider, zerolog.Nop())
	return svc, convRepo, configRepo
}

func TestHandleTurnPersistsAfterSuccess(t *testing.T) {
	provider := &fakeProvider{reply: "The library opens at 08:00."}
	svc, convRepo, _ := newChatFixture(provider)

	conv, err := svc.HandleTurn(context.Background(), 7, "When does the library open?")
	if err != nil {
		t.Fatalf("HandleTurn returned error: %v", err)
	}
	if conv.Response != "The library opens at 08:00." {
		t.Errorf("unexpected response: %q", conv.Response)
	}
	if len(convRepo.rows) != 1 {
		t.Fatalf("expected 1 persisted turn, got %d", len(convRepo.rows))
	}
	if convRepo.rows[0].Message != "When does the library open?" {
		t.Errorf("persisted wrong message: %q", convRepo.rows[0].Message)
	}
}

func TestHandleTurnProviderFailurePersistsNothing(t *testing.T) {
	provider := &fakeProvider{err: errProviderDown}
	svc, convRepo, _ := newChatFixture(provider)

	_, err := svc.HandleTurn(context.Background(), 7, "hello")
	if !errors.Is(err, apperrors.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if len(convRepo.rows) != 0 {
		t.Errorf("expected no persisted turns after provider failure, got %d", len(convRepo.rows))
	}
}

func TestHandleTurnNilProvider(t *testing.T) {
	svc, convRepo, _ := newChatFixture(nil)
	svc.provider = nil

	_, err := svc.HandleTurn(context.Background(), 7, "hello")
	if !errors.Is(err, apperrors.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if len(convRepo.rows) != 0 {
		t.Errorf("expected no persisted turns, got %d", len(convRepo.rows))
	}
}

func TestHandleTurnReplaysFullTranscript(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, convRepo, _ := newChatFixture(provider)
	convRepo.rows = []*models.Conversation{
		{ID: 1, UserID: 7, Message: "first", Response: "a"},
		{ID: 2, UserID: 7, Message: "second", Response: "b"},
		{ID: 3, UserID: 9, Message: "other user", Response: "c"},
	}

	if _, err := svc.HandleTurn(context.Background(), 7, "third"); err != nil {
		t.Fatalf("HandleTurn returned error: %v", err)
	}

	if len(provider.lastHistory) != 2 {
		t.Fatalf("expected 2 history turns, got %d", len(provider.lastHistory))
	}
	if provider.lastHistory[0].Message != "first" || provider.lastHistory[1].Message != "second" {
		t.Errorf("history out of order: %+v", provider.lastHistory)
	}
	if provider.lastUserPrompt != "third" {
		t.Errorf("unexpected user prompt: %q", provider.lastUserPrompt)
	}
}

func TestHandleTurnLanguageDirective(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantLang string
	}{
		{"english message", "When does the semester start?", "Respond in English."},
		{"spanish message", "¿Cuándo comienzan las clases del próximo semestre en la universidad?", "Respond in Spanish."},
		{"undetectable defaults to english", "xq zz 42", "Respond in English."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{reply: "ok"}
			svc, _, _ := newChatFixture(provider)

			if _, err := svc.HandleTurn(context.Background(), 1, tt.message); err != nil {
				t.Fatalf("HandleTurn returned error: %v", err)
			}
			if !strings.Contains(provider.lastSystemPrompt, tt.wantLang) {
				t.Errorf("system prompt missing %q:\n%s", tt.wantLang, provider.lastSystemPrompt)
			}
		})
	}
}

func TestHandleTurnKeywordSnippets(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, _, _ := newChatFixture(provider)

	if _, err := svc.HandleTurn(context.Background(), 1, "What are the LIBRARY hours?"); err != nil {
		t.Fatalf("HandleTurn returned error: %v", err)
	}
	if !strings.Contains(provider.lastSystemPrompt, "The college library is open") {
		t.Errorf("expected library snippet in system prompt:\n%s", provider.lastSystemPrompt)
	}

	if _, err := svc.HandleTurn(context.Background(), 1, "Tell me a joke"); err != nil {
		t.Fatalf("HandleTurn returned error: %v", err)
	}
	if strings.Contains(provider.lastSystemPrompt, "Context:") {
		t.Errorf("unexpected snippet for non-matching message:\n%s", provider.lastSystemPrompt)
	}
}

func TestHandleTurnUsesConfiguredBasePrompt(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, _, configRepo := newChatFixture(provider)

	// Default prompt when nothing is configured
	if _, err := svc.HandleTurn(context.Background(), 1, "hi"); err != nil {
		t.Fatalf("HandleTurn returned error: %v", err)
	}
	if !strings.HasPrefix(provider.lastSystemPrompt, DefaultSystemPrompt) {
		t.Errorf("expected default base prompt, got:\n%s", provider.lastSystemPrompt)
	}

	if _, err := configRepo.SetValue(context.Background(), models.ConfigKeySystemPrompt, "Answer like a pirate."); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.HandleTurn(context.Background(), 1, "hi again"); err != nil {
		t.Fatalf("HandleTurn returned error: %v", err)
	}
	if !strings.HasPrefix(provider.lastSystemPrompt, "Answer like a pirate.") {
		t.Errorf("expected configured base prompt, got:\n%s", provider.lastSystemPrompt)
	}
}

func TestUpdateSystemPrompt(t *testing.T) {
	svc, _, _ := newChatFixture(&fakeProvider{reply: "ok"})

	if _, err := svc.UpdateSystemPrompt(context.Background(), "   "); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation error for blank prompt, got %v", err)
	}

	resp, err := svc.UpdateSystemPrompt(context.Background(), "Be concise.")
	if err != nil {
		t.Fatalf("UpdateSystemPrompt returned error: %v", err)
	}
	if resp.Prompt != "Be concise." {
		t.Errorf("unexpected prompt: %q", resp.Prompt)
	}

	current, err := svc.GetSystemPrompt(context.Background())
	if err != nil {
		t.Fatalf("GetSystemPrompt returned error: %v", err)
	}
	if current.Prompt != "Be concise." {
		t.Errorf("expected stored prompt, got %q", current.Prompt)
	}
}

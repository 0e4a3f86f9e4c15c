package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/repositories"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
	"github.com/ecetin/collegehub/internal/pkg/langdetect"
	"github.com/ecetin/collegehub/internal/pkg/llm"
)

// DefaultSystemPrompt is used when no admin-configured instruction exists
// in system_config.
const DefaultSystemPrompt = "You are the college information assistant. Answer questions about " +
	"courses, schedules, enrollment, marks and campus services briefly and accurately. " +
	"If you do not know the answer, say so and suggest contacting the college office."

// knowledgeSnippet maps a keyword set to a canned informational snippet.
// When any keyword appears in the user's message, the snippet is appended
// to the system instruction as extra context.
type knowledgeSnippet struct {
	keywords []string
	snippet  string
}

var knowledgeSnippets = []knowledgeSnippet{
	{
		keywords: []string{"library"},
		snippet:  "The college library is open Monday to Friday 08:00-22:00 and Saturday 09:00-17:00. It is closed on Sundays and public holidays.",
	},
	{
		keywords: []string{"admission", "apply", "application"},
		snippet:  "Admission applications for the upcoming academic year close on June 30. Late applications are considered only with approval from the admissions office.",
	},
	{
		keywords: []string{"exam", "examination"},
		snippet:  "Internal examinations run in weeks 6, 11 and 15 of each semester. The detailed exam timetable is published on the notice board two weeks in advance.",
	},
	{
		keywords: []string{"fee", "fees", "tuition"},
		snippet:  "Tuition fees are due at the start of each semester. Installment plans are available through the finance office.",
	},
}

// ChatService handles chatbot turns, transcript history and the
// admin-editable base instruction
type ChatService struct {
	conversationRepo repositories.IConversationRepository
	configRepo       repositories.ISystemConfigRepository
	provider         llm.CompletionProvider
	logger           zerolog.Logger
}

// NewChatService creates a new ChatService. The provider may be nil when
// the completion API is not configured; every turn then fails with a
// service-unavailable error while the rest of the portal keeps working.
func NewChatService(
	conversationRepo repositories.IConversationRepository,
	configRepo repositories.ISystemConfigRepository,
	provider llm.CompletionProvider,
	logger zerolog.Logger,
) *ChatService {
	return &ChatService{
		conversationRepo: conversationRepo,
		configRepo:       configRepo,
		provider:         provider,
		logger:           logger,
	}
}

// basePrompt loads the admin-configured instruction, falling back to the
// default when none is stored.
func (s *ChatService) basePrompt(ctx context.Context) string {
	cfg, err := s.configRepo.GetValue(ctx, models.ConfigKeySystemPrompt)
	if err != nil || strings.TrimSpace(cfg.Value) == "" {
		return DefaultSystemPrompt
	}
	return cfg.Value
}

// matchSnippets returns canned snippets whose keywords appear in the
// message. Matching is case-insensitive substring search.
func matchSnippets(message string) []string {
	lowered := strings.ToLower(message)
	var matched []string
	for _, ks := range knowledgeSnippets {
		for _, kw := range ks.keywords {
			if strings.Contains(lowered, kw) {
				matched = append(matched, ks.snippet)
				break
			}
		}
	}
	return matched
}

// composeSystemPrompt builds the per-turn system instruction: base
// instruction, response-language directive, then any matched snippets.
func (s *ChatService) composeSystemPrompt(ctx context.Context, message string) string {
	var b strings.Builder
	b.WriteString(s.basePrompt(ctx))

	language := langdetect.DetectLanguage(message)
	b.WriteString("\nRespond in ")
	b.WriteString(language)
	b.WriteString(".")

	for _, snippet := range matchSnippets(message) {
		b.WriteString("\nContext: ")
		b.WriteString(snippet)
	}
	return b.String()
}

// HandleTurn runs one chat turn: composes the system instruction, replays
// the user's full prior transcript oldest-first, calls the completion
// provider and persists the turn. Nothing is persisted when the provider
// fails, so the transcript never contains a message without its response.
func (s *ChatService) HandleTurn(ctx context.Context, userID int64, message string) (*models.Conversation, error) {
	if s.provider == nil {
		return nil, apperrors.ErrProviderUnavailable
	}

	history, err := s.conversationRepo.GetConversationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	turns := make([]llm.Turn, 0, len(history))
	for _, conv := range history {
		turns = append(turns, llm.Turn{Message: conv.Message, Response: conv.Response})
	}

	systemPrompt := s.composeSystemPrompt(ctx, message)

	response, err := s.provider.Complete(ctx, systemPrompt, turns, message)
	if err != nil {
		s.logger.Error().Err(err).Int64("userId", userID).Msg("Completion provider call failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}

	conv := &models.Conversation{
		UserID:   userID,
		Message:  message,
		Response: response,
	}
	if err := s.conversationRepo.AppendConversation(ctx, conv); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", userID).Int64("conversationId", conv.ID).Msg("Chat turn completed")
	return conv, nil
}

// GetHistory returns the user's full transcript, oldest first
func (s *ChatService) GetHistory(ctx context.Context, userID int64) ([]*models.Conversation, error) {
	return s.conversationRepo.GetConversationsByUser(ctx, userID)
}

// GetSystemPrompt returns the current admin-editable base instruction.
// When none has been stored yet, the built-in default is returned.
func (s *ChatService) GetSystemPrompt(ctx context.Context) (*dto.PromptResponse, error) {
	cfg, err := s.configRepo.GetValue(ctx, models.ConfigKeySystemPrompt)
	if err != nil {
		return &dto.PromptResponse{Prompt: DefaultSystemPrompt}, nil
	}
	return &dto.PromptResponse{Prompt: cfg.Value, UpdatedAt: cfg.UpdatedAt}, nil
}

// UpdateSystemPrompt replaces the admin-editable base instruction
func (s *ChatService) UpdateSystemPrompt(ctx context.Context, prompt string) (*dto.PromptResponse, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: prompt cannot be empty", apperrors.ErrValidationFailed)
	}

	cfg, err := s.configRepo.SetValue(ctx, models.ConfigKeySystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Msg("Chatbot system prompt updated")
	return &dto.PromptResponse{Prompt: cfg.Value, UpdatedAt: cfg.UpdatedAt}, nil
}

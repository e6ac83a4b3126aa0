package command

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/assistant"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/cqrs"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/events"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/repository"
	"github.com/KimTaekGwan/FinancialFlowApp/pkg/logger"
)

var validConversationTypes = map[string]bool{
	models.ConversationChat:   true,
	models.ConversationVoice:  true,
	models.ConversationAction: true,
}

// ConversationCommandService records assistant exchanges. The response is
// generated synchronously from the rule table and persisted in the same
// record as the message; there is no second round trip.
type ConversationCommandService struct {
	store     repository.ConversationStore
	users     repository.UserStore
	publisher *events.Publisher
}

func NewConversationCommandService(store repository.ConversationStore, users repository.UserStore, publisher *events.Publisher) *ConversationCommandService {
	return &ConversationCommandService{store: store, users: users, publisher: publisher}
}

func (s *ConversationCommandService) CreateConversation(ctx context.Context, cmd cqrs.CreateConversationCommand) (*models.Conversation, error) {
	if cmd.Message == "" {
		return nil, fmt.Errorf("%w: message must not be empty", ErrInvalidInput)
	}
	convType := cmd.Type
	if convType == "" {
		convType = models.ConversationChat
	}
	if !validConversationTypes[convType] {
		return nil, fmt.Errorf("%w: unknown conversation type %q", ErrInvalidInput, convType)
	}
	if _, err := s.users.GetUser(ctx, cmd.UserID); err != nil {
		return nil, err
	}

	intent, response := assistant.Respond(cmd.Message)
	conversation, err := s.store.CreateConversation(ctx, &models.Conversation{
		UserID:   cmd.UserID,
		Message:  cmd.Message,
		Response: response,
		Type:     convType,
	})
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.ConversationEventsStream, events.ConversationCreated, events.ConversationCreatedEvent{
		ConversationID: conversation.ID,
		UserID:         conversation.UserID,
		Intent:         intent,
	}); err != nil {
		logger.Error("failed to publish conversation.created event", zap.Error(err))
	}
	return conversation, nil
}

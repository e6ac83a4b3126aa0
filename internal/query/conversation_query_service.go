package query

import (
	"context"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/cqrs"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/repository"
)

// ConversationQueryService serves assistant conversation reads.
type ConversationQueryService struct {
	store repository.ConversationStore
}

func NewConversationQueryService(store repository.ConversationStore) *ConversationQueryService {
	return &ConversationQueryService{store: store}
}

// ListConversations returns the user's conversations, most recent first.
func (s *ConversationQueryService) ListConversations(ctx context.Context, q cqrs.ListConversationsQuery) ([]models.Conversation, error) {
	return s.store.ListConversations(ctx, q.UserID)
}

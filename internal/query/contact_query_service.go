package query

import (
	"context"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/cqrs"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/repository"
)

// ContactQueryService serves contact reads.
type ContactQueryService struct {
	store repository.ContactStore
}

func NewContactQueryService(store repository.ContactStore) *ContactQueryService {
	return &ContactQueryService{store: store}
}

func (s *ContactQueryService) ListContacts(ctx context.Context, q cqrs.ListContactsQuery) ([]models.Contact, error) {
	return s.store.ListContacts(ctx, q.UserID)
}

// ListFrequentContacts returns the subset of the user's contacts flagged
// as frequent, for the send-money quick-pick list.
func (s *ContactQueryService) ListFrequentContacts(ctx context.Context, q cqrs.ListFrequentContactsQuery) ([]models.Contact, error) {
	return s.store.ListFrequentContacts(ctx, q.UserID)
}

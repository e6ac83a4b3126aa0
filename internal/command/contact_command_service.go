package command

import (
	"context"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/cqrs"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/repository"
)

// ContactCommandService creates contacts. Duplicate (userId, account) pairs
// are allowed on purpose; the client offers "save again" flows.
type ContactCommandService struct {
	store repository.ContactStore
	users repository.UserStore
}

func NewContactCommandService(store repository.ContactStore, users repository.UserStore) *ContactCommandService {
	return &ContactCommandService{store: store, users: users}
}

func (s *ContactCommandService) CreateContact(ctx context.Context, cmd cqrs.CreateContactCommand) (*models.Contact, error) {
	if _, err := s.users.GetUser(ctx, cmd.UserID); err != nil {
		return nil, err
	}
	return s.store.CreateContact(ctx, &models.Contact{
		UserID:     cmd.UserID,
		Name:       cmd.Name,
		Account:    cmd.Account,
		Bank:       cmd.Bank,
		IsFrequent: cmd.IsFrequent,
	})
}

package query

import (
	"context"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/cqrs"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/repository"
)

// TransactionQueryService serves transaction reads.
type TransactionQueryService struct {
	store repository.TransactionStore
}

func NewTransactionQueryService(store repository.TransactionStore) *TransactionQueryService {
	return &TransactionQueryService{store: store}
}

func (s *TransactionQueryService) GetTransaction(ctx context.Context, q cqrs.GetTransactionQuery) (*models.Transaction, error) {
	return s.store.GetTransaction(ctx, q.TransactionID)
}

// ListTransactions returns the user's transactions, most recent first.
func (s *TransactionQueryService) ListTransactions(ctx context.Context, q cqrs.ListTransactionsQuery) ([]models.Transaction, error) {
	return s.store.ListTransactions(ctx, q.UserID)
}
